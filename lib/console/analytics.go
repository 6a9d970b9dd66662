// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"math"
	"strings"
)

// Periods lists the analytics reporting windows in cycle order.
var Periods = []string{"1h", "24h", "7d", "30d"}

// DefaultPeriod is the window the analytics page opens on.
const DefaultPeriod = "24h"

// ParsePeriod accepts a period name, case-insensitively.
func ParsePeriod(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, period := range Periods {
		if period == name {
			return period, true
		}
	}
	return "", false
}

// NextPeriod returns the period after current, wrapping to the first.
// An unknown period yields the default.
func NextPeriod(current string) string {
	for index, period := range Periods {
		if period == current {
			return Periods[(index+1)%len(Periods)]
		}
	}
	return DefaultPeriod
}

// Trend is how a metric moved against the previous period.
type Trend string

const (
	TrendGood    Trend = "good"
	TrendBad     Trend = "bad"
	TrendNeutral Trend = "neutral"
)

// MetricCard is one headline number of a period with its recent
// history. Series is oldest first.
type MetricCard struct {
	Name   string    `json:"name" yaml:"name"`
	Value  string    `json:"value" yaml:"value"`
	Change string    `json:"change" yaml:"change"`
	Trend  Trend     `json:"trend" yaml:"trend"`
	Series []float64 `json:"series,omitempty" yaml:"series,omitempty"`
}

// PeriodMetrics is the card set of one reporting window.
type PeriodMetrics struct {
	Period string       `json:"period" yaml:"period"`
	Cards  []MetricCard `json:"cards" yaml:"cards"`
}

// ErrorRateWarning is the error rate, in percent, from which a
// project's traffic row is flagged.
const ErrorRateWarning = 0.05

// ProjectTraffic is one project's share of the request volume.
// ResponseTime is in milliseconds; ErrorRate and Uptime are percents.
type ProjectTraffic struct {
	Project      string  `json:"project" yaml:"project"`
	Requests     int64   `json:"requests" yaml:"requests"`
	ResponseTime int     `json:"response_time_ms" yaml:"response_time_ms"`
	ErrorRate    float64 `json:"error_rate" yaml:"error_rate"`
	Uptime       float64 `json:"uptime" yaml:"uptime"`
}

// Flagged reports whether the error rate is at or above
// ErrorRateWarning.
func (traffic ProjectTraffic) Flagged() bool {
	return traffic.ErrorRate >= ErrorRateWarning
}

// EventSeverity values match the log levels so both share colors.
type EventSeverity string

const (
	EventWarning EventSeverity = "warn"
	EventInfo    EventSeverity = "info"
	EventSuccess EventSeverity = "success"
)

// AnalyticsEvent is a notable change in traffic or capacity.
type AnalyticsEvent struct {
	ID       string        `json:"id" yaml:"id"`
	Title    string        `json:"title" yaml:"title"`
	Detail   string        `json:"detail" yaml:"detail"`
	Severity EventSeverity `json:"severity" yaml:"severity"`
	Time     string        `json:"time" yaml:"time"`
}

// Analytics is the traffic report behind the analytics page.
type Analytics struct {
	Periods  []PeriodMetrics  `json:"periods,omitempty" yaml:"periods,omitempty"`
	Projects []ProjectTraffic `json:"projects,omitempty" yaml:"projects,omitempty"`
	Events   []AnalyticsEvent `json:"events,omitempty" yaml:"events,omitempty"`
}

// Period returns the cards of the named window.
func (analytics Analytics) Period(name string) (PeriodMetrics, bool) {
	for _, metrics := range analytics.Periods {
		if metrics.Period == name {
			return metrics, true
		}
	}
	return PeriodMetrics{}, false
}

func seedAnalytics() Analytics {
	card := func(name, value, change string, trend Trend, base, swing, phase float64) MetricCard {
		return MetricCard{Name: name, Value: value, Change: change, Trend: trend, Series: seedSeries(base, swing, phase)}
	}
	return Analytics{
		Periods: []PeriodMetrics{
			{Period: "1h", Cards: []MetricCard{
				card("Requests", "98K", "↑ 4% vs last period", TrendGood, 1600, 300, 0.4),
				card("Response Time", "118ms", "↓ 3ms vs last period", TrendGood, 118, 14, 1.1),
				card("Error Rate", "0.01%", "Normal range", TrendNeutral, 0.01, 0.005, 2.0),
				card("Bandwidth", "5.2 GB", "2% of quota", TrendNeutral, 87, 12, 0.7),
			}},
			{Period: "24h", Cards: []MetricCard{
				card("Requests", "2.4M", "↑ 12% vs last period", TrendGood, 100000, 22000, 0),
				card("Response Time", "124ms", "↓ 8ms vs last period", TrendGood, 124, 18, 1.5),
				card("Error Rate", "0.02%", "Normal range", TrendNeutral, 0.02, 0.008, 3.1),
				card("Bandwidth", "124 GB", "52% of quota", TrendNeutral, 5.2, 1.1, 0.9),
			}},
			{Period: "7d", Cards: []MetricCard{
				card("Requests", "16.1M", "↑ 9% vs last period", TrendGood, 2300000, 280000, 0.2),
				card("Response Time", "131ms", "↑ 6ms vs last period", TrendBad, 131, 16, 0.6),
				card("Error Rate", "0.03%", "Normal range", TrendNeutral, 0.03, 0.01, 1.8),
				card("Bandwidth", "186 GB", "78% of quota", TrendBad, 26, 5, 2.4),
			}},
			{Period: "30d", Cards: []MetricCard{
				card("Requests", "68.7M", "↑ 21% vs last period", TrendGood, 2300000, 350000, 1.2),
				card("Response Time", "127ms", "↓ 2ms vs last period", TrendGood, 127, 12, 2.7),
				card("Error Rate", "0.02%", "Normal range", TrendNeutral, 0.02, 0.01, 0.3),
				card("Bandwidth", "232 GB", "97% of quota", TrendBad, 7.7, 1.4, 1.0),
			}},
		},
		Projects: []ProjectTraffic{
			{Project: "frontend-app", Requests: 1200000, ResponseTime: 98, ErrorRate: 0.01, Uptime: 99.98},
			{Project: "auth-service", Requests: 432000, ResponseTime: 45, ErrorRate: 0.00, Uptime: 100},
			{Project: "api-gateway", Requests: 245000, ResponseTime: 156, ErrorRate: 0.03, Uptime: 99.95},
			{Project: "payment-processor", Requests: 156000, ResponseTime: 203, ErrorRate: 0.08, Uptime: 99.89},
			{Project: "user-service", Requests: 89000, ResponseTime: 134, ErrorRate: 0.02, Uptime: 99.97},
		},
		Events: []AnalyticsEvent{
			{ID: "1", Title: "High memory usage detected", Detail: "payment-processor using 82% of allocated memory", Severity: EventWarning, Time: "12 min ago"},
			{ID: "2", Title: "Response time spike", Detail: "api-gateway experienced 450ms avg for 3 minutes", Severity: EventInfo, Time: "1 hour ago"},
			{ID: "3", Title: "Auto-scaled instances", Detail: "frontend-app scaled from 3 to 5 instances", Severity: EventSuccess, Time: "2 hours ago"},
			{ID: "4", Title: "Bandwidth threshold reached", Detail: "50% of monthly bandwidth quota consumed", Severity: EventInfo, Time: "4 hours ago"},
		},
	}
}

// seedSeriesLength is the number of samples behind each seeded card.
const seedSeriesLength = 30

// seedSeries produces a repeatable wave around base. The same
// arguments always give the same samples.
func seedSeries(base, swing, phase float64) []float64 {
	series := make([]float64, seedSeriesLength)
	for index := range series {
		step := float64(index)
		wave := math.Sin(step*0.45+phase) + 0.35*math.Sin(step*1.3+2*phase)
		series[index] = math.Max(base+swing*wave, 0)
	}
	return series
}
