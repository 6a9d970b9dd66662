// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned by [Bundle.Validate] when two records of
// one collection share an id.
var ErrDuplicateID = errors.New("duplicate id")

// ErrMissingID is returned by [Bundle.Validate] for a record with an
// empty id.
var ErrMissingID = errors.New("missing id")

// Bundle is the complete data set behind the console. Collections are
// in display order.
type Bundle struct {
	Tables      []Table      `json:"tables,omitempty" yaml:"tables,omitempty"`
	Projects    []Project    `json:"projects,omitempty" yaml:"projects,omitempty"`
	Deployments []Deployment `json:"deployments,omitempty" yaml:"deployments,omitempty"`
	Services    []Service    `json:"services,omitempty" yaml:"services,omitempty"`
	Incidents   []Incident   `json:"incidents,omitempty" yaml:"incidents,omitempty"`
	Logs        []LogEntry   `json:"logs,omitempty" yaml:"logs,omitempty"`
	Webhooks    []Webhook    `json:"webhooks,omitempty" yaml:"webhooks,omitempty"`
	APIKeys     []APIKey     `json:"api_keys,omitempty" yaml:"api_keys,omitempty"`
	Members     []Member     `json:"members,omitempty" yaml:"members,omitempty"`
	Audit       []AuditEvent `json:"audit,omitempty" yaml:"audit,omitempty"`
	Invoices    []Invoice    `json:"invoices,omitempty" yaml:"invoices,omitempty"`
	Billing     Billing      `json:"billing" yaml:"billing"`
	Analytics   Analytics    `json:"analytics" yaml:"analytics"`
	Account     Account      `json:"account" yaml:"account"`
}

// Validate checks that every record has an id and that ids are unique
// within each collection.
func (bundle *Bundle) Validate() error {
	checks := []struct {
		kind string
		ids  []string
	}{
		{"tables", idsOf(bundle.Tables, Table.EntityID)},
		{"projects", idsOf(bundle.Projects, Project.EntityID)},
		{"deployments", idsOf(bundle.Deployments, Deployment.EntityID)},
		{"services", idsOf(bundle.Services, Service.EntityID)},
		{"incidents", idsOf(bundle.Incidents, func(incident Incident) string { return incident.ID })},
		{"logs", idsOf(bundle.Logs, LogEntry.EntityID)},
		{"webhooks", idsOf(bundle.Webhooks, Webhook.EntityID)},
		{"api_keys", idsOf(bundle.APIKeys, APIKey.EntityID)},
		{"members", idsOf(bundle.Members, Member.EntityID)},
		{"audit", idsOf(bundle.Audit, func(event AuditEvent) string { return event.ID })},
		{"invoices", idsOf(bundle.Invoices, Invoice.EntityID)},
		{"analytics.periods", idsOf(bundle.Analytics.Periods, func(metrics PeriodMetrics) string { return metrics.Period })},
		{"analytics.events", idsOf(bundle.Analytics.Events, func(event AnalyticsEvent) string { return event.ID })},
		{"account.notifications", idsOf(bundle.Account.Notifications, func(setting NotificationSetting) string { return setting.ID })},
		{"account.sessions", idsOf(bundle.Account.Sessions, func(session Session) string { return session.ID })},
	}
	for _, check := range checks {
		seen := make(map[string]int, len(check.ids))
		for index, id := range check.ids {
			if id == "" {
				return fmt.Errorf("%s[%d]: %w", check.kind, index, ErrMissingID)
			}
			if previous, exists := seen[id]; exists {
				return fmt.Errorf("%s[%d]: %w %q (first at %s[%d])", check.kind, index, ErrDuplicateID, id, check.kind, previous)
			}
			seen[id] = index
		}
	}
	return nil
}

// Count returns the number of records of a kind.
func (bundle *Bundle) Count(kind Kind) int {
	switch kind {
	case KindTable:
		return len(bundle.Tables)
	case KindProject:
		return len(bundle.Projects)
	case KindDeployment:
		return len(bundle.Deployments)
	case KindService:
		return len(bundle.Services)
	case KindLog:
		return len(bundle.Logs)
	case KindWebhook:
		return len(bundle.Webhooks)
	case KindAPIKey:
		return len(bundle.APIKeys)
	case KindMember:
		return len(bundle.Members)
	case KindInvoice:
		return len(bundle.Invoices)
	default:
		return 0
	}
}

func idsOf[T any](records []T, id func(T) string) []string {
	ids := make([]string, len(records))
	for index, record := range records {
		ids[index] = id(record)
	}
	return ids
}
