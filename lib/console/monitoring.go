// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "fmt"

// ServiceStatus is the health of a monitored service.
type ServiceStatus string

const (
	ServiceOperational ServiceStatus = "operational"
	ServiceDegraded    ServiceStatus = "degraded"
	ServiceDown        ServiceStatus = "down"
	ServiceMaintenance ServiceStatus = "maintenance"
)

// Service is a monitored platform component.
type Service struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Status      ServiceStatus `json:"status" yaml:"status"`
	Uptime      float64       `json:"uptime" yaml:"uptime"`
	Latency     string        `json:"latency" yaml:"latency"`
	LastChecked string        `json:"last_checked" yaml:"last_checked"`
	Region      string        `json:"region" yaml:"region"`
	Endpoint    string        `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

func (service Service) EntityID() string     { return service.ID }
func (service Service) EntityStatus() string { return string(service.Status) }

// SearchText matches services by name, region and endpoint.
func (service Service) SearchText() []string {
	return []string{service.Name, service.Region, service.Endpoint}
}

// UptimeLabel formats the uptime percentage the way the status page
// does: two decimals, trailing zeros kept.
func (service Service) UptimeLabel() string {
	return fmt.Sprintf("%.2f%%", service.Uptime)
}

// Actions is the same for every service status.
func (service Service) Actions() []Action {
	return []Action{ActionIncidentLog}
}

// Severity ranks incident impact.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// IncidentStatus is the response stage of an incident.
type IncidentStatus string

const (
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentIdentified    IncidentStatus = "identified"
	IncidentMonitoring    IncidentStatus = "monitoring"
	IncidentResolved      IncidentStatus = "resolved"
)

// Incident is an outage or maintenance window affecting a service.
// Updates are newest first.
type Incident struct {
	ID        string         `json:"id" yaml:"id"`
	Timestamp string         `json:"timestamp" yaml:"timestamp"`
	Service   string         `json:"service" yaml:"service"`
	Severity  Severity       `json:"severity" yaml:"severity"`
	Status    IncidentStatus `json:"status" yaml:"status"`
	Title     string         `json:"title" yaml:"title"`
	Updates   []string       `json:"updates,omitempty" yaml:"updates,omitempty"`
}

// IncidentsFor returns the incidents that name the given service.
func IncidentsFor(incidents []Incident, serviceName string) []Incident {
	var result []Incident
	for _, incident := range incidents {
		if incident.Service == serviceName {
			result = append(result, incident)
		}
	}
	return result
}
