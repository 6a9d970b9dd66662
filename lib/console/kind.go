// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "strings"

// Kind names a record collection. Kinds double as route names.
type Kind string

const (
	KindTable      Kind = "database"
	KindProject    Kind = "projects"
	KindDeployment Kind = "deployments"
	KindService    Kind = "monitoring"
	KindLog        Kind = "logs"
	KindWebhook    Kind = "webhooks"
	KindAPIKey     Kind = "api-keys"
	KindMember     Kind = "team"
	KindInvoice    Kind = "billing"
)

// Kinds lists every collection in sidebar order.
var Kinds = []Kind{
	KindTable,
	KindProject,
	KindDeployment,
	KindService,
	KindLog,
	KindWebhook,
	KindAPIKey,
	KindMember,
	KindInvoice,
}

// ParseKind accepts a kind name, case-insensitively.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, kind := range Kinds {
		if string(kind) == name {
			return kind, true
		}
	}
	return "", false
}

// Routes that show account-level data rather than a collection.
const (
	RouteOverview  = "overview"
	RouteAnalytics = "analytics"
	RouteSettings  = "settings"
)

// Routes lists every page in sidebar order: the overview, the
// collections with analytics after deployments, then settings.
func Routes() []string {
	routes := []string{RouteOverview}
	for _, kind := range Kinds {
		routes = append(routes, string(kind))
		if kind == KindDeployment {
			routes = append(routes, RouteAnalytics)
		}
	}
	return append(routes, RouteSettings)
}

// ValidRoute reports whether name is a page route, case-insensitively.
func ValidRoute(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, route := range Routes() {
		if route == name {
			return true
		}
	}
	return false
}

// Title returns the page heading for a kind.
func (kind Kind) Title() string {
	switch kind {
	case KindTable:
		return "Table Editor"
	case KindProject:
		return "Projects"
	case KindDeployment:
		return "Deployments"
	case KindService:
		return "Monitoring"
	case KindLog:
		return "Logs"
	case KindWebhook:
		return "Webhooks"
	case KindAPIKey:
		return "API Keys"
	case KindMember:
		return "Team"
	case KindInvoice:
		return "Billing"
	default:
		return string(kind)
	}
}

// Noun returns the plural noun used in counts and empty states
// ("6 deployments", "No deployments match").
func (kind Kind) Noun() string {
	switch kind {
	case KindTable:
		return "tables"
	case KindService:
		return "services"
	case KindLog:
		return "log entries"
	case KindAPIKey:
		return "API keys"
	case KindMember:
		return "members"
	case KindInvoice:
		return "invoices"
	default:
		return string(kind)
	}
}

// FilterStatuses returns the status values offered by a kind's status
// filter, in button order, not including "all". Deployments omit
// cancelled runs from the filter even though the status exists.
func FilterStatuses(kind Kind) []string {
	switch kind {
	case KindTable:
		return Schemas
	case KindProject:
		return []string{string(ProjectActive), string(ProjectBuilding), string(ProjectPaused)}
	case KindDeployment:
		return []string{string(DeploymentSuccess), string(DeploymentInProgress), string(DeploymentFailed)}
	case KindService:
		return []string{string(ServiceOperational), string(ServiceDegraded), string(ServiceDown), string(ServiceMaintenance)}
	case KindLog:
		return []string{string(LevelError), string(LevelWarn), string(LevelInfo), string(LevelDebug)}
	case KindWebhook:
		return []string{string(WebhookActive), string(WebhookDisabled)}
	case KindAPIKey:
		return []string{"production", "development"}
	case KindMember:
		return []string{string(RoleOwner), string(RoleAdmin), string(RoleDeveloper), string(RoleViewer)}
	case KindInvoice:
		return []string{string(InvoicePaid), string(InvoicePending), string(InvoiceFailed)}
	default:
		return nil
	}
}

// StatusLabel returns the display label of a status value:
// "in_progress" becomes "In Progress", "warn" becomes "Warn".
func StatusLabel(status string) string {
	if status == "" {
		return ""
	}
	words := strings.FieldsFunc(status, func(character rune) bool {
		return character == '_' || character == '-'
	})
	for index, word := range words {
		words[index] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
