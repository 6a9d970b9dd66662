// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

// Action is a button in the detail panel. Actions are presentational:
// the console records that one was activated and does nothing else.
type Action struct {
	// ID is a stable machine name ("rollback", "view-logs").
	ID string

	// Label is the button text.
	Label string

	// Destructive actions render in the negative color.
	Destructive bool
}

var (
	ActionRollback      = Action{ID: "rollback", Label: "Rollback"}
	ActionRedeploy      = Action{ID: "redeploy", Label: "Redeploy"}
	ActionViewLogs      = Action{ID: "view-logs", Label: "View Logs"}
	ActionDeploy        = Action{ID: "deploy", Label: "Deploy"}
	ActionSettings      = Action{ID: "settings", Label: "Settings"}
	ActionLogs          = Action{ID: "logs", Label: "Logs"}
	ActionCopyLogEntry  = Action{ID: "copy-log-entry", Label: "Copy Log Entry"}
	ActionViewInContext = Action{ID: "view-in-context", Label: "View in Context"}
	ActionEdit          = Action{ID: "edit", Label: "Edit"}
	ActionDelete        = Action{ID: "delete", Label: "Delete", Destructive: true}
	ActionReveal        = Action{ID: "reveal", Label: "Reveal"}
	ActionCopy          = Action{ID: "copy", Label: "Copy"}
	ActionRevoke        = Action{ID: "revoke", Label: "Revoke", Destructive: true}
	ActionChangeRole    = Action{ID: "change-role", Label: "Change Role"}
	ActionRemove        = Action{ID: "remove", Label: "Remove", Destructive: true}
	ActionIncidentLog   = Action{ID: "incident-history", Label: "View Incident History"}
	ActionDownloadPDF   = Action{ID: "download-pdf", Label: "Download PDF"}
	ActionInsert        = Action{ID: "insert", Label: "Insert"}
	ActionRealtime      = Action{ID: "realtime", Label: "Realtime"}
	ActionRetryDelivery = Action{ID: "retry", Label: "Retry"}
)

// ActionLabels returns the labels of actions in order.
func ActionLabels(actions []Action) []string {
	labels := make([]string, len(actions))
	for index, action := range actions {
		labels[index] = action.Label
	}
	return labels
}

// HasAction reports whether actions contains one with the given label.
func HasAction(actions []Action, label string) bool {
	for _, action := range actions {
		if action.Label == label {
			return true
		}
	}
	return false
}
