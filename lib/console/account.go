// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

// Account is the signed-in user's profile and preferences, shown
// read-only on the settings page.
type Account struct {
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Company string `json:"company,omitempty" yaml:"company,omitempty"`

	Notifications []NotificationSetting `json:"notifications,omitempty" yaml:"notifications,omitempty"`

	TwoFactor bool      `json:"two_factor" yaml:"two_factor"`
	Sessions  []Session `json:"sessions,omitempty" yaml:"sessions,omitempty"`

	BillingCycle    string `json:"billing_cycle,omitempty" yaml:"billing_cycle,omitempty"`
	NextBillingDate string `json:"next_billing_date,omitempty" yaml:"next_billing_date,omitempty"`
}

// NotificationSetting is one email notification toggle.
type NotificationSetting struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

// Session is a signed-in device.
type Session struct {
	ID       string `json:"id" yaml:"id"`
	Device   string `json:"device" yaml:"device"`
	Platform string `json:"platform" yaml:"platform"`
	Browser  string `json:"browser" yaml:"browser"`
	Location string `json:"location" yaml:"location"`
	Current  bool   `json:"current,omitempty" yaml:"current,omitempty"`
}

// EnabledNotifications counts the toggles that are on.
func (account Account) EnabledNotifications() int {
	count := 0
	for _, setting := range account.Notifications {
		if setting.Enabled {
			count++
		}
	}
	return count
}

func seedAccount() Account {
	return Account{
		Name:    "John Doe",
		Email:   "john@company.com",
		Company: "Acme Inc.",
		Notifications: []NotificationSetting{
			{ID: "deployments", Label: "Deployment notifications", Description: "Receive email when deployments complete", Enabled: true},
			{ID: "errors", Label: "Error alerts", Description: "Get notified when error rate exceeds threshold", Enabled: true},
			{ID: "performance", Label: "Performance warnings", Description: "Alert when response times are degraded", Enabled: true},
			{ID: "billing", Label: "Billing updates", Description: "Receive invoices and payment confirmations", Enabled: true},
			{ID: "reports", Label: "Weekly reports", Description: "Summary of your projects and usage", Enabled: false},
		},
		TwoFactor: false,
		Sessions: []Session{
			{ID: "1", Device: "Current session", Platform: "Windows", Browser: "Chrome", Location: "New York, US", Current: true},
			{ID: "2", Device: "MacBook Pro", Platform: "macOS", Browser: "Safari", Location: "San Francisco, US"},
		},
		BillingCycle:    "Monthly",
		NextBillingDate: "January 28, 2026",
	}
}
