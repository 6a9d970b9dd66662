// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "fmt"

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoicePending InvoiceStatus = "pending"
	InvoiceFailed  InvoiceStatus = "failed"
)

// Invoice is one billing period's charge.
type Invoice struct {
	ID            string        `json:"id" yaml:"id"`
	Date          string        `json:"date" yaml:"date"`
	Amount        float64       `json:"amount" yaml:"amount"`
	Status        InvoiceStatus `json:"status" yaml:"status"`
	Period        string        `json:"period" yaml:"period"`
	InvoiceNumber string        `json:"invoice_number" yaml:"invoice_number"`
}

func (invoice Invoice) EntityID() string     { return invoice.ID }
func (invoice Invoice) EntityStatus() string { return string(invoice.Status) }

// SearchText matches invoices by number and period.
func (invoice Invoice) SearchText() []string {
	return []string{invoice.InvoiceNumber, invoice.Period}
}

// AmountLabel formats the amount in dollars with cents.
func (invoice Invoice) AmountLabel() string {
	return fmt.Sprintf("$%.2f", invoice.Amount)
}

// Actions is the same for every invoice status.
func (invoice Invoice) Actions() []Action {
	return []Action{ActionDownloadPDF}
}

// UsageMetric is consumption of one plan allowance.
type UsageMetric struct {
	Name    string  `json:"name" yaml:"name"`
	Current float64 `json:"current" yaml:"current"`
	Limit   float64 `json:"limit" yaml:"limit"`
	Unit    string  `json:"unit" yaml:"unit"`
}

// Percentage returns Current as a share of Limit, rounded to one
// decimal. A zero limit reports zero.
func (metric UsageMetric) Percentage() float64 {
	if metric.Limit <= 0 {
		return 0
	}
	return float64(int(metric.Current/metric.Limit*1000+0.5)) / 10
}

// PaymentMethod is the card or bank account invoices are charged to.
type PaymentMethod struct {
	Type       string `json:"type" yaml:"type"`
	Last4      string `json:"last4" yaml:"last4"`
	Brand      string `json:"brand,omitempty" yaml:"brand,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty" yaml:"expiry_date,omitempty"`
	IsDefault  bool   `json:"is_default" yaml:"is_default"`
}

// Billing groups the account-level billing data shown above the
// invoice list.
type Billing struct {
	Plan          string        `json:"plan" yaml:"plan"`
	Usage         []UsageMetric `json:"usage" yaml:"usage"`
	PaymentMethod PaymentMethod `json:"payment_method" yaml:"payment_method"`
}
