// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "strings"

// WebhookStatus is whether a webhook receives deliveries.
type WebhookStatus string

const (
	WebhookActive   WebhookStatus = "active"
	WebhookDisabled WebhookStatus = "disabled"
)

// Webhook is an outbound event subscription.
type Webhook struct {
	ID           string        `json:"id" yaml:"id"`
	URL          string        `json:"url" yaml:"url"`
	Events       []string      `json:"events" yaml:"events"`
	Status       WebhookStatus `json:"status" yaml:"status"`
	Created      string        `json:"created" yaml:"created"`
	LastDelivery string        `json:"last_delivery" yaml:"last_delivery"`
	SuccessRate  float64       `json:"success_rate" yaml:"success_rate"`

	RecentDeliveries []Delivery `json:"recent_deliveries,omitempty" yaml:"recent_deliveries,omitempty"`
}

// DeliveryStatus is the outcome of one webhook delivery.
type DeliveryStatus string

const (
	DeliverySuccess DeliveryStatus = "success"
	DeliveryFailed  DeliveryStatus = "failed"
)

// Delivery is one attempt to POST an event to a webhook URL.
type Delivery struct {
	Timestamp    string         `json:"timestamp" yaml:"timestamp"`
	Status       DeliveryStatus `json:"status" yaml:"status"`
	StatusCode   int            `json:"status_code" yaml:"status_code"`
	ResponseTime string         `json:"response_time" yaml:"response_time"`
}

// Actions returns the per-delivery buttons: failed deliveries can be
// retried.
func (delivery Delivery) Actions() []Action {
	if delivery.Status == DeliveryFailed {
		return []Action{ActionRetryDelivery}
	}
	return nil
}

func (webhook Webhook) EntityID() string     { return webhook.ID }
func (webhook Webhook) EntityStatus() string { return string(webhook.Status) }

// SearchText matches webhooks by URL and subscribed event names.
func (webhook Webhook) SearchText() []string {
	return []string{webhook.URL, strings.Join(webhook.Events, " ")}
}

// Actions is the same for every webhook status.
func (webhook Webhook) Actions() []Action {
	return []Action{ActionEdit, ActionDelete}
}
