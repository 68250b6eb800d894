// Package events publishes billing lifecycle events so downstream consumers
// (notifications, CRM sync, accounting exports) can react without the ledger
// knowing about them.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Subjects billing events are published on.
const (
	SubjectSubscriptionCreated  = "billing.subscription.created"
	SubjectSubscriptionCanceled = "billing.subscription.canceled"
	SubjectInvoicePaid          = "billing.invoice.paid"
	SubjectPaymentFailed        = "billing.payment.failed"
)

// Publisher publishes an event on a subject. Implementations must be safe
// for concurrent use. Publishing is best-effort from the caller's point of
// view: services log publish failures and do not roll back ledger writes.
type Publisher interface {
	Publish(ctx context.Context, subject string, event any) error
}

// SubscriptionCreated is published after a subscription and its initial
// invoice charge are recorded.
type SubscriptionCreated struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	AccountID      uuid.UUID `json:"account_id"`
	ProfileID      uuid.UUID `json:"profile_id"`
	Kind           string    `json:"kind"`
	PlanID         uuid.UUID `json:"plan_id"`
	Amount         string    `json:"amount"`
	Currency       string    `json:"currency"`
	InvoiceID      uuid.UUID `json:"invoice_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// SubscriptionCanceled is published after a cancellation, immediate or
// deferred.
type SubscriptionCanceled struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	AccountID      uuid.UUID `json:"account_id"`
	Immediately    bool      `json:"immediately"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// InvoicePaid is published after a successful payment finalization closes
// an invoice.
type InvoicePaid struct {
	InvoiceID        uuid.UUID `json:"invoice_id"`
	AccountID        uuid.UUID `json:"account_id"`
	InvoiceNumber    string    `json:"invoice_number"`
	PaymentAttemptID uuid.UUID `json:"payment_attempt_id"`
	Amount           string    `json:"amount"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// PaymentFailed is published when a payment attempt is finalized as failed.
type PaymentFailed struct {
	PaymentAttemptID uuid.UUID `json:"payment_attempt_id"`
	InvoiceID        uuid.UUID `json:"invoice_id"`
	Provider         string    `json:"provider"`
	Reason           string    `json:"reason"`
	OccurredAt       time.Time `json:"occurred_at"`
}
