package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentAttempt statuses. succeeded and failed are terminal; a retry is a
// new attempt, never a second finalization of an old one.
type PaymentAttemptStatus string

const (
	AttemptCreated   PaymentAttemptStatus = "created"
	AttemptPending   PaymentAttemptStatus = "pending"
	AttemptSucceeded PaymentAttemptStatus = "succeeded"
	AttemptFailed    PaymentAttemptStatus = "failed"
)

// FinalizeOutcome is the gateway's verdict on a payment attempt.
type FinalizeOutcome string

const (
	OutcomeSucceeded FinalizeOutcome = "succeeded"
	OutcomeFailed    FinalizeOutcome = "failed"
)

// Valid reports whether the outcome is one of the two terminal verdicts.
func (o FinalizeOutcome) Valid() bool {
	return o == OutcomeSucceeded || o == OutcomeFailed
}

// PaymentAttempt records one interaction with an external payment gateway.
// It is distinct from the settled Payment row created only on success.
type PaymentAttempt struct {
	ID                uuid.UUID            `json:"payment_attempt_id"`
	InvoiceID         uuid.UUID            `json:"invoice_id"`
	Provider          string               `json:"provider"`
	ProviderPaymentID string               `json:"provider_payment_id,omitempty"`
	AmountAttempted   decimal.Decimal      `json:"amount_attempted"`
	Status            PaymentAttemptStatus `json:"status"`
	FailureReason     string               `json:"failure_reason,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

// Payment is a settled payment against an invoice.
type Payment struct {
	ID               uuid.UUID       `json:"payment_id"`
	InvoiceID        uuid.UUID       `json:"invoice_id"`
	AccountID        uuid.UUID       `json:"account_id"`
	PaymentAttemptID uuid.UUID       `json:"payment_attempt_id"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentDate      time.Time       `json:"payment_date"`
	ReferenceID      string          `json:"reference_id,omitempty"`
}

// RecordPaymentAttemptParams contains parameters for recording an attempt.
type RecordPaymentAttemptParams struct {
	InvoiceID         uuid.UUID
	Provider          string
	Amount            decimal.Decimal
	ProviderPaymentID string
}

// FinalizeResult reports whether an attempt settled its invoice.
type FinalizeResult struct {
	Success bool
	Attempt *PaymentAttempt
}

// PaymentProcessor runs the two-phase attempt/finalize payment protocol.
type PaymentProcessor interface {
	// RecordPaymentAttempt appends a pending attempt for an invoice. It is
	// append-only and safe to call repeatedly; every call creates a new
	// attempt row.
	RecordPaymentAttempt(ctx context.Context, params RecordPaymentAttemptParams) (*PaymentAttempt, error)

	// FinalizePayment applies the gateway's verdict. A failed outcome marks
	// the attempt failed and touches nothing else. A succeeded outcome marks
	// the attempt succeeded, inserts the Payment row, and closes the invoice
	// (status=paid, amount_paid=amount_attempted) in one store transaction:
	// if any of the three writes fails, none commit. Not retry-safe for
	// succeeded outcomes; retries require a new attempt.
	FinalizePayment(ctx context.Context, attemptID uuid.UUID, outcome FinalizeOutcome, failureReason string) (*FinalizeResult, error)
}
