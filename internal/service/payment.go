package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/fieldhouse/ledger/internal/domain"
	"github.com/fieldhouse/ledger/internal/events"
	"github.com/fieldhouse/ledger/internal/repository"
	"github.com/fieldhouse/ledger/internal/telemetry"
)

// paymentProcessor implements domain.PaymentProcessor. It needs the full
// Store rather than a bare Querier because a successful finalization is
// three writes that must commit together.
type paymentProcessor struct {
	store   repository.Store
	events  events.Publisher
	metrics *telemetry.BillingMetrics
	logger  zerolog.Logger
	now     func() time.Time
}

// NewPaymentProcessor creates a new PaymentProcessor instance.
func NewPaymentProcessor(store repository.Store, publisher events.Publisher, metrics *telemetry.BillingMetrics, logger zerolog.Logger) domain.PaymentProcessor {
	return &paymentProcessor{
		store:   store,
		events:  publisher,
		metrics: metrics,
		logger:  logger.With().Str("component", "payment_processor").Logger(),
		now:     time.Now,
	}
}

// RecordPaymentAttempt appends a pending attempt for an invoice. Attempts
// are append-only; a retry after a failure is a fresh attempt.
func (p *paymentProcessor) RecordPaymentAttempt(ctx context.Context, params domain.RecordPaymentAttemptParams) (*domain.PaymentAttempt, error) {
	const op = "payment.record_attempt"

	if params.InvoiceID == uuid.Nil {
		return nil, domain.Invalid(op, "invoice id is required")
	}
	if params.Provider == "" {
		return nil, domain.Invalid(op, "provider is required")
	}
	if params.Amount.Sign() <= 0 {
		return nil, domain.WrapError(ErrInvalidAmount, domain.EINVALID, op, "attempt amount must be greater than zero")
	}

	// Confirm the invoice exists before attaching an attempt to it.
	if _, err := p.store.GetInvoiceByID(ctx, repository.PgUUID(params.InvoiceID)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound(op, "invoice", params.InvoiceID.String())
		}
		return nil, domain.Internal(err, op, "failed to load invoice")
	}

	row, err := p.store.CreatePaymentAttempt(ctx, repository.CreatePaymentAttemptParams{
		InvoiceID:         repository.PgUUID(params.InvoiceID),
		Provider:          params.Provider,
		ProviderPaymentID: repository.PgText(params.ProviderPaymentID),
		AmountAttempted:   repository.NumericFromDecimal(params.Amount),
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to record payment attempt")
	}

	attempt := attemptFromRow(row)

	p.logger.Info().
		Str("payment_attempt_id", attempt.ID.String()).
		Str("invoice_id", attempt.InvoiceID.String()).
		Str("provider", attempt.Provider).
		Str("amount", attempt.AmountAttempted.String()).
		Msg("payment attempt recorded")
	p.metrics.PaymentAttempts.WithLabelValues(attempt.Provider).Inc()

	return attempt, nil
}

// FinalizePayment applies the gateway's verdict to an attempt.
//
// Flow (succeeded outcome):
//  1. Load the attempt and its invoice
//  2. In one transaction: mark the attempt succeeded, insert the Payment
//     row, and close the invoice (status=paid, amount_paid=amount_attempted)
//  3. Publish the invoice paid event
//
// A failed outcome only marks the attempt failed with the given reason.
// Finalization is not retry-safe: a second succeeded call for the same
// attempt writes again rather than short-circuiting, so callers route each
// gateway verdict here exactly once and open a new attempt to retry.
func (p *paymentProcessor) FinalizePayment(ctx context.Context, attemptID uuid.UUID, outcome domain.FinalizeOutcome, failureReason string) (*domain.FinalizeResult, error) {
	const op = "payment.finalize"

	if !outcome.Valid() {
		return nil, domain.WrapError(ErrInvalidOutcome, domain.EINVALID, op, "outcome must be succeeded or failed")
	}

	attemptRow, err := p.store.GetPaymentAttemptByID(ctx, repository.PgUUID(attemptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound(op, "payment attempt", attemptID.String())
		}
		return nil, domain.Internal(err, op, "failed to load payment attempt")
	}

	if outcome == domain.OutcomeFailed {
		updated, err := p.store.UpdatePaymentAttemptStatus(ctx, repository.UpdatePaymentAttemptStatusParams{
			PaymentAttemptID: attemptRow.PaymentAttemptID,
			Status:           string(domain.AttemptFailed),
			FailureReason:    repository.PgText(failureReason),
		})
		if err != nil {
			return nil, domain.Internal(err, op, "failed to mark attempt failed")
		}

		attempt := attemptFromRow(updated)

		p.logger.Info().
			Str("payment_attempt_id", attempt.ID.String()).
			Str("invoice_id", attempt.InvoiceID.String()).
			Str("failure_reason", failureReason).
			Msg("payment attempt failed")
		p.metrics.PaymentsFailed.WithLabelValues(attempt.Provider).Inc()

		if err := p.events.Publish(ctx, events.SubjectPaymentFailed, events.PaymentFailed{
			PaymentAttemptID: attempt.ID,
			InvoiceID:        attempt.InvoiceID,
			Provider:         attempt.Provider,
			Reason:           failureReason,
			OccurredAt:       p.now().UTC(),
		}); err != nil {
			p.logger.Warn().Err(err).Str("payment_attempt_id", attempt.ID.String()).Msg("failed to publish payment failed event")
		}

		return &domain.FinalizeResult{Success: false, Attempt: attempt}, nil
	}

	invoiceRow, err := p.store.GetInvoiceByID(ctx, attemptRow.InvoiceID)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load invoice for attempt")
	}

	var (
		updatedAttempt repository.PaymentAttempt
		paidInvoice    repository.Invoice
	)
	err = p.store.ExecTx(ctx, func(q repository.Querier) error {
		updatedAttempt, err = q.UpdatePaymentAttemptStatus(ctx, repository.UpdatePaymentAttemptStatusParams{
			PaymentAttemptID: attemptRow.PaymentAttemptID,
			Status:           string(domain.AttemptSucceeded),
		})
		if err != nil {
			return err
		}

		if _, err := q.CreatePayment(ctx, repository.CreatePaymentParams{
			InvoiceID:        invoiceRow.InvoiceID,
			AccountID:        invoiceRow.AccountID,
			PaymentAttemptID: attemptRow.PaymentAttemptID,
			Amount:           attemptRow.AmountAttempted,
			PaymentMethod:    attemptRow.Provider,
			PaymentDate:      repository.PgTimestamptz(p.now().UTC()),
			ReferenceID:      attemptRow.ProviderPaymentID,
		}); err != nil {
			return err
		}

		paidInvoice, err = q.MarkInvoicePaid(ctx, repository.MarkInvoicePaidParams{
			InvoiceID:  invoiceRow.InvoiceID,
			AmountPaid: attemptRow.AmountAttempted,
		})
		return err
	})
	if err != nil {
		p.metrics.ConsistencyFailures.Inc()
		return nil, domain.Consistency(err, op, "payment finalization rolled back")
	}

	attempt := attemptFromRow(updatedAttempt)
	amount := repository.DecimalFromNumeric(attemptRow.AmountAttempted)

	p.logger.Info().
		Str("payment_attempt_id", attempt.ID.String()).
		Str("invoice_id", attempt.InvoiceID.String()).
		Str("invoice_number", paidInvoice.InvoiceNumber).
		Str("amount", amount.String()).
		Msg("payment finalized, invoice paid")
	p.metrics.PaymentsSucceeded.WithLabelValues(attempt.Provider).Inc()
	amountFloat, _ := amount.Float64()
	p.metrics.AmountCollected.Add(amountFloat)

	if err := p.events.Publish(ctx, events.SubjectInvoicePaid, events.InvoicePaid{
		InvoiceID:        repository.UUIDValue(paidInvoice.InvoiceID),
		AccountID:        repository.UUIDValue(paidInvoice.AccountID),
		InvoiceNumber:    paidInvoice.InvoiceNumber,
		PaymentAttemptID: attempt.ID,
		Amount:           amount.String(),
		OccurredAt:       p.now().UTC(),
	}); err != nil {
		p.logger.Warn().Err(err).Str("invoice_id", attempt.InvoiceID.String()).Msg("failed to publish invoice paid event")
	}

	return &domain.FinalizeResult{Success: true, Attempt: attempt}, nil
}

// attemptFromRow maps a repository payment attempt row to the domain type.
func attemptFromRow(row repository.PaymentAttempt) *domain.PaymentAttempt {
	return &domain.PaymentAttempt{
		ID:                repository.UUIDValue(row.PaymentAttemptID),
		InvoiceID:         repository.UUIDValue(row.InvoiceID),
		Provider:          row.Provider,
		ProviderPaymentID: repository.TextValue(row.ProviderPaymentID),
		AmountAttempted:   repository.DecimalFromNumeric(row.AmountAttempted),
		Status:            domain.PaymentAttemptStatus(row.Status),
		FailureReason:     repository.TextValue(row.FailureReason),
		CreatedAt:         row.CreatedAt.Time,
	}
}
