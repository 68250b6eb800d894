package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fieldhouse/ledger/internal/domain"
	"github.com/fieldhouse/ledger/internal/repository"
	"github.com/fieldhouse/ledger/internal/telemetry"
)

// openInvoiceDueIn is how long an account has to settle a freshly opened
// invoice.
const openInvoiceDueIn = 7 * 24 * time.Hour

// invoiceLedger implements domain.InvoiceLedger. The one-open-invoice-per-
// account rule lives in the store (partial unique index plus an atomic
// upsert), not here; this service just shapes rows and errors.
type invoiceLedger struct {
	repo    repository.Querier
	metrics *telemetry.BillingMetrics
	logger  zerolog.Logger
	now     func() time.Time
}

// NewInvoiceLedger creates a new InvoiceLedger instance.
func NewInvoiceLedger(repo repository.Querier, metrics *telemetry.BillingMetrics, logger zerolog.Logger) domain.InvoiceLedger {
	return &invoiceLedger{
		repo:    repo,
		metrics: metrics,
		logger:  logger.With().Str("component", "invoice_ledger").Logger(),
		now:     time.Now,
	}
}

// GetOrCreateOpenInvoice adds amountToAdd onto the account's open invoice.
//
// Flow:
//  1. Validate the amount
//  2. Upsert against the open-invoice partial unique index: insert a fresh
//     open invoice, or on conflict add the amount onto the existing one
//  3. Map the row back to the domain
//
// Because step 2 is a single statement, concurrent callers for the same
// account serialize on the index and aggregate onto one invoice; the race
// where two callers both see "no open invoice" and insert twice cannot
// produce two rows.
func (s *invoiceLedger) GetOrCreateOpenInvoice(ctx context.Context, accountID uuid.UUID, amountToAdd decimal.Decimal) (*domain.Invoice, error) {
	const op = "invoice.get_or_create_open"

	if accountID == uuid.Nil {
		return nil, domain.Invalid(op, "account id is required")
	}
	// Zero is allowed: free and trial plans carry a 0.00 price and still
	// land a charge line on the open invoice.
	if amountToAdd.Sign() < 0 {
		return nil, domain.WrapError(ErrInvalidAmount, domain.EINVALID, op, "amount to add must not be negative")
	}

	now := s.now().UTC()
	number, err := generateInvoiceNumber()
	if err != nil {
		return nil, domain.Internal(err, op, "failed to generate invoice number")
	}

	row, err := s.repo.UpsertOpenInvoice(ctx, repository.UpsertOpenInvoiceParams{
		AccountID:          repository.PgUUID(accountID),
		InvoiceNumber:      number,
		AmountDue:          repository.NumericFromDecimal(amountToAdd),
		BillingPeriodStart: repository.PgTimestamptz(now),
		BillingPeriodEnd:   repository.PgTimestamptz(now.Add(openInvoiceDueIn)),
		DueDate:            repository.PgDate(now.Add(openInvoiceDueIn)),
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to upsert open invoice")
	}

	inv := invoiceFromRow(row)
	if inv.InvoiceNumber == number {
		s.logger.Info().
			Str("account_id", accountID.String()).
			Str("invoice_id", inv.ID.String()).
			Str("invoice_number", inv.InvoiceNumber).
			Msg("opened new invoice")
		s.metrics.InvoicesOpened.Inc()
	} else {
		s.logger.Debug().
			Str("account_id", accountID.String()).
			Str("invoice_id", inv.ID.String()).
			Str("amount_added", amountToAdd.String()).
			Msg("charged existing open invoice")
	}
	s.metrics.ChargesRecorded.Inc()

	return inv, nil
}

// GetPendingInvoices returns the account's open invoices with each
// contributing subscription's plan attached.
func (s *invoiceLedger) GetPendingInvoices(ctx context.Context, accountID uuid.UUID) ([]domain.PendingInvoice, error) {
	const op = "invoice.get_pending"

	if accountID == uuid.Nil {
		return nil, domain.Invalid(op, "account id is required")
	}

	rows, err := s.repo.ListOpenInvoicesForAccount(ctx, repository.PgUUID(accountID))
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list open invoices")
	}

	pending := make([]domain.PendingInvoice, 0, len(rows))
	for _, row := range rows {
		chargeRows, err := s.repo.ListInvoiceCharges(ctx, row.InvoiceID)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to list invoice charges")
		}
		charges := make([]domain.InvoiceCharge, 0, len(chargeRows))
		for _, c := range chargeRows {
			charges = append(charges, domain.InvoiceCharge{
				SubscriptionID: repository.UUIDValue(c.SubscriptionID),
				Kind:           c.SubscriptionKind,
				PlanName:       c.PlanName,
				PlanPrice:      repository.DecimalFromNumeric(c.PlanPrice),
				Currency:       c.Currency,
			})
		}
		pending = append(pending, domain.PendingInvoice{
			Invoice: *invoiceFromRow(row),
			Charges: charges,
		})
	}

	return pending, nil
}

// GetInvoiceByID returns the invoice scoped to the account. A hit on another
// account's invoice id reports not found rather than leaking its existence.
func (s *invoiceLedger) GetInvoiceByID(ctx context.Context, invoiceID, accountID uuid.UUID) (*domain.Invoice, error) {
	const op = "invoice.get_by_id"

	row, err := s.repo.GetInvoiceForAccount(ctx, repository.GetInvoiceForAccountParams{
		InvoiceID: repository.PgUUID(invoiceID),
		AccountID: repository.PgUUID(accountID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound(op, "invoice", invoiceID.String())
		}
		return nil, domain.Internal(err, op, "failed to load invoice")
	}

	return invoiceFromRow(row), nil
}

// invoiceFromRow maps a repository invoice row to the domain type.
func invoiceFromRow(row repository.Invoice) *domain.Invoice {
	return &domain.Invoice{
		ID:                 repository.UUIDValue(row.InvoiceID),
		AccountID:          repository.UUIDValue(row.AccountID),
		InvoiceNumber:      row.InvoiceNumber,
		Status:             domain.InvoiceStatus(row.Status),
		AmountDue:          repository.DecimalFromNumeric(row.AmountDue),
		AmountPaid:         repository.DecimalFromNumeric(row.AmountPaid),
		BillingPeriodStart: row.BillingPeriodStart.Time,
		BillingPeriodEnd:   row.BillingPeriodEnd.Time,
		DueDate:            row.DueDate.Time,
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}

// generateInvoiceNumber returns a human-readable unique invoice number of
// the form INV-XXXXXXXXXX using an unambiguous uppercase alphabet (no 0/O
// or 1/I).
func generateInvoiceNumber() (string, error) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	const length = 10

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return "INV-" + string(b), nil
}
