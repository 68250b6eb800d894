package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fieldhouse/ledger/internal/repository"
	"github.com/fieldhouse/ledger/internal/telemetry"
)

// =============================================================================
// SHARED TEST HELPERS
// =============================================================================

func newUUID() pgtype.UUID {
	return repository.PgUUID(uuid.New())
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func numeric(s string) pgtype.Numeric {
	return repository.NumericFromDecimal(money(s))
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// newTestMetrics registers on a fresh registry so parallel tests never
// collide on metric names.
func newTestMetrics() *telemetry.BillingMetrics {
	return telemetry.NewBillingMetrics(prometheus.NewRegistry())
}

func testInvoiceRow(accountID pgtype.UUID, number, amountDue, amountPaid, status string) repository.Invoice {
	now := time.Now().UTC()
	return repository.Invoice{
		InvoiceID:          newUUID(),
		AccountID:          accountID,
		InvoiceNumber:      number,
		Status:             status,
		AmountDue:          numeric(amountDue),
		AmountPaid:         numeric(amountPaid),
		BillingPeriodStart: pgtype.Timestamptz{Time: now, Valid: true},
		BillingPeriodEnd:   pgtype.Timestamptz{Time: now.Add(7 * 24 * time.Hour), Valid: true},
		DueDate:            pgtype.Date{Time: now.Add(7 * 24 * time.Hour), Valid: true},
		CreatedAt:          pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: now, Valid: true},
	}
}
