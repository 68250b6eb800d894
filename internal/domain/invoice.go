package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice lifecycle statuses. paid is reached only through a successful
// payment finalization; void and uncollectible are reserved states with no
// transition path in the current ledger.
type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "draft"
	InvoiceOpen          InvoiceStatus = "open"
	InvoicePaid          InvoiceStatus = "paid"
	InvoiceVoid          InvoiceStatus = "void"
	InvoiceUncollectible InvoiceStatus = "uncollectible"
)

// Invoice is the per-account tab that subscription charges accumulate on.
// At most one invoice per account is open at a time; new charges add to it
// rather than spawning a new invoice.
type Invoice struct {
	ID                 uuid.UUID       `json:"invoice_id"`
	AccountID          uuid.UUID       `json:"account_id"`
	InvoiceNumber      string          `json:"invoice_number"`
	Status             InvoiceStatus   `json:"status"`
	AmountDue          decimal.Decimal `json:"amount_due"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	BillingPeriodStart time.Time       `json:"billing_period_start"`
	BillingPeriodEnd   time.Time       `json:"billing_period_end"`
	DueDate            time.Time       `json:"due_date"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// InvoiceCharge is one subscription's contribution to an invoice, with the
// originating plan attached for display.
type InvoiceCharge struct {
	SubscriptionID uuid.UUID       `json:"subscription_id"`
	Kind           string          `json:"kind"`
	PlanName       string          `json:"plan_name"`
	PlanPrice      decimal.Decimal `json:"plan_price"`
	Currency       string          `json:"currency"`
}

// PendingInvoice is an open invoice with its charges attached for display.
type PendingInvoice struct {
	Invoice
	Charges []InvoiceCharge `json:"charges"`
}

// InvoiceLedger owns the current-open-invoice-per-account resource.
type InvoiceLedger interface {
	// GetOrCreateOpenInvoice adds amountToAdd to the account's open invoice,
	// creating it when none exists. The open-invoice singleton is enforced by
	// the store (partial unique index plus atomic upsert), so concurrent
	// callers aggregate onto one invoice instead of racing to create two.
	GetOrCreateOpenInvoice(ctx context.Context, accountID uuid.UUID, amountToAdd decimal.Decimal) (*Invoice, error)

	// GetPendingInvoices returns the account's open invoices with their
	// originating plan prices attached.
	GetPendingInvoices(ctx context.Context, accountID uuid.UUID) ([]PendingInvoice, error)

	// GetInvoiceByID returns the invoice scoped to the account. Returns an
	// ENOTFOUND error when the invoice is missing or belongs to another account.
	GetInvoiceByID(ctx context.Context, invoiceID, accountID uuid.UUID) (*Invoice, error)
}
