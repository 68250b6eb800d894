package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IntervalUnit is the calendar unit a billing interval is expressed in.
type IntervalUnit string

const (
	IntervalDay   IntervalUnit = "day"
	IntervalMonth IntervalUnit = "month"
	IntervalYear  IntervalUnit = "year"
)

// Valid reports whether the unit is one of the supported calendar units.
func (u IntervalUnit) Valid() bool {
	switch u {
	case IntervalDay, IntervalMonth, IntervalYear:
		return true
	}
	return false
}

// SubscriptionType is the billing-interval rule a plan subscribes to.
type SubscriptionType struct {
	ID                uuid.UUID
	Name              string
	IntervalUnit      IntervalUnit
	IntervalCount     int32
	AutoRenew         bool
	AllowsPause       bool
	AllowsCancel      bool
	GeneratesInvoices bool
}

// ResolvedPlan is the catalog's answer for a plan id: the price to charge
// and the billing-interval rule that governs the subscription period.
type ResolvedPlan struct {
	PlanID   uuid.UUID
	Name     string
	Price    decimal.Decimal
	Currency string
	Type     SubscriptionType
}

// PlanCatalog resolves plan ids against the read-only plan catalog.
// The catalog itself (service plans, membership plans, subscription types)
// is owned by the admin surface and never mutated from the ledger.
type PlanCatalog interface {
	// Resolve looks up the plan a subscription kind points at and returns its
	// price and subscription type. Returns an ENOTFOUND error for unknown plan ids.
	Resolve(ctx context.Context, kind SubscriptionKind) (*ResolvedPlan, error)
}
