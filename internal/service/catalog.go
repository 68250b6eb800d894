package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/fieldhouse/ledger/internal/domain"
	"github.com/fieldhouse/ledger/internal/repository"
)

// planCatalog implements domain.PlanCatalog over the plan tables. The tables
// are read-only from the ledger's point of view; the admin surface owns them.
type planCatalog struct {
	repo   repository.Querier
	logger zerolog.Logger
}

// NewPlanCatalog creates a new PlanCatalog instance.
func NewPlanCatalog(repo repository.Querier, logger zerolog.Logger) domain.PlanCatalog {
	return &planCatalog{
		repo:   repo,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Resolve looks up the plan a subscription kind points at. Membership kinds
// read membership_plans, addon kinds read service_plans; both join the
// subscription type so callers get price and interval rule in one call.
func (c *planCatalog) Resolve(ctx context.Context, kind domain.SubscriptionKind) (*domain.ResolvedPlan, error) {
	const op = "catalog.resolve"

	if kind.IsZero() {
		return nil, domain.Invalid(op, "subscription kind is required")
	}

	planID := repository.PgUUID(kind.PlanID())

	if kind.IsMembership() {
		row, err := c.repo.GetMembershipPlan(ctx, planID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.NotFound(op, "membership plan", kind.PlanID().String())
			}
			return nil, domain.Internal(err, op, "failed to load membership plan")
		}
		return &domain.ResolvedPlan{
			PlanID:   repository.UUIDValue(row.MembershipPlanID),
			Name:     row.PlanName,
			Price:    repository.DecimalFromNumeric(row.Price),
			Currency: row.Currency,
			Type: domain.SubscriptionType{
				ID:                repository.UUIDValue(row.SubscriptionTypeID),
				Name:              row.TypeName,
				IntervalUnit:      domain.IntervalUnit(row.BillingIntervalUnit),
				IntervalCount:     row.BillingIntervalCount,
				AutoRenew:         row.AutoRenew,
				AllowsPause:       row.AllowsPause,
				AllowsCancel:      row.AllowsCancel,
				GeneratesInvoices: row.GeneratesInvoices,
			},
		}, nil
	}

	row, err := c.repo.GetServicePlan(ctx, planID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound(op, "service plan", kind.PlanID().String())
		}
		return nil, domain.Internal(err, op, "failed to load service plan")
	}
	return &domain.ResolvedPlan{
		PlanID:   repository.UUIDValue(row.ServicePlanID),
		Name:     row.PlanName,
		Price:    repository.DecimalFromNumeric(row.Price),
		Currency: row.Currency,
		Type: domain.SubscriptionType{
			ID:                repository.UUIDValue(row.SubscriptionTypeID),
			Name:              row.TypeName,
			IntervalUnit:      domain.IntervalUnit(row.BillingIntervalUnit),
			IntervalCount:     row.BillingIntervalCount,
			AutoRenew:         row.AutoRenew,
			AllowsPause:       row.AllowsPause,
			AllowsCancel:      row.AllowsCancel,
			GeneratesInvoices: row.GeneratesInvoices,
		},
	}, nil
}
