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

// subscriptionManager implements domain.SubscriptionManager.
type subscriptionManager struct {
	repo    repository.Querier
	catalog domain.PlanCatalog
	ledger  domain.InvoiceLedger
	events  events.Publisher
	metrics *telemetry.BillingMetrics
	logger  zerolog.Logger
	now     func() time.Time
}

// NewSubscriptionManager creates a new SubscriptionManager instance.
func NewSubscriptionManager(
	repo repository.Querier,
	catalog domain.PlanCatalog,
	ledger domain.InvoiceLedger,
	publisher events.Publisher,
	metrics *telemetry.BillingMetrics,
	logger zerolog.Logger,
) domain.SubscriptionManager {
	return &subscriptionManager{
		repo:    repo,
		catalog: catalog,
		ledger:  ledger,
		events:  publisher,
		metrics: metrics,
		logger:  logger.With().Str("component", "subscription_manager").Logger(),
		now:     time.Now,
	}
}

// CreateSubscription creates a subscription and bills its first charge.
//
// Flow:
//  1. Validate params
//  2. Resolve the plan (price + billing interval rule)
//  3. Compute the billing period with calendar-aware interval addition
//  4. Charge the account's open invoice (created if absent)
//  5. Insert the subscription row pointing at that invoice
//  6. Publish the created event
//
// Steps 4 and 5 are separate writes. If step 5 fails the invoice keeps the
// charge with no subscription row behind it; that is surfaced as an
// ECONSISTENCY error and logged loudly so the charge can be reconciled.
func (s *subscriptionManager) CreateSubscription(ctx context.Context, params domain.CreateSubscriptionParams) (*domain.SubscriptionWithInvoice, error) {
	const op = "subscription.create"

	// Step 1: Validate params
	if params.AccountID == uuid.Nil {
		return nil, domain.Invalid(op, "account id is required")
	}
	if params.ProfileID == uuid.Nil {
		return nil, domain.Invalid(op, "profile id is required")
	}
	if params.Kind.IsZero() {
		return nil, domain.Invalid(op, "subscription kind is required")
	}

	// Step 2: Resolve the plan
	plan, err := s.catalog.Resolve(ctx, params.Kind)
	if err != nil {
		return nil, err
	}

	// Step 3: Compute the billing period
	periodStart := s.now().UTC()
	periodEnd, err := AddInterval(periodStart, plan.Type.IntervalUnit, plan.Type.IntervalCount)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINVALID, op, "plan has an unsupported billing interval")
	}

	// Step 4: Charge the open invoice
	invoice, err := s.ledger.GetOrCreateOpenInvoice(ctx, params.AccountID, plan.Price)
	if err != nil {
		return nil, err
	}

	// Step 5: Insert the subscription
	createParams := repository.CreateSubscriptionParams{
		AccountID:          repository.PgUUID(params.AccountID),
		ProfileID:          repository.PgUUID(params.ProfileID),
		SubscriptionKind:   params.Kind.String(),
		InvoiceID:          repository.PgUUID(invoice.ID),
		Status:             string(domain.SubscriptionActive),
		CurrentPeriodStart: repository.PgTimestamptz(periodStart),
		CurrentPeriodEnd:   repository.PgTimestamptz(periodEnd),
	}
	if params.Kind.IsMembership() {
		createParams.MembershipPlanID = repository.PgUUID(params.Kind.PlanID())
	} else {
		createParams.ServicePlanID = repository.PgUUID(params.Kind.PlanID())
	}

	row, err := s.repo.CreateSubscription(ctx, createParams)
	if err != nil {
		// The invoice already carries the charge; only a reconciliation pass
		// can walk this back.
		s.logger.Error().Err(err).
			Str("account_id", params.AccountID.String()).
			Str("invoice_id", invoice.ID.String()).
			Str("amount_charged", plan.Price.String()).
			Msg("subscription insert failed after invoice was charged")
		s.metrics.ConsistencyFailures.Inc()
		return nil, domain.Consistency(err, op, "invoice charged but subscription not recorded")
	}

	sub := subscriptionFromRow(row)

	s.logger.Info().
		Str("subscription_id", sub.ID.String()).
		Str("account_id", sub.AccountID.String()).
		Str("kind", sub.Kind.String()).
		Str("plan_id", plan.PlanID.String()).
		Str("invoice_id", invoice.ID.String()).
		Msg("subscription created")
	s.metrics.SubscriptionsCreated.WithLabelValues(sub.Kind.String()).Inc()

	if err := s.events.Publish(ctx, events.SubjectSubscriptionCreated, events.SubscriptionCreated{
		SubscriptionID: sub.ID,
		AccountID:      sub.AccountID,
		ProfileID:      sub.ProfileID,
		Kind:           sub.Kind.String(),
		PlanID:         plan.PlanID,
		Amount:         plan.Price.String(),
		Currency:       plan.Currency,
		InvoiceID:      invoice.ID,
		OccurredAt:     periodStart,
	}); err != nil {
		s.logger.Warn().Err(err).Str("subscription_id", sub.ID.String()).Msg("failed to publish subscription created event")
	}

	return &domain.SubscriptionWithInvoice{Subscription: sub, Invoice: invoice}, nil
}

// CreateMembershipSubscription subscribes a profile to a membership plan.
func (s *subscriptionManager) CreateMembershipSubscription(ctx context.Context, accountID, profileID, membershipPlanID uuid.UUID) (*domain.SubscriptionWithInvoice, error) {
	return s.CreateSubscription(ctx, domain.CreateSubscriptionParams{
		AccountID: accountID,
		ProfileID: profileID,
		Kind:      domain.Membership(membershipPlanID),
	})
}

// CancelSubscription cancels now or flags the subscription for cancellation
// at period end. The deferred path only sets the flag; completing it when
// the period rolls over is the external scheduler's job.
func (s *subscriptionManager) CancelSubscription(ctx context.Context, subscriptionID uuid.UUID, immediately bool) (*domain.Subscription, error) {
	const op = "subscription.cancel"

	current, err := s.repo.GetSubscriptionByID(ctx, repository.PgUUID(subscriptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound(op, "subscription", subscriptionID.String())
		}
		return nil, domain.Internal(err, op, "failed to load subscription")
	}

	params := repository.UpdateSubscriptionCancellationParams{
		SubscriptionID:    repository.PgUUID(subscriptionID),
		Status:            current.Status,
		CancelAtPeriodEnd: !immediately,
		CanceledAt:        current.CanceledAt,
	}
	if immediately {
		params.Status = string(domain.SubscriptionCanceled)
		params.CanceledAt = repository.PgTimestamptz(s.now().UTC())
	}

	row, err := s.repo.UpdateSubscriptionCancellation(ctx, params)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to update subscription")
	}

	sub := subscriptionFromRow(row)

	s.logger.Info().
		Str("subscription_id", sub.ID.String()).
		Bool("immediately", immediately).
		Msg("subscription canceled")
	s.metrics.SubscriptionsCanceled.Inc()

	if err := s.events.Publish(ctx, events.SubjectSubscriptionCanceled, events.SubscriptionCanceled{
		SubscriptionID: sub.ID,
		AccountID:      sub.AccountID,
		Immediately:    immediately,
		OccurredAt:     s.now().UTC(),
	}); err != nil {
		s.logger.Warn().Err(err).Str("subscription_id", sub.ID.String()).Msg("failed to publish subscription canceled event")
	}

	return sub, nil
}

// GetSubscription returns a subscription by id.
func (s *subscriptionManager) GetSubscription(ctx context.Context, subscriptionID uuid.UUID) (*domain.Subscription, error) {
	const op = "subscription.get"

	row, err := s.repo.GetSubscriptionByID(ctx, repository.PgUUID(subscriptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound(op, "subscription", subscriptionID.String())
		}
		return nil, domain.Internal(err, op, "failed to load subscription")
	}
	return subscriptionFromRow(row), nil
}

// ListSubscriptionsForAccount returns the account's subscriptions with plan
// name and price attached.
func (s *subscriptionManager) ListSubscriptionsForAccount(ctx context.Context, accountID uuid.UUID) ([]domain.SubscriptionSummary, error) {
	const op = "subscription.list_for_account"

	if accountID == uuid.Nil {
		return nil, domain.Invalid(op, "account id is required")
	}

	rows, err := s.repo.ListSubscriptionsForAccount(ctx, repository.PgUUID(accountID))
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list subscriptions")
	}

	summaries := make([]domain.SubscriptionSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.SubscriptionSummary{
			Subscription: *subscriptionFromRow(repository.Subscription{
				SubscriptionID:     row.SubscriptionID,
				AccountID:          row.AccountID,
				ProfileID:          row.ProfileID,
				SubscriptionKind:   row.SubscriptionKind,
				MembershipPlanID:   row.MembershipPlanID,
				ServicePlanID:      row.ServicePlanID,
				InvoiceID:          row.InvoiceID,
				Status:             row.Status,
				CurrentPeriodStart: row.CurrentPeriodStart,
				CurrentPeriodEnd:   row.CurrentPeriodEnd,
				CancelAtPeriodEnd:  row.CancelAtPeriodEnd,
				CanceledAt:         row.CanceledAt,
				CreatedAt:          row.CreatedAt,
				UpdatedAt:          row.UpdatedAt,
			}),
			PlanName:  row.PlanName,
			PlanPrice: repository.DecimalFromNumeric(row.PlanPrice),
			Currency:  row.Currency,
		})
	}

	return summaries, nil
}

// subscriptionFromRow maps a repository subscription row to the domain type.
func subscriptionFromRow(row repository.Subscription) *domain.Subscription {
	var kind domain.SubscriptionKind
	switch row.SubscriptionKind {
	case domain.KindMembership:
		kind = domain.Membership(repository.UUIDValue(row.MembershipPlanID))
	case domain.KindAddon:
		kind = domain.Addon(repository.UUIDValue(row.ServicePlanID))
	}

	return &domain.Subscription{
		ID:                 repository.UUIDValue(row.SubscriptionID),
		AccountID:          repository.UUIDValue(row.AccountID),
		ProfileID:          repository.UUIDValue(row.ProfileID),
		Kind:               kind,
		Status:             domain.SubscriptionStatus(row.Status),
		CurrentPeriodStart: row.CurrentPeriodStart.Time,
		CurrentPeriodEnd:   row.CurrentPeriodEnd.Time,
		CancelAtPeriodEnd:  row.CancelAtPeriodEnd,
		CanceledAt:         repository.TimePtr(row.CanceledAt),
		InvoiceID:          repository.UUIDValue(row.InvoiceID),
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}
