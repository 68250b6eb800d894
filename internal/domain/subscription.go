package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subscription lifecycle statuses.
type SubscriptionStatus string

const (
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPaused   SubscriptionStatus = "paused"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
)

// Kind labels for SubscriptionKind.
const (
	KindMembership = "MEMBERSHIP"
	KindAddon      = "ADDON"
)

// SubscriptionKind is a tagged variant selecting exactly one plan reference:
// a membership plan or an addon service plan. Modeling the choice as a closed
// variant (instead of two nullable foreign keys) makes the mutual-exclusivity
// invariant impossible to violate from application code.
type SubscriptionKind struct {
	kind   string
	planID uuid.UUID
}

// Membership builds a MEMBERSHIP kind bound to a membership plan.
func Membership(planID uuid.UUID) SubscriptionKind {
	return SubscriptionKind{kind: KindMembership, planID: planID}
}

// Addon builds an ADDON kind bound to a service plan.
func Addon(planID uuid.UUID) SubscriptionKind {
	return SubscriptionKind{kind: KindAddon, planID: planID}
}

// IsZero reports whether the kind was never populated.
func (k SubscriptionKind) IsZero() bool { return k.kind == "" }

// MarshalJSON renders the kind and its plan reference together.
func (k SubscriptionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string    `json:"kind"`
		PlanID uuid.UUID `json:"plan_id"`
	}{Kind: k.kind, PlanID: k.planID})
}

// UnmarshalJSON restores a kind serialized by MarshalJSON.
func (k *SubscriptionKind) UnmarshalJSON(b []byte) error {
	var raw struct {
		Kind   string    `json:"kind"`
		PlanID uuid.UUID `json:"plan_id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch raw.Kind {
	case KindMembership, KindAddon:
		*k = SubscriptionKind{kind: raw.Kind, planID: raw.PlanID}
		return nil
	default:
		return fmt.Errorf("unknown subscription kind %q", raw.Kind)
	}
}

// IsMembership reports whether the kind references a membership plan.
func (k SubscriptionKind) IsMembership() bool { return k.kind == KindMembership }

// PlanID returns the referenced plan id.
func (k SubscriptionKind) PlanID() uuid.UUID { return k.planID }

// String returns the persisted kind label (MEMBERSHIP or ADDON).
func (k SubscriptionKind) String() string { return k.kind }

// Subscription is a recurring charge agreement for one profile on an account.
// It is created active, mutated only by cancellation, and never deleted.
type Subscription struct {
	ID                 uuid.UUID          `json:"subscription_id"`
	AccountID          uuid.UUID          `json:"account_id"`
	ProfileID          uuid.UUID          `json:"profile_id"`
	Kind               SubscriptionKind   `json:"kind"`
	Status             SubscriptionStatus `json:"status"`
	CurrentPeriodStart time.Time          `json:"current_period_start"`
	CurrentPeriodEnd   time.Time          `json:"current_period_end"`
	CancelAtPeriodEnd  bool               `json:"cancel_at_period_end"`
	CanceledAt         *time.Time         `json:"canceled_at"`
	// InvoiceID is the invoice the initial charge was billed to: whichever
	// invoice was open at creation time. It is never re-pointed.
	InvoiceID uuid.UUID `json:"invoice_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubscriptionSummary is a subscription with its plan attached for display.
type SubscriptionSummary struct {
	Subscription
	PlanName  string          `json:"plan_name"`
	PlanPrice decimal.Decimal `json:"plan_price"`
	Currency  string          `json:"currency"`
}

// CreateSubscriptionParams contains parameters for creating a subscription.
type CreateSubscriptionParams struct {
	AccountID uuid.UUID
	ProfileID uuid.UUID
	Kind      SubscriptionKind
}

// SubscriptionWithInvoice is the result of creating a subscription: the new
// subscription and the open invoice the charge landed on.
type SubscriptionWithInvoice struct {
	Subscription *Subscription `json:"subscription"`
	Invoice      *Invoice      `json:"invoice"`
}

// SubscriptionManager creates and cancels subscriptions and computes billing
// periods from the plan catalog's interval rules.
type SubscriptionManager interface {
	// CreateSubscription resolves the plan, computes the billing period with
	// calendar-aware interval addition, charges the account's open invoice,
	// and inserts the subscription with status=active.
	CreateSubscription(ctx context.Context, params CreateSubscriptionParams) (*SubscriptionWithInvoice, error)

	// CreateMembershipSubscription is a convenience wrapper for membership plans.
	CreateMembershipSubscription(ctx context.Context, accountID, profileID, membershipPlanID uuid.UUID) (*SubscriptionWithInvoice, error)

	// CancelSubscription cancels immediately (status=canceled, canceled_at set)
	// or flags cancel_at_period_end and leaves the status unchanged. Completing
	// a deferred cancellation is the external scheduler's job.
	CancelSubscription(ctx context.Context, subscriptionID uuid.UUID, immediately bool) (*Subscription, error)

	// GetSubscription returns a subscription by id.
	GetSubscription(ctx context.Context, subscriptionID uuid.UUID) (*Subscription, error)

	// ListSubscriptionsForAccount returns the account's subscriptions with
	// their plan name and price attached.
	ListSubscriptionsForAccount(ctx context.Context, accountID uuid.UUID) ([]SubscriptionSummary, error)
}
