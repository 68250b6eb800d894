package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fieldhouse/ledger/internal/domain"
	"github.com/fieldhouse/ledger/internal/events"
	"github.com/fieldhouse/ledger/internal/repository"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

func monthlyServicePlanRow(planID pgtype.UUID, price string) repository.GetServicePlanRow {
	return repository.GetServicePlanRow{
		ServicePlanID:        planID,
		SubscriptionTypeID:   newUUID(),
		PlanName:             "Swim Class",
		Price:                numeric(price),
		Currency:             "USD",
		IsActive:             true,
		TypeName:             "Monthly",
		BillingIntervalUnit:  "month",
		BillingIntervalCount: 1,
		AutoRenew:            true,
		AllowsCancel:         true,
		GeneratesInvoices:    true,
	}
}

func monthlyMembershipPlanRow(planID pgtype.UUID, price string) repository.GetMembershipPlanRow {
	return repository.GetMembershipPlanRow{
		MembershipPlanID:     planID,
		SubscriptionTypeID:   newUUID(),
		PlanName:             "Family Membership",
		Price:                numeric(price),
		Currency:             "USD",
		IsActive:             true,
		TypeName:             "Monthly",
		BillingIntervalUnit:  "month",
		BillingIntervalCount: 1,
		AutoRenew:            true,
		AllowsCancel:         true,
		GeneratesInvoices:    true,
	}
}

func testSubscriptionRow(arg repository.CreateSubscriptionParams) repository.Subscription {
	now := time.Now().UTC()
	return repository.Subscription{
		SubscriptionID:     newUUID(),
		AccountID:          arg.AccountID,
		ProfileID:          arg.ProfileID,
		SubscriptionKind:   arg.SubscriptionKind,
		MembershipPlanID:   arg.MembershipPlanID,
		ServicePlanID:      arg.ServicePlanID,
		InvoiceID:          arg.InvoiceID,
		Status:             arg.Status,
		CurrentPeriodStart: arg.CurrentPeriodStart,
		CurrentPeriodEnd:   arg.CurrentPeriodEnd,
		CancelAtPeriodEnd:  false,
		CreatedAt:          pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func newManager(repo repository.Querier, ledger domain.InvoiceLedger) domain.SubscriptionManager {
	catalog := NewPlanCatalog(repo, testLogger())
	return NewSubscriptionManager(repo, catalog, ledger, events.NewNoopPublisher(), newTestMetrics(), testLogger())
}

// =============================================================================
// TEST: CreateSubscription
// =============================================================================

func Test_CreateSubscription_ValidatesParams(t *testing.T) {
	tests := []struct {
		name   string
		params domain.CreateSubscriptionParams
	}{
		{
			name: "missing account id",
			params: domain.CreateSubscriptionParams{
				ProfileID: uuid.New(),
				Kind:      domain.Addon(uuid.New()),
			},
		},
		{
			name: "missing profile id",
			params: domain.CreateSubscriptionParams{
				AccountID: uuid.New(),
				Kind:      domain.Addon(uuid.New()),
			},
		},
		{
			name: "missing kind",
			params: domain.CreateSubscriptionParams{
				AccountID: uuid.New(),
				ProfileID: uuid.New(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockQuerier(ctrl)

			manager := newManager(mockRepo, nil)

			_, err := manager.CreateSubscription(context.Background(), tt.params)
			require.Error(t, err)
			assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		})
	}
}

func Test_CreateSubscription_UnknownPlanIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	planID := uuid.New()
	mockRepo.EXPECT().
		GetServicePlan(gomock.Any(), repository.PgUUID(planID)).
		Return(repository.GetServicePlanRow{}, pgx.ErrNoRows)

	manager := newManager(mockRepo, nil)

	_, err := manager.CreateSubscription(context.Background(), domain.CreateSubscriptionParams{
		AccountID: uuid.New(),
		ProfileID: uuid.New(),
		Kind:      domain.Addon(planID),
	})
	require.Error(t, err)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func Test_CreateSubscription_ChargesInvoiceAndInsertsActiveSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	accountID := uuid.New()
	profileID := uuid.New()
	planID := uuid.New()
	pgAccountID := repository.PgUUID(accountID)

	mockRepo.EXPECT().
		GetServicePlan(gomock.Any(), repository.PgUUID(planID)).
		Return(monthlyServicePlanRow(repository.PgUUID(planID), "20.00"), nil)

	// The ledger charge lands on an open invoice via the atomic upsert.
	invoiceRow := testInvoiceRow(pgAccountID, "INV-TESTCHRG01", "20.00", "0", "open")
	mockRepo.EXPECT().
		UpsertOpenInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.UpsertOpenInvoiceParams) (repository.Invoice, error) {
			assert.Equal(t, pgAccountID, arg.AccountID)
			assert.True(t, repository.DecimalFromNumeric(arg.AmountDue).Equal(money("20.00")))
			return invoiceRow, nil
		})

	var captured repository.CreateSubscriptionParams
	mockRepo.EXPECT().
		CreateSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.CreateSubscriptionParams) (repository.Subscription, error) {
			captured = arg
			return testSubscriptionRow(arg), nil
		})

	ledger := NewInvoiceLedger(mockRepo, newTestMetrics(), testLogger())
	manager := newManager(mockRepo, ledger)

	result, err := manager.CreateSubscription(context.Background(), domain.CreateSubscriptionParams{
		AccountID: accountID,
		ProfileID: profileID,
		Kind:      domain.Addon(planID),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.SubscriptionActive), captured.Status)
	assert.Equal(t, domain.KindAddon, captured.SubscriptionKind)
	assert.True(t, captured.ServicePlanID.Valid, "addon subscriptions reference the service plan")
	assert.False(t, captured.MembershipPlanID.Valid, "addon subscriptions must not set a membership plan")
	assert.Equal(t, invoiceRow.InvoiceID, captured.InvoiceID)

	// Monthly plan: the period ends one calendar month after it starts.
	wantEnd, err := AddInterval(captured.CurrentPeriodStart.Time, domain.IntervalMonth, 1)
	require.NoError(t, err)
	assert.Equal(t, wantEnd, captured.CurrentPeriodEnd.Time)

	assert.Equal(t, domain.SubscriptionActive, result.Subscription.Status)
	assert.Equal(t, result.Invoice.ID, result.Subscription.InvoiceID)
	assert.True(t, result.Invoice.AmountDue.Equal(money("20.00")))
}

func Test_CreateSubscription_ZeroPricePlanSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	accountID := uuid.New()
	planID := uuid.New()
	pgAccountID := repository.PgUUID(accountID)

	row := monthlyServicePlanRow(repository.PgUUID(planID), "0")
	row.PlanName = "Trial Class"
	mockRepo.EXPECT().
		GetServicePlan(gomock.Any(), repository.PgUUID(planID)).
		Return(row, nil)
	mockRepo.EXPECT().
		UpsertOpenInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.UpsertOpenInvoiceParams) (repository.Invoice, error) {
			assert.True(t, repository.DecimalFromNumeric(arg.AmountDue).IsZero())
			return testInvoiceRow(pgAccountID, arg.InvoiceNumber, "0", "0", "open"), nil
		})
	mockRepo.EXPECT().
		CreateSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.CreateSubscriptionParams) (repository.Subscription, error) {
			return testSubscriptionRow(arg), nil
		})

	ledger := NewInvoiceLedger(mockRepo, newTestMetrics(), testLogger())
	manager := newManager(mockRepo, ledger)

	result, err := manager.CreateSubscription(context.Background(), domain.CreateSubscriptionParams{
		AccountID: accountID,
		ProfileID: uuid.New(),
		Kind:      domain.Addon(planID),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionActive, result.Subscription.Status)
	assert.True(t, result.Invoice.AmountDue.IsZero())
}

func Test_CreateMembershipSubscription_UsesMembershipPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	accountID := uuid.New()
	planID := uuid.New()
	pgAccountID := repository.PgUUID(accountID)

	mockRepo.EXPECT().
		GetMembershipPlan(gomock.Any(), repository.PgUUID(planID)).
		Return(monthlyMembershipPlanRow(repository.PgUUID(planID), "50.00"), nil)
	mockRepo.EXPECT().
		UpsertOpenInvoice(gomock.Any(), gomock.Any()).
		Return(testInvoiceRow(pgAccountID, "INV-TESTMEMB01", "50.00", "0", "open"), nil)
	mockRepo.EXPECT().
		CreateSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.CreateSubscriptionParams) (repository.Subscription, error) {
			assert.Equal(t, domain.KindMembership, arg.SubscriptionKind)
			assert.True(t, arg.MembershipPlanID.Valid)
			assert.False(t, arg.ServicePlanID.Valid)
			return testSubscriptionRow(arg), nil
		})

	ledger := NewInvoiceLedger(mockRepo, newTestMetrics(), testLogger())
	manager := newManager(mockRepo, ledger)

	result, err := manager.CreateMembershipSubscription(context.Background(), accountID, uuid.New(), planID)
	require.NoError(t, err)
	assert.True(t, result.Subscription.Kind.IsMembership())
	assert.Equal(t, planID, result.Subscription.Kind.PlanID())
}

func Test_CreateSubscription_InsertFailureAfterChargeIsConsistencyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	accountID := uuid.New()
	planID := uuid.New()

	mockRepo.EXPECT().
		GetServicePlan(gomock.Any(), gomock.Any()).
		Return(monthlyServicePlanRow(repository.PgUUID(planID), "20.00"), nil)
	mockRepo.EXPECT().
		UpsertOpenInvoice(gomock.Any(), gomock.Any()).
		Return(testInvoiceRow(repository.PgUUID(accountID), "INV-TESTCONS01", "20.00", "0", "open"), nil)
	mockRepo.EXPECT().
		CreateSubscription(gomock.Any(), gomock.Any()).
		Return(repository.Subscription{}, errors.New("connection reset"))

	ledger := NewInvoiceLedger(mockRepo, newTestMetrics(), testLogger())
	manager := newManager(mockRepo, ledger)

	_, err := manager.CreateSubscription(context.Background(), domain.CreateSubscriptionParams{
		AccountID: accountID,
		ProfileID: uuid.New(),
		Kind:      domain.Addon(planID),
	})
	require.Error(t, err)
	assert.Equal(t, domain.ECONSISTENCY, domain.ErrorCode(err))
}

// =============================================================================
// TEST: CancelSubscription
// =============================================================================

func Test_CancelSubscription_Immediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	subID := uuid.New()
	existing := testSubscriptionRow(repository.CreateSubscriptionParams{
		AccountID:        newUUID(),
		ProfileID:        newUUID(),
		SubscriptionKind: domain.KindAddon,
		ServicePlanID:    newUUID(),
		InvoiceID:        newUUID(),
		Status:           string(domain.SubscriptionActive),
	})
	existing.SubscriptionID = repository.PgUUID(subID)

	mockRepo.EXPECT().
		GetSubscriptionByID(gomock.Any(), repository.PgUUID(subID)).
		Return(existing, nil)
	mockRepo.EXPECT().
		UpdateSubscriptionCancellation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.UpdateSubscriptionCancellationParams) (repository.Subscription, error) {
			assert.Equal(t, string(domain.SubscriptionCanceled), arg.Status)
			assert.False(t, arg.CancelAtPeriodEnd)
			assert.True(t, arg.CanceledAt.Valid, "immediate cancellation must set canceled_at")

			updated := existing
			updated.Status = arg.Status
			updated.CancelAtPeriodEnd = arg.CancelAtPeriodEnd
			updated.CanceledAt = arg.CanceledAt
			return updated, nil
		})

	manager := newManager(mockRepo, nil)

	sub, err := manager.CancelSubscription(context.Background(), subID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionCanceled, sub.Status)
	require.NotNil(t, sub.CanceledAt)
	assert.False(t, sub.CancelAtPeriodEnd)
}

func Test_CancelSubscription_AtPeriodEnd_LeavesStatusUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	subID := uuid.New()
	existing := testSubscriptionRow(repository.CreateSubscriptionParams{
		AccountID:        newUUID(),
		ProfileID:        newUUID(),
		SubscriptionKind: domain.KindAddon,
		ServicePlanID:    newUUID(),
		InvoiceID:        newUUID(),
		Status:           string(domain.SubscriptionActive),
	})
	existing.SubscriptionID = repository.PgUUID(subID)

	mockRepo.EXPECT().
		GetSubscriptionByID(gomock.Any(), repository.PgUUID(subID)).
		Return(existing, nil)
	mockRepo.EXPECT().
		UpdateSubscriptionCancellation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.UpdateSubscriptionCancellationParams) (repository.Subscription, error) {
			assert.Equal(t, string(domain.SubscriptionActive), arg.Status, "deferred cancellation keeps the current status")
			assert.True(t, arg.CancelAtPeriodEnd)
			assert.False(t, arg.CanceledAt.Valid)

			updated := existing
			updated.CancelAtPeriodEnd = true
			return updated, nil
		})

	manager := newManager(mockRepo, nil)

	sub, err := manager.CancelSubscription(context.Background(), subID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionActive, sub.Status)
	assert.True(t, sub.CancelAtPeriodEnd)
	assert.Nil(t, sub.CanceledAt)
}

func Test_CancelSubscription_UnknownIDIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	mockRepo.EXPECT().
		GetSubscriptionByID(gomock.Any(), gomock.Any()).
		Return(repository.Subscription{}, pgx.ErrNoRows)

	manager := newManager(mockRepo, nil)

	_, err := manager.CancelSubscription(context.Background(), uuid.New(), true)
	require.Error(t, err)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

// =============================================================================
// TEST: ListSubscriptionsForAccount
// =============================================================================

func Test_ListSubscriptionsForAccount_AttachesPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	accountID := uuid.New()
	now := time.Now().UTC()

	mockRepo.EXPECT().
		ListSubscriptionsForAccount(gomock.Any(), repository.PgUUID(accountID)).
		Return([]repository.ListSubscriptionsForAccountRow{
			{
				SubscriptionID:     newUUID(),
				AccountID:          repository.PgUUID(accountID),
				ProfileID:          newUUID(),
				SubscriptionKind:   domain.KindMembership,
				MembershipPlanID:   newUUID(),
				InvoiceID:          newUUID(),
				Status:             string(domain.SubscriptionActive),
				CurrentPeriodStart: pgtype.Timestamptz{Time: now, Valid: true},
				CurrentPeriodEnd:   pgtype.Timestamptz{Time: now.AddDate(0, 1, 0), Valid: true},
				PlanName:           "Family Membership",
				PlanPrice:          numeric("50.00"),
				Currency:           "USD",
			},
		}, nil)

	manager := newManager(mockRepo, nil)

	subs, err := manager.ListSubscriptionsForAccount(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Family Membership", subs[0].PlanName)
	assert.True(t, subs[0].PlanPrice.Equal(money("50.00")))
	assert.True(t, subs[0].Kind.IsMembership())
}
