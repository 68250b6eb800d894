package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fieldhouse/ledger/internal/domain"
	"github.com/fieldhouse/ledger/internal/repository"
)

func Test_Resolve_MembershipKindReadsMembershipPlans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	planID := uuid.New()
	mockRepo.EXPECT().
		GetMembershipPlan(gomock.Any(), repository.PgUUID(planID)).
		Return(monthlyMembershipPlanRow(repository.PgUUID(planID), "50.00"), nil)

	catalog := NewPlanCatalog(mockRepo, testLogger())

	plan, err := catalog.Resolve(context.Background(), domain.Membership(planID))
	require.NoError(t, err)
	assert.Equal(t, planID, plan.PlanID)
	assert.Equal(t, "Family Membership", plan.Name)
	assert.True(t, plan.Price.Equal(money("50.00")))
	assert.Equal(t, domain.IntervalMonth, plan.Type.IntervalUnit)
	assert.Equal(t, int32(1), plan.Type.IntervalCount)
}

func Test_Resolve_AddonKindReadsServicePlans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	planID := uuid.New()
	mockRepo.EXPECT().
		GetServicePlan(gomock.Any(), repository.PgUUID(planID)).
		Return(monthlyServicePlanRow(repository.PgUUID(planID), "20.00"), nil)

	catalog := NewPlanCatalog(mockRepo, testLogger())

	plan, err := catalog.Resolve(context.Background(), domain.Addon(planID))
	require.NoError(t, err)
	assert.Equal(t, planID, plan.PlanID)
	assert.Equal(t, "Swim Class", plan.Name)
	assert.True(t, plan.Price.Equal(money("20.00")))
}

func Test_Resolve_UnknownPlanIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		kind domain.SubscriptionKind
	}{
		{name: "membership", kind: domain.Membership(uuid.New())},
		{name: "addon", kind: domain.Addon(uuid.New())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockQuerier(ctrl)

			if tt.kind.IsMembership() {
				mockRepo.EXPECT().
					GetMembershipPlan(gomock.Any(), gomock.Any()).
					Return(repository.GetMembershipPlanRow{}, pgx.ErrNoRows)
			} else {
				mockRepo.EXPECT().
					GetServicePlan(gomock.Any(), gomock.Any()).
					Return(repository.GetServicePlanRow{}, pgx.ErrNoRows)
			}

			catalog := NewPlanCatalog(mockRepo, testLogger())

			_, err := catalog.Resolve(context.Background(), tt.kind)
			require.Error(t, err)
			assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
		})
	}
}

func Test_Resolve_ZeroKindIsInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := NewPlanCatalog(repository.NewMockQuerier(ctrl), testLogger())

	_, err := catalog.Resolve(context.Background(), domain.SubscriptionKind{})
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}
