package service

import (
	"context"
	"telegram-signals/internal/dto"
	"telegram-signals/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetOrCreateUser(t *testing.T) {
	tests := []struct {
		name       string
		telegramID int64
		existing   *model.User
		wantName   string
		wantPlan   string
		wantLimit  int
	}{
		{
			name:       "creates unseen user with free defaults",
			telegramID: 123456789,
			wantName:   "Trader 6789",
			wantPlan:   "free",
			wantLimit:  3,
		},
		{
			name:       "short id keeps all digits",
			telegramID: 42,
			wantName:   "Trader 42",
			wantPlan:   "free",
			wantLimit:  3,
		},
		{
			name:       "returns existing user untouched",
			telegramID: 1001,
			existing:   &model.User{TelegramID: 1001, Name: "Trader 1001", Plan: "basic", SignalsUsed: 5, SignalsLimit: 10},
			wantName:   "Trader 1001",
			wantPlan:   "basic",
			wantLimit:  10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			if tt.existing != nil {
				repo.users[tt.existing.TelegramID] = tt.existing
			}
			svc := NewUserService(testLogger(t), repo)

			user, err := svc.GetOrCreateUser(context.Background(), tt.telegramID)
			require.NoError(t, err)
			require.NotNil(t, user)

			assert.Equal(t, tt.telegramID, user.TelegramID)
			assert.Equal(t, tt.wantName, user.Name)
			assert.Equal(t, tt.wantPlan, user.Plan)
			assert.Equal(t, tt.wantLimit, user.SignalsLimit)
			if tt.existing == nil {
				assert.Equal(t, 0, user.SignalsUsed)
				assert.Equal(t, 0, user.TotalSignals)
			}
		})
	}
}

func TestUserService_GetOrCreateUser_Idempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(testLogger(t), repo)

	first, err := svc.GetOrCreateUser(context.Background(), 555001)
	require.NoError(t, err)
	second, err := svc.GetOrCreateUser(context.Background(), 555001)
	require.NoError(t, err)

	assert.Equal(t, first.TelegramID, second.TelegramID)
	assert.Len(t, repo.users, 1)
}

func TestUserService_ChangePlan(t *testing.T) {
	tests := []struct {
		name      string
		plan      dto.Plan
		wantLimit int
	}{
		{name: "basic", plan: dto.PlanBasic, wantLimit: 10},
		{name: "premium", plan: dto.PlanPremium, wantLimit: dto.UnlimitedSignals},
		{name: "platinum", plan: dto.PlanPlatinum, wantLimit: dto.UnlimitedSignals},
		{name: "back to free", plan: dto.PlanFree, wantLimit: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &model.User{TelegramID: 1001, Plan: "free", SignalsUsed: 2, SignalsLimit: 3}
			repo := newFakeUserRepo(user)
			svc := NewUserService(testLogger(t), repo)

			err := svc.ChangePlan(context.Background(), 1001, tt.plan)
			require.NoError(t, err)

			assert.Equal(t, string(tt.plan), user.Plan)
			assert.Equal(t, tt.wantLimit, user.SignalsLimit)
			// plan change never resets consumed quota
			assert.Equal(t, 2, user.SignalsUsed)
		})
	}
}

func TestUserService_ChangePlan_UnknownUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(testLogger(t), repo)

	// the original treated this as a silent no-op
	err := svc.ChangePlan(context.Background(), 999, dto.PlanBasic)
	assert.NoError(t, err)
}
