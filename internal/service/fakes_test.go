package service

import (
	"context"
	"telegram-signals/internal/dto"
	"telegram-signals/internal/model"
	"telegram-signals/pkg/logger"
	"telegram-signals/pkg/utils"
	"testing"
	"time"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "json")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return log
}

type fakeUserRepo struct {
	users map[int64]*model.User
	err   error
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[int64]*model.User)}
	for _, u := range users {
		r.users[u.TelegramID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByTelegramID(ctx context.Context, telegramID int64, opts ...utils.DBOption) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[telegramID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User, opts ...utils.DBOption) error {
	if r.err != nil {
		return r.err
	}
	user.CreatedAt = time.Now()
	r.users[user.TelegramID] = user
	return nil
}

func (r *fakeUserRepo) ConsumeQuota(ctx context.Context, telegramID int64, opts ...utils.DBOption) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	user, ok := r.users[telegramID]
	if !ok || user.SignalsUsed >= user.SignalsLimit {
		return false, nil
	}
	user.SignalsUsed++
	user.TotalSignals++
	return true, nil
}

func (r *fakeUserRepo) UpdatePlan(ctx context.Context, telegramID int64, plan string, signalsLimit int, opts ...utils.DBOption) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	user, ok := r.users[telegramID]
	if !ok {
		return 0, nil
	}
	user.Plan = plan
	user.SignalsLimit = signalsLimit
	return 1, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) ListRecent(ctx context.Context, limit int) ([]model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type fakeSignalRepo struct {
	signals []model.Signal
	err     error
}

func (r *fakeSignalRepo) Create(ctx context.Context, signal *model.Signal, opts ...utils.DBOption) error {
	if r.err != nil {
		return r.err
	}
	signal.CreatedAt = time.Now()
	r.signals = append(r.signals, *signal)
	return nil
}

func (r *fakeSignalRepo) ListByUser(ctx context.Context, telegramID int64, limit int) ([]model.Signal, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []model.Signal
	for i := len(r.signals) - 1; i >= 0 && len(out) < limit; i-- {
		if r.signals[i].UserID == telegramID {
			out = append(out, r.signals[i])
		}
	}
	return out, nil
}

func (r *fakeSignalRepo) ResultCounts(ctx context.Context, telegramID int64) (int64, int64, error) {
	if r.err != nil {
		return 0, 0, r.err
	}
	var wins, losses int64
	for _, s := range r.signals {
		if s.UserID != telegramID || s.Result == dto.ResultPending {
			continue
		}
		if s.Result == "WIN" {
			wins++
		} else {
			losses++
		}
	}
	return wins, losses, nil
}

func (r *fakeSignalRepo) CountByType(ctx context.Context, telegramID int64, signalType string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var count int64
	for _, s := range r.signals {
		if s.UserID == telegramID && s.SignalType == signalType {
			count++
		}
	}
	return count, nil
}

func (r *fakeSignalRepo) Count(ctx context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.signals)), nil
}

func (r *fakeSignalRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var count int64
	for _, s := range r.signals {
		if !s.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

type fakeUnitOfWork struct{}

func (u *fakeUnitOfWork) Run(fn func(opts ...utils.DBOption) error) error {
	return fn()
}

type fixedGenerator struct {
	signal GeneratedSignal
}

func (g *fixedGenerator) Generate() GeneratedSignal {
	return g.signal
}
