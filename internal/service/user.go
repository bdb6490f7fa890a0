package service

import (
	"context"
	"fmt"
	"strconv"
	"telegram-signals/internal/dto"
	"telegram-signals/internal/model"
	"telegram-signals/internal/repository"
	"telegram-signals/pkg/logger"
)

type UserService interface {
	GetOrCreateUser(ctx context.Context, telegramID int64) (*model.User, error)
	ChangePlan(ctx context.Context, telegramID int64, plan dto.Plan) error
}

type userService struct {
	log      *logger.Logger
	userRepo repository.UserRepository
}

func NewUserService(log *logger.Logger, userRepo repository.UserRepository) UserService {
	return &userService{
		log:      log,
		userRepo: userRepo,
	}
}

// GetOrCreateUser registers the telegram ID lazily on first lookup. New users
// start on the free plan with the default quota and zero counters.
func (s *userService) GetOrCreateUser(ctx context.Context, telegramID int64) (*model.User, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user = &model.User{
		TelegramID:   telegramID,
		Name:         defaultUserName(telegramID),
		Plan:         string(dto.PlanFree),
		SignalsLimit: dto.DefaultSignalsLimit,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.InfoContext(ctx, "Registered new user",
		logger.Int64Field("telegram_id", telegramID),
		logger.StringField("name", user.Name),
	)

	return user, nil
}

// ChangePlan sets the plan and its fixed limit. signalsUsed is not reset, so
// quota already consumed counts against the new limit.
func (s *userService) ChangePlan(ctx context.Context, telegramID int64, plan dto.Plan) error {
	rows, err := s.userRepo.UpdatePlan(ctx, telegramID, string(plan), plan.SignalsLimit())
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	if rows == 0 {
		s.log.WarnContext(ctx, "Plan change for unknown user",
			logger.Int64Field("telegram_id", telegramID),
			logger.StringField("plan", string(plan)),
		)
	}

	return nil
}

// defaultUserName derives a display name from the last 4 digits of the ID.
func defaultUserName(telegramID int64) string {
	id := strconv.FormatInt(telegramID, 10)
	if len(id) > 4 {
		id = id[len(id)-4:]
	}
	return "Trader " + id
}
