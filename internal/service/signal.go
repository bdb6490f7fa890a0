package service

import (
	"context"
	"fmt"
	"math"
	"telegram-signals/internal/dto"
	"telegram-signals/internal/model"
	"telegram-signals/internal/repository"
	"telegram-signals/pkg/logger"
	"telegram-signals/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// HistoryLimit caps the number of signals returned per history request.
const HistoryLimit = 50

type SignalService interface {
	IssueSignal(ctx context.Context, telegramID int64, pair string) (*dto.SignalResponse, error)
	History(ctx context.Context, telegramID int64) ([]model.Signal, error)
	Stats(ctx context.Context, telegramID int64) (*dto.StatsResponse, error)
}

type signalService struct {
	log        *logger.Logger
	userRepo   repository.UserRepository
	signalRepo repository.SignalRepository
	uow        repository.UnitOfWork
	generator  SignalGenerator
}

func NewSignalService(
	log *logger.Logger,
	userRepo repository.UserRepository,
	signalRepo repository.SignalRepository,
	uow repository.UnitOfWork,
	generator SignalGenerator,
) SignalService {
	return &signalService{
		log:        log,
		userRepo:   userRepo,
		signalRepo: signalRepo,
		uow:        uow,
		generator:  generator,
	}
}

// IssueSignal draws a random signal for the user and charges one unit of
// quota. The quota increment and the signal insert run in one transaction;
// the increment itself is a conditional update, so concurrent requests for
// the same user cannot push signalsUsed past signalsLimit.
func (s *signalService) IssueSignal(ctx context.Context, telegramID int64, pair string) (*dto.SignalResponse, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, dto.ErrUserNotFound
	}
	if user.SignalsUsed >= user.SignalsLimit {
		return nil, dto.ErrQuotaExceeded
	}

	generated := s.generator.Generate()
	signal := model.Signal{
		UserID:     telegramID,
		Pair:       pair,
		Direction:  generated.Direction,
		Accuracy:   generated.Accuracy,
		SignalType: dto.SignalLabel(user.Plan),
		Result:     dto.ResultPending,
	}

	err = s.uow.Run(func(opts ...utils.DBOption) error {
		consumed, err := s.userRepo.ConsumeQuota(ctx, telegramID, opts...)
		if err != nil {
			return err
		}
		if !consumed {
			return dto.ErrQuotaExceeded
		}

		return s.signalRepo.Create(ctx, &signal, opts...)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Issued signal",
		logger.Int64Field("telegram_id", telegramID),
		logger.StringField("pair", pair),
		logger.StringField("direction", signal.Direction),
		logger.StringField("signal_type", signal.SignalType),
	)

	return &dto.SignalResponse{
		Pair:       pair,
		Direction:  signal.Direction,
		Accuracy:   signal.Accuracy,
		SignalType: signal.SignalType,
		Price:      generated.Price,
	}, nil
}

func (s *signalService) History(ctx context.Context, telegramID int64) ([]model.Signal, error) {
	return s.signalRepo.ListByUser(ctx, telegramID, HistoryLimit)
}

// Stats computes win/loss figures over resolved signals and a by-type
// breakdown over the entire history. The count queries fan out concurrently.
func (s *signalService) Stats(ctx context.Context, telegramID int64) (*dto.StatsResponse, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, dto.ErrUserNotFound
	}

	var stats dto.StatsResponse

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		w, l, err := s.signalRepo.ResultCounts(gctx, telegramID)
		if err != nil {
			return err
		}
		stats.Wins = w
		stats.Losses = l
		return nil
	})
	g.Go(func() error {
		count, err := s.signalRepo.CountByType(gctx, telegramID, dto.SignalTypeSilver)
		stats.ByType.Silver = count
		return err
	})
	g.Go(func() error {
		count, err := s.signalRepo.CountByType(gctx, telegramID, dto.SignalTypeGold)
		stats.ByType.Gold = count
		return err
	})
	g.Go(func() error {
		count, err := s.signalRepo.CountByType(gctx, telegramID, dto.SignalTypePremium)
		stats.ByType.Premium = count
		return err
	})
	g.Go(func() error {
		count, err := s.signalRepo.CountByType(gctx, telegramID, dto.SignalTypePlatinum)
		stats.ByType.Platinum = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	stats.TotalSignals = user.TotalSignals
	stats.WinRate = winRate(stats.Wins, stats.Losses)

	return &stats, nil
}

// winRate is the rounded integer percentage of wins over resolved signals,
// 0 when nothing has been resolved.
func winRate(wins, losses int64) int {
	resolved := wins + losses
	if resolved == 0 {
		return 0
	}
	return int(math.Round(float64(wins) / float64(resolved) * 100))
}
