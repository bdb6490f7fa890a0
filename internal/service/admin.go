package service

import (
	"context"
	"fmt"
	"telegram-signals/internal/dto"
	"telegram-signals/internal/model"
	"telegram-signals/internal/repository"
	"telegram-signals/pkg/logger"
	"time"

	"golang.org/x/sync/errgroup"
)

// AdminUsersLimit caps the admin user listing.
const AdminUsersLimit = 100

// todayWindow is the trailing window counted as "today", wall-clock relative
// to the request.
const todayWindow = 24 * time.Hour

type AdminService interface {
	Stats(ctx context.Context) (*dto.AdminStatsResponse, error)
	RecentUsers(ctx context.Context) ([]model.User, error)
}

type adminService struct {
	log        *logger.Logger
	userRepo   repository.UserRepository
	signalRepo repository.SignalRepository
}

func NewAdminService(log *logger.Logger, userRepo repository.UserRepository, signalRepo repository.SignalRepository) AdminService {
	return &adminService{
		log:        log,
		userRepo:   userRepo,
		signalRepo: signalRepo,
	}
}

// Stats returns the global counters. Revenue stays zero until billing exists.
func (s *adminService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	var stats dto.AdminStatsResponse

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.userRepo.Count(gctx)
		stats.TotalUsers = count
		return err
	})
	g.Go(func() error {
		count, err := s.signalRepo.Count(gctx)
		stats.TotalSignals = count
		return err
	})
	g.Go(func() error {
		count, err := s.signalRepo.CountSince(gctx, time.Now().Add(-todayWindow))
		stats.TodaySignals = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute admin stats: %w", err)
	}

	return &stats, nil
}

func (s *adminService) RecentUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListRecent(ctx, AdminUsersLimit)
}
