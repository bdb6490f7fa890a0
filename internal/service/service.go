package service

import (
	"telegram-signals/internal/repository"
	"telegram-signals/pkg/logger"
)

type Service struct {
	UserService   UserService
	SignalService SignalService
	AdminService  AdminService
}

func NewService(log *logger.Logger, repo *repository.Repository) *Service {
	generator := NewSignalGenerator()

	return &Service{
		UserService:   NewUserService(log, repo.UserRepo),
		SignalService: NewSignalService(log, repo.UserRepo, repo.SignalRepo, repo.UnitOfWork, generator),
		AdminService:  NewAdminService(log, repo.UserRepo, repo.SignalRepo),
	}
}
