package repository

import (
	"gorm.io/gorm"
)

type Repository struct {
	UserRepo   UserRepository
	SignalRepo SignalRepository
	UnitOfWork UnitOfWork
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		UserRepo:   NewUserRepository(db),
		SignalRepo: NewSignalRepository(db),
		UnitOfWork: NewUnitOfWork(db),
	}
}
