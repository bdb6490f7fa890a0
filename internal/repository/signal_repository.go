package repository

import (
	"context"
	"telegram-signals/internal/dto"
	"telegram-signals/internal/model"
	"telegram-signals/pkg/utils"
	"time"

	"gorm.io/gorm"
)

type SignalRepository interface {
	Create(ctx context.Context, signal *model.Signal, opts ...utils.DBOption) error
	ListByUser(ctx context.Context, telegramID int64, limit int) ([]model.Signal, error)
	ResultCounts(ctx context.Context, telegramID int64) (wins int64, losses int64, err error)
	CountByType(ctx context.Context, telegramID int64, signalType string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type signalRepository struct {
	db *gorm.DB
}

func NewSignalRepository(db *gorm.DB) SignalRepository {
	return &signalRepository{
		db: db,
	}
}

func (r *signalRepository) Create(ctx context.Context, signal *model.Signal, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(signal).Error
}

func (r *signalRepository) ListByUser(ctx context.Context, telegramID int64, limit int) ([]model.Signal, error) {
	var signals []model.Signal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", telegramID).
		Order("created_at DESC").
		Limit(limit).
		Find(&signals).Error
	if err != nil {
		return nil, err
	}

	return signals, nil
}

// ResultCounts tallies resolved signals only. PENDING rows are excluded, so
// both counts stay at zero until something resolves signal outcomes.
func (r *signalRepository) ResultCounts(ctx context.Context, telegramID int64) (int64, int64, error) {
	var wins, resolved int64

	err := r.db.WithContext(ctx).Model(&model.Signal{}).
		Where("user_id = ? AND result != ?", telegramID, dto.ResultPending).
		Count(&resolved).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.WithContext(ctx).Model(&model.Signal{}).
		Where("user_id = ? AND result = ?", telegramID, "WIN").
		Count(&wins).Error
	if err != nil {
		return 0, 0, err
	}

	return wins, resolved - wins, nil
}

func (r *signalRepository) CountByType(ctx context.Context, telegramID int64, signalType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Signal{}).
		Where("user_id = ? AND signal_type = ?", telegramID, signalType).
		Count(&count).Error
	return count, err
}

func (r *signalRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Signal{}).Count(&count).Error
	return count, err
}

func (r *signalRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Signal{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
