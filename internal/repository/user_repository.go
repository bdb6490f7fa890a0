package repository

import (
	"context"
	"telegram-signals/internal/model"
	"telegram-signals/pkg/utils"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByTelegramID(ctx context.Context, telegramID int64, opts ...utils.DBOption) (*model.User, error)
	Create(ctx context.Context, user *model.User, opts ...utils.DBOption) error
	ConsumeQuota(ctx context.Context, telegramID int64, opts ...utils.DBOption) (bool, error)
	UpdatePlan(ctx context.Context, telegramID int64, plan string, signalsLimit int, opts ...utils.DBOption) (int64, error)
	Count(ctx context.Context) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) GetByTelegramID(ctx context.Context, telegramID int64, opts ...utils.DBOption) (*model.User, error) {
	var user model.User
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Where("telegram_id = ?", telegramID).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(user).Error
}

// ConsumeQuota atomically increments signals_used and total_signals while the
// quota still has headroom. The guard and the increment are one statement, so
// two concurrent requests cannot both pass the check and overshoot the limit.
// Returns false when the quota is already exhausted (or the user is unknown).
func (r *userRepository) ConsumeQuota(ctx context.Context, telegramID int64, opts ...utils.DBOption) (bool, error) {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Model(&model.User{}).
		Where("telegram_id = ? AND signals_used < signals_limit", telegramID).
		Updates(map[string]interface{}{
			"signals_used":  gorm.Expr("signals_used + 1"),
			"total_signals": gorm.Expr("total_signals + 1"),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// UpdatePlan sets the plan and its fixed limit. signals_used is deliberately
// left untouched: quota is cumulative for the life of the account, so a
// downgrade below the consumed amount blocks further issuance.
func (r *userRepository) UpdatePlan(ctx context.Context, telegramID int64, plan string, signalsLimit int, opts ...utils.DBOption) (int64, error) {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Model(&model.User{}).
		Where("telegram_id = ?", telegramID).
		Updates(map[string]interface{}{
			"plan":          plan,
			"signals_limit": signalsLimit,
		})

	return result.RowsAffected, result.Error
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) ListRecent(ctx context.Context, limit int) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}
