package model

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TelegramID   int64     `gorm:"not null;uniqueIndex" json:"telegramId"`
	Name         string    `gorm:"not null" json:"name"`
	Plan         string    `gorm:"not null;default:free" json:"plan"`
	SignalsUsed  int       `gorm:"not null;default:0" json:"signalsUsed"`
	SignalsLimit int       `gorm:"not null;default:3" json:"signalsLimit"`
	TotalSignals int       `gorm:"not null;default:0" json:"totalSignals"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
