package model

import "time"

// Signal is a generated trade recommendation. UserID holds the owner's
// telegram ID, a back-reference without a foreign key, matching the
// informal correlation the rest of the system relies on.
type Signal struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"not null;index" json:"userId"`
	Pair       string    `gorm:"not null" json:"pair"`
	Direction  string    `gorm:"not null" json:"direction"`
	Accuracy   int       `gorm:"not null" json:"accuracy"`
	SignalType string    `gorm:"not null" json:"signalType"`
	Result     string    `gorm:"not null;default:PENDING" json:"result"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Signal) TableName() string {
	return "signals"
}
