package dto

// GenerateSignalRequest is the body of POST /api/signal.
type GenerateSignalRequest struct {
	TelegramID int64  `json:"telegramId" validate:"required"`
	Pair       string `json:"pair"`
}

// UpgradeRequest is the body of POST /api/upgrade.
type UpgradeRequest struct {
	TelegramID int64  `json:"telegramId" validate:"required"`
	Plan       string `json:"plan" validate:"required"`
}

// SignalResponse carries the generated signal fields plus a cosmetic price.
// The price is display data only and is never persisted.
type SignalResponse struct {
	Pair       string  `json:"pair"`
	Direction  string  `json:"direction"`
	Accuracy   int     `json:"accuracy"`
	SignalType string  `json:"signalType"`
	Price      float64 `json:"price"`
}

// StatsByType breaks the user's full signal history down by label. Unlike
// the win/loss figures it is not filtered by result.
type StatsByType struct {
	Silver   int64 `json:"Silver"`
	Gold     int64 `json:"Gold"`
	Premium  int64 `json:"Premium"`
	Platinum int64 `json:"Platinum"`
}

// StatsResponse is the body of GET /api/stats/:telegramId.
type StatsResponse struct {
	TotalSignals int         `json:"totalSignals"`
	Wins         int64       `json:"wins"`
	Losses       int64       `json:"losses"`
	WinRate      int         `json:"winRate"`
	ByType       StatsByType `json:"byType"`
}

// AdminStatsResponse is the body of GET /api/admin/stats. Revenue is a
// hardcoded zero until billing exists.
type AdminStatsResponse struct {
	TotalUsers   int64   `json:"totalUsers"`
	TotalSignals int64   `json:"totalSignals"`
	TodaySignals int64   `json:"todaySignals"`
	Revenue      float64 `json:"revenue"`
}
