package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"telegram-signals/internal/dto"
	"telegram-signals/pkg/logger"

	"gopkg.in/telebot.v3"
)

const historyMessageLimit = 10

func (t *TelegramBotHandler) RegisterHandlers() {
	t.bot.Handle("/start", t.WithContext(t.handleStart))
	t.bot.Handle("/signal", t.WithContext(t.handleStartSignal))
	t.bot.Handle("/history", t.WithContext(t.handleHistory))
	t.bot.Handle("/stats", t.WithContext(t.handleStats))
	t.bot.Handle("/plans", t.WithContext(t.handlePlans))
	t.bot.Handle("/cancel", t.WithContext(t.handleCancel))
	t.bot.Handle(telebot.OnText, t.WithContext(t.handleConversation))
}

func (t *TelegramBotHandler) handleStart(ctx context.Context, c telebot.Context) error {
	user, err := t.service.UserService.GetOrCreateUser(ctx, c.Sender().ID)
	if err != nil {
		t.log.ErrorContext(ctx, "Failed to get or create user", logger.ErrorField(err))
		return c.Send("❌ Something went wrong, please try again later.")
	}

	message := fmt.Sprintf(`👋 *Welcome, %s!*

You are on the *%s* plan (%s of %s signals used).

📈 /signal - Request a trading signal
📋 /history - Your recent signals
📊 /stats - Your win/loss statistics
💳 /plans - Available plans
❌ /cancel - Cancel the current command`,
		user.Name,
		user.Plan,
		formatCount(user.SignalsUsed),
		formatLimit(user.SignalsLimit),
	)
	return c.Send(message, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (t *TelegramBotHandler) handleStartSignal(ctx context.Context, c telebot.Context) error {
	t.SetUserState(c.Sender().ID, StateWaitingSignalPair)
	return c.Send("Send me the currency pair you want a signal for (e.g. EUR/USD).")
}

func (t *TelegramBotHandler) handleConversation(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	switch t.GetUserState(userID) {
	case StateWaitingSignalPair:
		defer t.ResetUserState(userID)
		return t.sendSignal(ctx, c, strings.TrimSpace(c.Text()))
	default:
		return c.Send("I did not understand that. Use /signal to request a signal or /start for the command list.")
	}
}

func (t *TelegramBotHandler) sendSignal(ctx context.Context, c telebot.Context, pair string) error {
	signal, err := t.service.SignalService.IssueSignal(ctx, c.Sender().ID, pair)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrUserNotFound):
			return c.Send("Please run /start first.")
		case errors.Is(err, dto.ErrQuotaExceeded):
			return c.Send("🚫 You have used up your signal quota. See /plans to upgrade.")
		default:
			t.log.ErrorContext(ctx, "Failed to issue signal", logger.ErrorField(err))
			return c.Send("❌ Failed to generate a signal, please try again later.")
		}
	}

	message := fmt.Sprintf(`📡 *%s Signal*

Pair: %s
Direction: *%s*
Accuracy: %d%%
Price: %.2f`,
		signal.SignalType, signal.Pair, signal.Direction, signal.Accuracy, signal.Price)
	return c.Send(message, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (t *TelegramBotHandler) handleHistory(ctx context.Context, c telebot.Context) error {
	signals, err := t.service.SignalService.History(ctx, c.Sender().ID)
	if err != nil {
		t.log.ErrorContext(ctx, "Failed to get history", logger.ErrorField(err))
		return c.Send("❌ Failed to load your history, please try again later.")
	}

	if len(signals) == 0 {
		return c.Send("You have no signals yet. Use /signal to request one.")
	}

	if len(signals) > historyMessageLimit {
		signals = signals[:historyMessageLimit]
	}

	var b strings.Builder
	b.WriteString("🕘 *Your recent signals:*\n")
	for _, s := range signals {
		fmt.Fprintf(&b, "\n%s  %s %s (%d%%) — %s", s.CreatedAt.Format("02 Jan 15:04"), s.Pair, s.Direction, s.Accuracy, s.Result)
	}
	return c.Send(b.String(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (t *TelegramBotHandler) handleStats(ctx context.Context, c telebot.Context) error {
	stats, err := t.service.SignalService.Stats(ctx, c.Sender().ID)
	if err != nil {
		if errors.Is(err, dto.ErrUserNotFound) {
			return c.Send("Please run /start first.")
		}
		t.log.ErrorContext(ctx, "Failed to compute stats", logger.ErrorField(err))
		return c.Send("❌ Failed to load your stats, please try again later.")
	}

	message := fmt.Sprintf(`📊 *Your statistics*

Total signals: %d
Wins: %d
Losses: %d
Win rate: %d%%

By type:
🥈 Silver: %d
🥇 Gold: %d
💎 Premium: %d
👑 Platinum: %d`,
		stats.TotalSignals, stats.Wins, stats.Losses, stats.WinRate,
		stats.ByType.Silver, stats.ByType.Gold, stats.ByType.Premium, stats.ByType.Platinum)
	return c.Send(message, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (t *TelegramBotHandler) handlePlans(ctx context.Context, c telebot.Context) error {
	var b strings.Builder
	b.WriteString("💳 *Available plans:*\n")
	for _, plan := range dto.Plans() {
		fmt.Fprintf(&b, "\n• %s — %s signals", plan, formatLimit(plan.SignalsLimit()))
	}
	return c.Send(b.String(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (t *TelegramBotHandler) handleCancel(ctx context.Context, c telebot.Context) error {
	t.ResetUserState(c.Sender().ID)
	return c.Send("Cancelled.")
}

func formatCount(n int) string {
	return fmt.Sprintf("%d", n)
}

func formatLimit(limit int) string {
	if limit >= dto.UnlimitedSignals {
		return "unlimited"
	}
	return fmt.Sprintf("%d", limit)
}
