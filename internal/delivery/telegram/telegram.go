package telegram

import (
	"context"
	"telegram-signals/config"
	"telegram-signals/internal/service"
	"telegram-signals/pkg/cache"
	"telegram-signals/pkg/logger"
	"time"

	"gopkg.in/telebot.v3"
)

type TelegramBotHandler struct {
	ctx           context.Context
	cfg           *config.Config
	log           *logger.Logger
	bot           *telebot.Bot
	service       *service.Service
	inmemoryCache cache.Cache
}

func NewTelegramBotHandler(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	bot *telebot.Bot,
	service *service.Service,
	inmemoryCache cache.Cache,
) *TelegramBotHandler {
	return &TelegramBotHandler{
		ctx:           ctx,
		cfg:           cfg,
		log:           log,
		bot:           bot,
		service:       service,
		inmemoryCache: inmemoryCache,
	}
}

func (t *TelegramBotHandler) Start() {
	if t.bot == nil {
		t.log.Info("Telegram bot is disabled")
		return
	}

	t.log.Info("Starting Telegram bot...")
	t.RegisterHandlers()
	t.bot.Start()
}

func (t *TelegramBotHandler) Stop() {
	if t.bot == nil {
		return
	}

	t.log.Info("Stopping Telegram bot...")

	ctx, cancel := context.WithTimeout(t.ctx, 10*time.Second)
	defer cancel()

	stopDone := make(chan struct{}, 1)
	go func() {
		t.bot.Stop()
		stopDone <- struct{}{}
	}()

	select {
	case <-stopDone:
		t.log.Info("Telegram bot stopped successfully")
	case <-ctx.Done():
		t.log.Warn("Timeout while stopping bot, forcing shutdown")
	}
}

// WithContext wraps a handler with a per-update timeout derived from the
// application context.
func (t *TelegramBotHandler) WithContext(handler func(ctx context.Context, c telebot.Context) error) func(c telebot.Context) error {
	return func(c telebot.Context) error {
		ctx, cancel := context.WithTimeout(t.ctx, t.cfg.Telegram.TimeoutDuration)
		defer cancel()

		return handler(ctx, c)
	}
}
