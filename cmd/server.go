package cmd

import (
	"context"
	"log"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"
	"telegram-signals/internal/delivery/http"
	"telegram-signals/internal/delivery/telegram"
	"telegram-signals/internal/repository"
	"telegram-signals/internal/service"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the signal backend",
	Run:   Start,
}

func Start(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	repo := repository.NewRepository(appDep.db.DB)
	services := service.NewService(appDep.log, repo)

	httpHandler := http.NewHttpAPIHandler(ctx, appDep.echo, appDep.validator, appDep.log, services)
	telegramHandler := telegram.NewTelegramBotHandler(ctx, appDep.cfg, appDep.log, appDep.telegramBot, services, appDep.cache)

	apiServer := NewHTTPServer(ctx, appDep, httpHandler)
	go func() {
		if err := apiServer.Start(); err != nil && err != httpNet.ErrServerClosed {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	go func() {
		telegramHandler.Start()
	}()

	<-ctx.Done()
	log.Println("Shutting down gracefully...")

	telegramHandler.Stop()

	if err := apiServer.Stop(); err != nil {
		log.Fatalf("Failed to stop HTTP server: %v", err)
	}

	if err := appDep.Close(); err != nil {
		log.Fatalf("Failed to close app dependency: %v", err)
	}
}
