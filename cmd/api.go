package cmd

import (
	"context"
	"fmt"
	"telegram-signals/internal/delivery/http"
	"time"

	"go.uber.org/zap"
)

type HTTPServer struct {
	ctx     context.Context
	appDep  *AppDependency
	handler *http.HttpAPIHandler
}

func NewHTTPServer(ctx context.Context, appDep *AppDependency, handler *http.HttpAPIHandler) *HTTPServer {
	return &HTTPServer{
		ctx:     ctx,
		appDep:  appDep,
		handler: handler,
	}
}

func (s *HTTPServer) Start() error {
	s.appDep.log.Info("Starting HTTP server", zap.Int("port", s.appDep.cfg.API.Port))
	address := fmt.Sprintf(":%d", s.appDep.cfg.API.Port)

	s.handler.SetupRoutes()

	return s.appDep.echo.Start(address)
}

func (s *HTTPServer) Stop() error {
	s.appDep.log.Info("Shutting down HTTP server")

	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Second)
	defer cancel()

	stopDone := make(chan error, 1)
	go func() {
		if err := s.appDep.echo.Shutdown(ctx); err != nil {
			s.appDep.log.Error("Error when stopping HTTP server", zap.Error(err))
		}
		stopDone <- nil
	}()

	select {
	case <-stopDone:
		s.appDep.log.Info("HTTP server stopped successfully")
	case <-ctx.Done():
		s.appDep.log.Warn("Timeout while stopping HTTP server, forcing shutdown")
	}
	return nil
}
