package http

import (
	"context"
	"net/http"
	"strconv"
	"telegram-signals/internal/service"
	"telegram-signals/pkg/logger"
	"telegram-signals/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	log       *logger.Logger
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, log *logger.Logger, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		log:       log,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.Use(middleware.NewRateLimiterMiddleware())

	base := h.echo.Group("/api")
	h.SetupUsers(base)
	h.SetupSignals(base)
	h.SetupAdmin(base)
}

// telegramIDParam parses the :telegramId path segment. Identifiers are plain
// numbers on the wire.
func telegramIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("telegramId"), 10, 64)
}

func errorResponse(message string) map[string]string {
	return map[string]string{"error": message}
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, errorResponse("internal server error"))
}
