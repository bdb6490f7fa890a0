package http

import (
	"errors"
	"net/http"
	"telegram-signals/internal/dto"
	"telegram-signals/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSignals(base *echo.Group) {
	base.POST("/signal", h.GenerateSignal)
	base.GET("/history/:telegramId", h.History)
	base.GET("/stats/:telegramId", h.Stats)
}

// GenerateSignal issues one random signal against the user's quota. Unlike
// user lookup this path never auto-creates the user.
func (h *HttpAPIHandler) GenerateSignal(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.GenerateSignalRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	signal, err := h.service.SignalService.IssueSignal(ctx, req.TelegramID, req.Pair)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse("user not found"))
		case errors.Is(err, dto.ErrQuotaExceeded):
			return c.JSON(http.StatusForbidden, errorResponse("Limit reached"))
		default:
			h.log.ErrorContext(ctx, "Failed to issue signal", logger.ErrorField(err))
			return internalError(c)
		}
	}

	return c.JSON(http.StatusOK, signal)
}

func (h *HttpAPIHandler) History(c echo.Context) error {
	ctx := c.Request().Context()

	telegramID, err := telegramIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid telegram id"))
	}

	signals, err := h.service.SignalService.History(ctx, telegramID)
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to get history", logger.ErrorField(err))
		return internalError(c)
	}

	return c.JSON(http.StatusOK, signals)
}

func (h *HttpAPIHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	telegramID, err := telegramIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid telegram id"))
	}

	stats, err := h.service.SignalService.Stats(ctx, telegramID)
	if err != nil {
		if errors.Is(err, dto.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse("user not found"))
		}
		h.log.ErrorContext(ctx, "Failed to compute stats", logger.ErrorField(err))
		return internalError(c)
	}

	return c.JSON(http.StatusOK, stats)
}
