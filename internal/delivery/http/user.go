package http

import (
	"net/http"
	"telegram-signals/internal/dto"
	"telegram-signals/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupUsers(base *echo.Group) {
	base.GET("/user/:telegramId", h.GetUser)
	base.POST("/upgrade", h.UpgradePlan)
}

// GetUser returns the user for the telegram ID, registering it on first
// sight.
func (h *HttpAPIHandler) GetUser(c echo.Context) error {
	ctx := c.Request().Context()

	telegramID, err := telegramIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid telegram id"))
	}

	user, err := h.service.UserService.GetOrCreateUser(ctx, telegramID)
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to get or create user", logger.ErrorField(err))
		return internalError(c)
	}

	return c.JSON(http.StatusOK, user)
}

// UpgradePlan switches the user to the requested plan. The plan name must be
// one of the recognized tiers; quota already consumed is not reset.
func (h *HttpAPIHandler) UpgradePlan(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.UpgradeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	plan, err := dto.ParsePlan(req.Plan)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	if err := h.service.UserService.ChangePlan(ctx, req.TelegramID, plan); err != nil {
		h.log.ErrorContext(ctx, "Failed to change plan", logger.ErrorField(err))
		return internalError(c)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
