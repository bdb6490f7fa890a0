package http

import (
	"net/http"
	"telegram-signals/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Admin routes carry no authentication in this service; access control is
// expected from a gateway in front of it.
func (h *HttpAPIHandler) SetupAdmin(base *echo.Group) {
	admin := base.Group("/admin")
	{
		admin.GET("/stats", h.AdminStats)
		admin.GET("/users", h.AdminUsers)
	}
}

func (h *HttpAPIHandler) AdminStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.service.AdminService.Stats(ctx)
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to compute admin stats", logger.ErrorField(err))
		return internalError(c)
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *HttpAPIHandler) AdminUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.service.AdminService.RecentUsers(ctx)
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to list users", logger.ErrorField(err))
		return internalError(c)
	}

	return c.JSON(http.StatusOK, users)
}
