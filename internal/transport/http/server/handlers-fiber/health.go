package handlers_fiber

import (
	"net/http"

	"user-management/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetHealthz reports 200 while the user store answers pings.
func (h *Handler) GetHealthz(c *fiber.Ctx) error {
	if err := h.uc.Health(c.UserContext()); err != nil {
		h.log.Warnw("health check failed", "error", err.Error())
		return c.Status(http.StatusServiceUnavailable).JSON(errorResponse(dto.UNAVAILABLE, "store unavailable"))
	}
	return c.SendStatus(http.StatusOK)
}
