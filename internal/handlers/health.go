package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

// LivenessProbe reports that the process is up.
func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe reports the tolerance requests are evaluated with. The
// engine has no external dependencies to check.
func (h *WallHandler) ReadinessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ready",
		"epsilon": h.tol.Eps(),
	})
}

func StartupProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
	})
}
