package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// -------------------------------------------------
// GET /api/health
// -------------------------------------------------
func Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
