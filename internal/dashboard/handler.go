package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// -------------------------------------------------
// GET /api/dashboard/stats
// -------------------------------------------------
func StatsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := Compute(db, time.Now().UTC())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not compute dashboard stats")
		}
		return c.JSON(stats)
	}
}
