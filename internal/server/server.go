package server

import (
	"errors"
	"log"
	"strings"

	"estate-backend/internal/auth"
	"estate-backend/internal/config"
	"estate-backend/internal/customer"
	"estate-backend/internal/dashboard"
	"estate-backend/internal/finance"
	"estate-backend/internal/health"
	"estate-backend/internal/lease"
	"estate-backend/internal/property"
	"estate-backend/internal/sale"
	"estate-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

// New builds the fiber application with every route mounted. The store
// handle is injected here and threaded into each handler constructor.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(corsOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
	}))

	api := app.Group("/api")

	// Public
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Post("/auth/logout", auth.LogoutHandler())
	api.Get("/health", health.Handler())
	api.Get("/dashboard/stats", dashboard.StatsHandler(db))

	// Write endpoints require a bearer credential. The stub accepts any
	// token; swap in auth.TokenVerifier{Secret: cfg.JWTSecret} to enforce
	// real verification without touching handlers.
	protect := auth.Protect(auth.StubVerifier{})

	// Properties
	api.Get("/properties", property.ListPropertiesHandler(db))
	api.Post("/properties", protect, property.CreatePropertyHandler(db))
	api.Get("/properties/:id", property.GetPropertyHandler(db))
	api.Put("/properties/:id", protect, property.UpdatePropertyHandler(db))
	api.Delete("/properties/:id", protect, property.DeletePropertyHandler(db))

	// Customers
	api.Get("/customers", customer.ListCustomersHandler(db))
	api.Post("/customers", protect, customer.CreateCustomerHandler(db))
	api.Get("/customers/:id", customer.GetCustomerHandler(db))

	// Sales
	api.Get("/sales", sale.ListSalesHandler(db))
	api.Post("/sales", protect, sale.CreateSaleHandler(db))

	// Leases
	api.Get("/leases", lease.ListLeasesHandler(db))
	api.Post("/leases", protect, lease.CreateLeaseHandler(db))

	// Finance
	api.Get("/finance", finance.ListFinanceRecordsHandler(db))
	api.Post("/finance", protect, finance.CreateFinanceRecordHandler(db))

	return app
}

// ErrorHandler turns handler errors into JSON error bodies. Validation
// errors keep their field detail; anything unexpected is logged and
// answered with an opaque 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error": fe.Message,
		})
	}
	log.Println("Unexpected error:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "unexpected server error",
	})
}
