package lease

import (
	"encoding/json"

	"estate-backend/internal/models"
	"estate-backend/internal/serialize"
	"estate-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LeaseRequest struct {
	PropertyID        string       `json:"property_id" validate:"required"`
	TenantID          string       `json:"tenant_id" validate:"required"`
	AgentID           string       `json:"agent_id" validate:"required"`
	MonthlyRent       float64      `json:"monthly_rent" validate:"required,gt=0"`
	SecurityDeposit   *float64     `json:"security_deposit" validate:"required,gte=0"`
	LeaseStart        *models.Date `json:"lease_start" validate:"required"`
	LeaseEnd          *models.Date `json:"lease_end" validate:"required"`
	LeaseTermMonths   int          `json:"lease_term_months" validate:"required,gt=0"`
	UtilitiesIncluded []string     `json:"utilities_included"`
	PetPolicy         *string      `json:"pet_policy"`
	ParkingIncluded   bool         `json:"parking_included"`
	Status            string       `json:"status"`
	Notes             *string      `json:"notes"`
}

func (r LeaseRequest) toModel() models.Lease {
	status := r.Status
	if status == "" {
		status = models.LeaseStatusActive
	}
	utilities := r.UtilitiesIncluded
	if utilities == nil {
		utilities = []string{}
	}
	b, _ := json.Marshal(utilities)
	return models.Lease{
		PropertyID:        r.PropertyID,
		TenantID:          r.TenantID,
		AgentID:           r.AgentID,
		MonthlyRent:       r.MonthlyRent,
		SecurityDeposit:   *r.SecurityDeposit,
		LeaseStart:        *r.LeaseStart,
		LeaseEnd:          *r.LeaseEnd,
		LeaseTermMonths:   r.LeaseTermMonths,
		UtilitiesIncluded: datatypes.JSON(b),
		PetPolicy:         r.PetPolicy,
		ParkingIncluded:   r.ParkingIncluded,
		Status:            status,
		Notes:             r.Notes,
	}
}

// -------------------------------------------------
// GET /api/leases?skip=0&limit=100
// -------------------------------------------------
func ListLeasesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip := c.QueryInt("skip", 0)
		limit := c.QueryInt("limit", 100)
		if skip < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "skip must not be negative")
		}
		if limit <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "limit must be greater than 0")
		}

		var leases []models.Lease
		if err := db.Order("created_at asc, id asc").
			Offset(skip).Limit(limit).
			Find(&leases).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list leases")
		}

		resp := make([]map[string]any, 0, len(leases))
		for i := range leases {
			resp = append(resp, serialize.Record(&leases[i]))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// POST /api/leases
// -------------------------------------------------
func CreateLeaseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LeaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		l := body.toModel()
		if err := db.Create(&l).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create lease")
		}

		var created models.Lease
		if err := db.First(&created, "id = ?", l.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not load created lease")
		}
		return c.Status(fiber.StatusCreated).JSON(serialize.Record(&created))
	}
}
