package sale

import (
	"estate-backend/internal/models"
	"estate-backend/internal/serialize"
	"estate-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SaleRequest struct {
	PropertyID       string            `json:"property_id" validate:"required"`
	CustomerID       string            `json:"customer_id" validate:"required"`
	AgentID          string            `json:"agent_id" validate:"required"`
	SalePrice        float64           `json:"sale_price" validate:"required,gt=0"`
	CommissionRate   *float64          `json:"commission_rate" validate:"required,gte=0,lte=1"`
	CommissionAmount *float64          `json:"commission_amount" validate:"required,gte=0"`
	ContractDate     *models.Date      `json:"contract_date" validate:"required"`
	ClosingDate      *models.Date      `json:"closing_date" validate:"required"`
	Status           models.DealStatus `json:"status" validate:"omitempty,oneof=prospecting qualification proposal negotiation closing closed lost"`
	Notes            *string           `json:"notes"`
}

func (r SaleRequest) toModel() models.Sale {
	status := r.Status
	if status == "" {
		status = models.DealStatusProspecting
	}
	return models.Sale{
		PropertyID:       r.PropertyID,
		CustomerID:       r.CustomerID,
		AgentID:          r.AgentID,
		SalePrice:        r.SalePrice,
		CommissionRate:   *r.CommissionRate,
		CommissionAmount: *r.CommissionAmount,
		ContractDate:     *r.ContractDate,
		ClosingDate:      *r.ClosingDate,
		Status:           status,
		Notes:            r.Notes,
	}
}

// -------------------------------------------------
// GET /api/sales?skip=0&limit=100
// -------------------------------------------------
func ListSalesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip := c.QueryInt("skip", 0)
		limit := c.QueryInt("limit", 100)
		if skip < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "skip must not be negative")
		}
		if limit <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "limit must be greater than 0")
		}

		var sales []models.Sale
		if err := db.Order("created_at asc, id asc").
			Offset(skip).Limit(limit).
			Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list sales")
		}

		resp := make([]map[string]any, 0, len(sales))
		for i := range sales {
			resp = append(resp, serialize.Record(&sales[i]))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// POST /api/sales
// -------------------------------------------------
func CreateSaleHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		s := body.toModel()
		if err := db.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create sale")
		}

		var created models.Sale
		if err := db.First(&created, "id = ?", s.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not load created sale")
		}
		return c.Status(fiber.StatusCreated).JSON(serialize.Record(&created))
	}
}
