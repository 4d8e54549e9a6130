package finance

import (
	"estate-backend/internal/models"
	"estate-backend/internal/serialize"
	"estate-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FinanceRecordRequest struct {
	Type        string       `json:"type" validate:"required"`
	Category    string       `json:"category" validate:"required"`
	Amount      *float64     `json:"amount" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Date        *models.Date `json:"date" validate:"required"`
	PropertyID  *string      `json:"property_id"`
	CustomerID  *string      `json:"customer_id"`
	AgentID     *string      `json:"agent_id"`
	ReceiptURL  *string      `json:"receipt_url"`
}

func (r FinanceRecordRequest) toModel() models.FinanceRecord {
	return models.FinanceRecord{
		Type:        r.Type,
		Category:    r.Category,
		Amount:      *r.Amount,
		Description: r.Description,
		Date:        *r.Date,
		PropertyID:  r.PropertyID,
		CustomerID:  r.CustomerID,
		AgentID:     r.AgentID,
		ReceiptURL:  r.ReceiptURL,
	}
}

// Filter holds the optional finance list parameters. Type and category are
// free text, matched by equality when present.
type Filter struct {
	Type     string
	Category string
}

func (f Filter) Apply(q *gorm.DB) *gorm.DB {
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	return q
}

// -------------------------------------------------
// GET /api/finance?skip=0&limit=100&type=&category=
// -------------------------------------------------
func ListFinanceRecordsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip := c.QueryInt("skip", 0)
		limit := c.QueryInt("limit", 100)
		if skip < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "skip must not be negative")
		}
		if limit <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "limit must be greater than 0")
		}

		f := Filter{
			Type:     c.Query("type"),
			Category: c.Query("category"),
		}

		var records []models.FinanceRecord
		if err := f.Apply(db.Model(&models.FinanceRecord{})).
			Order("created_at asc, id asc").
			Offset(skip).Limit(limit).
			Find(&records).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list finance records")
		}

		resp := make([]map[string]any, 0, len(records))
		for i := range records {
			resp = append(resp, serialize.Record(&records[i]))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// POST /api/finance
// -------------------------------------------------
func CreateFinanceRecordHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body FinanceRecordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		rec := body.toModel()
		if err := db.Create(&rec).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create finance record")
		}

		var created models.FinanceRecord
		if err := db.First(&created, "id = ?", rec.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not load created finance record")
		}
		return c.Status(fiber.StatusCreated).JSON(serialize.Record(&created))
	}
}
