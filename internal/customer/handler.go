package customer

import (
	"errors"

	"estate-backend/internal/models"
	"estate-backend/internal/serialize"
	"estate-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRequest struct {
	FirstName             string               `json:"first_name" validate:"required,min=1,max=50"`
	LastName              string               `json:"last_name" validate:"required,min=1,max=50"`
	Email                 string               `json:"email" validate:"required,email"`
	Phone                 string               `json:"phone" validate:"required"`
	Address               *string              `json:"address"`
	City                  *string              `json:"city"`
	State                 *string              `json:"state"`
	ZipCode               *string              `json:"zip_code"`
	DateOfBirth           *models.Date         `json:"date_of_birth"`
	Occupation            *string              `json:"occupation"`
	AnnualIncome          *float64             `json:"annual_income" validate:"omitempty,gte=0"`
	CreditScore           *int                 `json:"credit_score" validate:"omitempty,gte=300,lte=850"`
	PreferredPropertyType *models.PropertyType `json:"preferred_property_type" validate:"omitempty,oneof=residential commercial land industrial"`
	BudgetMin             *float64             `json:"budget_min" validate:"omitempty,gte=0"`
	BudgetMax             *float64             `json:"budget_max" validate:"omitempty,gte=0"`
	Notes                 *string              `json:"notes"`
	LeadSource            *string              `json:"lead_source"`
	AssignedAgentID       *string              `json:"assigned_agent_id"`
}

func (r CustomerRequest) toModel() models.Customer {
	return models.Customer{
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		Email:                 r.Email,
		Phone:                 r.Phone,
		Address:               r.Address,
		City:                  r.City,
		State:                 r.State,
		ZipCode:               r.ZipCode,
		DateOfBirth:           r.DateOfBirth,
		Occupation:            r.Occupation,
		AnnualIncome:          r.AnnualIncome,
		CreditScore:           r.CreditScore,
		PreferredPropertyType: r.PreferredPropertyType,
		BudgetMin:             r.BudgetMin,
		BudgetMax:             r.BudgetMax,
		Notes:                 r.Notes,
		LeadSource:            r.LeadSource,
		AssignedAgentID:       r.AssignedAgentID,
	}
}

// -------------------------------------------------
// GET /api/customers?skip=0&limit=100
// -------------------------------------------------
func ListCustomersHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip := c.QueryInt("skip", 0)
		limit := c.QueryInt("limit", 100)
		if skip < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "skip must not be negative")
		}
		if limit <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "limit must be greater than 0")
		}

		var customers []models.Customer
		if err := db.Order("created_at asc, id asc").
			Offset(skip).Limit(limit).
			Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list customers")
		}

		resp := make([]map[string]any, 0, len(customers))
		for i := range customers {
			resp = append(resp, serialize.Record(&customers[i]))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// POST /api/customers
// -------------------------------------------------
func CreateCustomerHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		cust := body.toModel()
		if err := db.Create(&cust).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create customer")
		}

		var created models.Customer
		if err := db.First(&created, "id = ?", cust.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not load created customer")
		}
		return c.Status(fiber.StatusCreated).JSON(serialize.Record(&created))
	}
}

// -------------------------------------------------
// GET /api/customers/:id
// -------------------------------------------------
func GetCustomerHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid customer id")
		}

		var cust models.Customer
		if err := db.First(&cust, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "customer not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not load customer")
		}
		return c.JSON(serialize.Record(&cust))
	}
}
