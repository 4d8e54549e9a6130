package property

import (
	"encoding/json"
	"errors"
	"strconv"

	"estate-backend/internal/models"
	"estate-backend/internal/serialize"
	"estate-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyRequest struct {
	Title          string                `json:"title" validate:"required,min=1,max=200"`
	Description    string                `json:"description"`
	PropertyType   models.PropertyType   `json:"property_type" validate:"required,oneof=residential commercial land industrial"`
	Status         models.PropertyStatus `json:"status" validate:"required,oneof=available leased sold off_market under_contract"`
	Price          float64               `json:"price" validate:"required,gt=0"`
	Area           float64               `json:"area" validate:"required,gt=0"`
	Bedrooms       *int                  `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms      *float64              `json:"bathrooms" validate:"omitempty,gte=0"`
	Address        string                `json:"address" validate:"required"`
	City           string                `json:"city" validate:"required"`
	State          string                `json:"state" validate:"required"`
	ZipCode        string                `json:"zip_code" validate:"required"`
	Country        string                `json:"country"`
	Latitude       *float64              `json:"latitude"`
	Longitude      *float64              `json:"longitude"`
	Amenities      []string              `json:"amenities"`
	Images         []string              `json:"images"`
	YearBuilt      *int                  `json:"year_built"`
	ParkingSpaces  *int                  `json:"parking_spaces" validate:"omitempty,gte=0"`
	LotSize        *float64              `json:"lot_size"`
	HOAFee         *float64              `json:"hoa_fee" validate:"omitempty,gte=0"`
	PropertyTax    *float64              `json:"property_tax" validate:"omitempty,gte=0"`
	ListingAgentID *string               `json:"listing_agent_id"`
}

func (r PropertyRequest) toModel() models.Property {
	country := r.Country
	if country == "" {
		country = "USA"
	}
	return models.Property{
		Title:          r.Title,
		Description:    r.Description,
		PropertyType:   r.PropertyType,
		Status:         r.Status,
		Price:          r.Price,
		Area:           r.Area,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		ZipCode:        r.ZipCode,
		Country:        country,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Amenities:      toJSONList(r.Amenities),
		Images:         toJSONList(r.Images),
		YearBuilt:      r.YearBuilt,
		ParkingSpaces:  r.ParkingSpaces,
		LotSize:        r.LotSize,
		HOAFee:         r.HOAFee,
		PropertyTax:    r.PropertyTax,
		ListingAgentID: r.ListingAgentID,
	}
}

func toJSONList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid property id")
	}
	return id, nil
}

// -------------------------------------------------
// GET /api/properties?skip=0&limit=100&property_type=&status=&min_price=&max_price=&city=
// -------------------------------------------------
func ListPropertiesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip := c.QueryInt("skip", 0)
		limit := c.QueryInt("limit", 100)
		if skip < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "skip must not be negative")
		}
		if limit <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "limit must be greater than 0")
		}

		var f Filter
		if v := c.Query("property_type"); v != "" {
			if !models.PropertyType(v).Valid() {
				return fiber.NewError(fiber.StatusBadRequest, "invalid property_type filter")
			}
			f.PropertyType = v
		}
		if v := c.Query("status"); v != "" {
			if !models.PropertyStatus(v).Valid() {
				return fiber.NewError(fiber.StatusBadRequest, "invalid status filter")
			}
			f.Status = v
		}
		if v := c.Query("min_price"); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "min_price must be a number")
			}
			f.MinPrice = &p
		}
		if v := c.Query("max_price"); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "max_price must be a number")
			}
			f.MaxPrice = &p
		}
		f.City = c.Query("city")

		var props []models.Property
		if err := f.Apply(db.Model(&models.Property{})).
			Order("created_at asc, id asc").
			Offset(skip).Limit(limit).
			Find(&props).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list properties")
		}

		resp := make([]map[string]any, 0, len(props))
		for i := range props {
			resp = append(resp, serialize.Record(&props[i]))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// POST /api/properties
// -------------------------------------------------
func CreatePropertyHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PropertyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		prop := body.toModel()
		if err := db.Create(&prop).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create property")
		}

		// re-read so the response carries the server-assigned state
		var created models.Property
		if err := db.First(&created, "id = ?", prop.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not load created property")
		}
		return c.Status(fiber.StatusCreated).JSON(serialize.Record(&created))
	}
}

// -------------------------------------------------
// GET /api/properties/:id
// -------------------------------------------------
func GetPropertyHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var prop models.Property
		if err := db.First(&prop, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "property not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not load property")
		}
		return c.JSON(serialize.Record(&prop))
	}
}

// -------------------------------------------------
// PUT /api/properties/:id
// -------------------------------------------------
func UpdatePropertyHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body PropertyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		var existing models.Property
		if err := db.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "property not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not load property")
		}

		updated := body.toModel()
		updated.ID = existing.ID
		updated.CreatedAt = existing.CreatedAt
		if err := db.Save(&updated).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update property")
		}

		var fresh models.Property
		if err := db.First(&fresh, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not load updated property")
		}
		return c.JSON(serialize.Record(&fresh))
	}
}

// -------------------------------------------------
// DELETE /api/properties/:id
// -------------------------------------------------
func DeletePropertyHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		res := db.Delete(&models.Property{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete property")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "property not found")
		}
		return c.JSON(fiber.Map{"message": "Property deleted successfully"})
	}
}
