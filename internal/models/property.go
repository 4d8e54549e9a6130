package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeCommercial  PropertyType = "commercial"
	PropertyTypeLand        PropertyType = "land"
	PropertyTypeIndustrial  PropertyType = "industrial"
)

// PropertyTypes lists every declared type, in declaration order.
// The dashboard zero-fills its per-type breakdown from this list.
func PropertyTypes() []PropertyType {
	return []PropertyType{PropertyTypeResidential, PropertyTypeCommercial, PropertyTypeLand, PropertyTypeIndustrial}
}

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeResidential, PropertyTypeCommercial, PropertyTypeLand, PropertyTypeIndustrial:
		return true
	}
	return false
}

type PropertyStatus string

const (
	PropertyStatusAvailable     PropertyStatus = "available"
	PropertyStatusLeased        PropertyStatus = "leased"
	PropertyStatusSold          PropertyStatus = "sold"
	PropertyStatusOffMarket     PropertyStatus = "off_market"
	PropertyStatusUnderContract PropertyStatus = "under_contract"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusLeased, PropertyStatusSold, PropertyStatusOffMarket, PropertyStatusUnderContract:
		return true
	}
	return false
}

type Property struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string         `gorm:"size:200;not null" json:"title"`
	Description    string         `gorm:"size:2000" json:"description"`
	PropertyType   PropertyType   `gorm:"size:20;not null;index" json:"property_type"`
	Status         PropertyStatus `gorm:"size:20;not null;index" json:"status"`
	Price          float64        `gorm:"not null" json:"price"`
	Area           float64        `gorm:"not null" json:"area"` // sq ft
	Bedrooms       *int           `json:"bedrooms"`
	Bathrooms      *float64       `json:"bathrooms"`
	Address        string         `gorm:"size:255;not null" json:"address"`
	City           string         `gorm:"size:100;not null;index" json:"city"`
	State          string         `gorm:"size:100;not null" json:"state"`
	ZipCode        string         `gorm:"size:20;not null" json:"zip_code"`
	Country        string         `gorm:"size:100;not null" json:"country"`
	Latitude       *float64       `json:"latitude"`
	Longitude      *float64       `json:"longitude"`
	Amenities      datatypes.JSON `json:"amenities"`
	Images         datatypes.JSON `json:"images"`
	YearBuilt      *int           `json:"year_built"`
	ParkingSpaces  *int           `json:"parking_spaces"`
	LotSize        *float64       `json:"lot_size"` // acres
	HOAFee         *float64       `json:"hoa_fee"`
	PropertyTax    *float64       `json:"property_tax"`
	ListingAgentID *string        `gorm:"size:64" json:"listing_agent_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
