package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lease status stays free text ("active", "expired", "terminated", ...);
// there is no fixed set enforced at the store boundary.
const LeaseStatusActive = "active"

type Lease struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID        string         `gorm:"size:64;not null;index" json:"property_id"`
	TenantID          string         `gorm:"size:64;not null;index" json:"tenant_id"`
	AgentID           string         `gorm:"size:64;not null;index" json:"agent_id"`
	MonthlyRent       float64        `gorm:"not null" json:"monthly_rent"`
	SecurityDeposit   float64        `gorm:"not null" json:"security_deposit"`
	LeaseStart        Date           `gorm:"not null" json:"lease_start"`
	LeaseEnd          Date           `gorm:"not null" json:"lease_end"`
	LeaseTermMonths   int            `gorm:"not null" json:"lease_term_months"`
	UtilitiesIncluded datatypes.JSON `json:"utilities_included"`
	PetPolicy         *string        `gorm:"size:255" json:"pet_policy"`
	ParkingIncluded   bool           `gorm:"not null" json:"parking_included"`
	Status            string         `gorm:"size:50;not null" json:"status"`
	Notes             *string        `gorm:"size:2000" json:"notes"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (l *Lease) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
