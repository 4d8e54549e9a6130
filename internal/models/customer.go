package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID                    uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName             string        `gorm:"size:50;not null" json:"first_name"`
	LastName              string        `gorm:"size:50;not null" json:"last_name"`
	Email                 string        `gorm:"size:255;not null;index" json:"email"`
	Phone                 string        `gorm:"size:50;not null" json:"phone"`
	Address               *string       `gorm:"size:255" json:"address"`
	City                  *string       `gorm:"size:100" json:"city"`
	State                 *string       `gorm:"size:100" json:"state"`
	ZipCode               *string       `gorm:"size:20" json:"zip_code"`
	DateOfBirth           *Date         `json:"date_of_birth"`
	Occupation            *string       `gorm:"size:100" json:"occupation"`
	AnnualIncome          *float64      `json:"annual_income"`
	CreditScore           *int          `json:"credit_score"`
	PreferredPropertyType *PropertyType `gorm:"size:20" json:"preferred_property_type"`
	BudgetMin             *float64      `json:"budget_min"`
	BudgetMax             *float64      `json:"budget_max"`
	Notes                 *string       `gorm:"size:2000" json:"notes"`
	LeadSource            *string       `gorm:"size:100" json:"lead_source"`
	AssignedAgentID       *string       `gorm:"size:64" json:"assigned_agent_id"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
