package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DealStatus string

const (
	DealStatusProspecting   DealStatus = "prospecting"
	DealStatusQualification DealStatus = "qualification"
	DealStatusProposal      DealStatus = "proposal"
	DealStatusNegotiation   DealStatus = "negotiation"
	DealStatusClosing       DealStatus = "closing"
	DealStatusClosed        DealStatus = "closed"
	DealStatusLost          DealStatus = "lost"
)

func (s DealStatus) Valid() bool {
	switch s {
	case DealStatusProspecting, DealStatusQualification, DealStatusProposal,
		DealStatusNegotiation, DealStatusClosing, DealStatusClosed, DealStatusLost:
		return true
	}
	return false
}

type Sale struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID       string     `gorm:"size:64;not null;index" json:"property_id"`
	CustomerID       string     `gorm:"size:64;not null;index" json:"customer_id"`
	AgentID          string     `gorm:"size:64;not null;index" json:"agent_id"`
	SalePrice        float64    `gorm:"not null" json:"sale_price"`
	CommissionRate   float64    `gorm:"not null" json:"commission_rate"` // fraction, 0-1
	CommissionAmount float64    `gorm:"not null" json:"commission_amount"`
	ContractDate     Date       `gorm:"not null" json:"contract_date"`
	ClosingDate      Date       `gorm:"not null" json:"closing_date"`
	Status           DealStatus `gorm:"size:20;not null" json:"status"`
	Notes            *string    `gorm:"size:2000" json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
