package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FinanceRecord types are free text by design; "income" and "expense" are
// the two values the dashboard aggregates on.
const (
	FinanceTypeIncome  = "income"
	FinanceTypeExpense = "expense"
)

// FinanceRecord is append-only bookkeeping, so it carries no updated_at.
type FinanceRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Type        string    `gorm:"size:50;not null;index" json:"type"`
	Category    string    `gorm:"size:100;not null;index" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `gorm:"size:2000;not null" json:"description"`
	Date        Date      `gorm:"not null;index" json:"date"`
	PropertyID  *string   `gorm:"size:64" json:"property_id"`
	CustomerID  *string   `gorm:"size:64" json:"customer_id"`
	AgentID     *string   `gorm:"size:64" json:"agent_id"`
	ReceiptURL  *string   `gorm:"size:500" json:"receipt_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *FinanceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
