package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

// Valid reports whether s is one of the two invoice states.
func (s InvoiceStatus) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice amounts are stored in cents.
type Invoice struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   *Customer      `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"customer,omitempty"`
	Amount     int64          `gorm:"not null;check:amount >= 0" json:"amount"`
	Date       datatypes.Date `gorm:"not null;index" json:"date"`
	Status     InvoiceStatus  `gorm:"type:varchar(16);not null;index;check:status IN ('pending','paid')" json:"status"`
}
