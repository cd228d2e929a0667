package models

import "github.com/shopspring/decimal"

type Revenue struct {
	Month   string          `gorm:"size:255;primaryKey" json:"month"`
	Revenue decimal.Decimal `gorm:"type:numeric;not null" json:"revenue"`
}
