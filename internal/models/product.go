package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the store catalog.
// Products are never removed by the public API; Active=false hides them instead.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID  *int64          `gorm:"index"`
	Image       string          `gorm:"size:500"`
	Stock       int             `gorm:"not null"`
	Rating      float64         `gorm:"not null"`
	Active      bool            `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for Product model.
func (Product) TableName() string {
	return "products"
}
