package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Category groups products. Names are unique regardless of case.
type Category struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:100;not null"`
	NameKey     string `gorm:"size:100;not null;uniqueIndex"` // lower-cased Name
	Description string `gorm:"type:text"`
	Image       string `gorm:"size:500"`
	Active      bool   `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for Category model.
func (Category) TableName() string {
	return "categories"
}

// BeforeSave keeps NameKey in step with Name so the unique index sees every rename.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.NameKey = CategoryNameKey(c.Name)
	return nil
}

// CategoryNameKey is the case-folded form used for name collision checks.
func CategoryNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
