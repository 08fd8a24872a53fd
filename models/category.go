package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups rooms for pricing and availability reporting.
type Category struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:150;uniqueIndex" json:"name"`
	Description string `json:"description"`

	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
