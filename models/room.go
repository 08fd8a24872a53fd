package models

import (
	"gorm.io/gorm"
)

// RoomStatuses is the allow-list accepted by the status update endpoint.
var RoomStatuses = []string{"available", "reserved", "booked", "maintenance"}

type Room struct {
	gorm.Model

	// CategoryID is nullable so rooms created without a valid FK don't try
	// to insert 0. Uncategorized rooms fall into a synthetic bucket in the
	// availability response.
	CategoryID *uint    `json:"categoryId,omitempty" gorm:"column:category_id;index"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Title      string `json:"title" gorm:"size:255"`
	RoomNumber string `json:"room_number" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	Status      string  `json:"status" gorm:"size:32;default:available"`
	Price       float64 `json:"price"`
	ExtraBed    bool    `json:"extra_bed" gorm:"column:extra_bed"`
	Description string  `json:"description" gorm:"type:text"`
}
