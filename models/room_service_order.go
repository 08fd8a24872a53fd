package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomServiceOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OrderNumber string `gorm:"column:order_number;size:64;uniqueIndex" json:"orderNumber"`
	ServiceType string `gorm:"column:service_type;size:64" json:"serviceType"`
	RoomNumber  string `gorm:"column:room_number;size:32;index" json:"roomNumber"`
	GuestName   string `gorm:"column:guest_name;size:255" json:"guestName"`

	BookingID *uint `gorm:"column:booking_id;index" json:"bookingId,omitempty"`

	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`
	Status      string  `gorm:"size:32" json:"status"`
}
