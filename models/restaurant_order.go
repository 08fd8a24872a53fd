package models

import (
	"time"

	"gorm.io/gorm"
)

// RestaurantOrder is a dine-in order. TableNo may equal a room number, in
// which case the order is linked to the active booking occupying that room.
type RestaurantOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CustomerName string  `gorm:"column:customer_name;size:255" json:"customerName"`
	TableNo      string  `gorm:"column:table_no;size:32;index" json:"tableNo"`
	Amount       float64 `json:"amount"`
	Status       string  `gorm:"size:32" json:"status"`

	// Booking linkage, populated at creation time when TableNo matches an
	// active booking's room-number list.
	BookingID  *uint  `gorm:"column:booking_id;index" json:"bookingId,omitempty"`
	GrcNo      string `gorm:"column:grc_no;size:64" json:"grcNo,omitempty"`
	RoomNumber string `gorm:"column:room_number;size:255" json:"roomNumber,omitempty"`
	GuestName  string `gorm:"column:guest_name;size:255" json:"guestName,omitempty"`
	GuestPhone string `gorm:"column:guest_phone;size:32" json:"guestPhone,omitempty"`
}
