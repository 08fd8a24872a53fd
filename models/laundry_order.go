package models

import (
	"time"

	"gorm.io/gorm"
)

type LaundryOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomNumber      string `gorm:"column:room_number;size:32;index" json:"roomNumber"`
	GrcNo           string `gorm:"column:grc_no;size:64" json:"grcNo"`
	RequestedByName string `gorm:"column:requested_by_name;size:255" json:"requestedByName"`
	ServiceType     string `gorm:"column:service_type;size:64" json:"serviceType"`
	LaundryStatus   string `gorm:"column:laundry_status;size:32" json:"laundryStatus"`
	InvoiceNumber   string `gorm:"column:invoice_number;size:64" json:"invoiceNumber"`

	BookingID *uint `gorm:"column:booking_id;index" json:"bookingId,omitempty"`

	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`
}
