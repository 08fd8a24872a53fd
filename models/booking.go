package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking lifecycle statuses used across the reporting queries.
const (
	BookingStatusBooked     = "Booked"
	BookingStatusCheckedIn  = "Checked In"
	BookingStatusCheckedOut = "Checked Out"
	BookingStatusCancelled  = "Cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GrcNo    string `gorm:"column:grc_no;size:64;index" json:"grcNo"`
	Name     string `gorm:"size:255" json:"name"`
	MobileNo string `gorm:"column:mobile_no;size:32" json:"mobileNo"`

	// RoomNumber holds one or more room numbers as a comma-separated string
	// ("101, 102"). Each token is compared exact after trimming, never as a
	// substring.
	RoomNumber string `gorm:"column:room_number;size:255" json:"roomNumber"`

	CategoryID *uint    `gorm:"column:category_id;index" json:"categoryId,omitempty"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	CheckInDate       time.Time  `gorm:"column:check_in_date;index" json:"checkInDate"`
	CheckOutDate      time.Time  `gorm:"column:check_out_date;index" json:"checkOutDate"`
	ActualCheckInTime *time.Time `gorm:"column:actual_check_in_time" json:"actualCheckInTime,omitempty"`

	Status   string `gorm:"size:32;index" json:"status"`
	IsActive bool   `gorm:"column:is_active;default:true" json:"isActive"`

	PaymentMode   string `gorm:"column:payment_mode;size:32" json:"paymentMode"`
	PaymentStatus string `gorm:"column:payment_status;size:32" json:"paymentStatus"`

	Rate            float64 `json:"rate"`
	Days            int     `json:"days"`
	ExtraBedCharge  float64 `gorm:"column:extra_bed_charge" json:"extraBedCharge"`
	DiscountPercent float64 `gorm:"column:discount_percent" json:"discountPercent"`

	// Tax rate overrides; nil (or zero) falls back to the configured
	// 2.5% CGST/SGST defaults.
	CgstRate *float64 `gorm:"column:cgst_rate" json:"cgstRate,omitempty"`
	SgstRate *float64 `gorm:"column:sgst_rate" json:"sgstRate,omitempty"`

	TotalAmount   float64 `gorm:"column:total_amount" json:"totalAmount"`
	InvoiceNumber string  `gorm:"column:invoice_number;size:64" json:"invoiceNumber"`

	RoomRates       []BookingRoomRate `gorm:"foreignKey:BookingID" json:"roomRates"`
	AdvancePayments []AdvancePayment  `gorm:"foreignKey:BookingID" json:"advancePayments"`
}

// BookingRoomRate carries the per-room custom rate chosen at booking time.
type BookingRoomRate struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	BookingID  uint    `gorm:"index;column:booking_id" json:"bookingId"`
	CustomRate float64 `gorm:"column:custom_rate" json:"customRate"`
	ExtraBed   bool    `gorm:"column:extra_bed" json:"extraBed"`
}

type AdvancePayment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BookingID   uint      `gorm:"index;column:booking_id" json:"bookingId"`
	Amount      float64   `json:"amount"`
	PaymentMode string    `gorm:"column:payment_mode;size:32" json:"paymentMode"`
	CreatedAt   time.Time `json:"createdAt"`
}
