package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NightAuditReport is a persisted snapshot of a generated report. Date is
// unique: re-saving the same night is rejected, which keeps generation
// idempotent on the read path and explicit on the write path.
type NightAuditReport struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date time.Time `gorm:"uniqueIndex" json:"date"`

	Occupancy        datatypes.JSON `json:"occupancy"`
	GuestActivity    datatypes.JSON `gorm:"column:guest_activity" json:"guestActivity"`
	Revenue          datatypes.JSON `json:"revenue"`
	Bookings         datatypes.JSON `json:"bookings"`
	RestaurantOrders datatypes.JSON `gorm:"column:restaurant_orders" json:"restaurantOrders"`

	GeneratedBy string `gorm:"column:generated_by;size:64" json:"generatedBy"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
