// services/restaurant_order_service.go
package services

import (
	"fmt"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"gorm.io/gorm"
)

// RestaurantOrderService creates restaurant orders and keeps them linked to
// the bookings occupying matching rooms.
type RestaurantOrderService struct {
	DB *gorm.DB
}

func NewRestaurantOrderService(db *gorm.DB) *RestaurantOrderService {
	return &RestaurantOrderService{DB: db}
}

// FindActiveBookingForTable resolves the active booking whose room list
// contains the table number as an exact trimmed token. Returns nil when no
// booking holds that room.
func (s *RestaurantOrderService) FindActiveBookingForTable(tableNo string) (*models.Booking, error) {
	var candidates []models.Booking
	if err := s.DB.
		Where("is_active = ?", true).
		Where("status IN ?", []string{models.BookingStatusBooked, models.BookingStatusCheckedIn}).
		Order("id").
		Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("restaurant orders: failed to load bookings: %w", err)
	}

	for i := range candidates {
		if utils.ContainsRoomNumber(candidates[i].RoomNumber, tableNo) {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

// CreateOrder links the order to a matching booking (when its table number
// equals an occupied room) and persists it.
func (s *RestaurantOrderService) CreateOrder(order *models.RestaurantOrder) error {
	if order.TableNo != "" {
		booking, err := s.FindActiveBookingForTable(order.TableNo)
		if err != nil {
			return err
		}
		if booking != nil {
			order.BookingID = &booking.ID
			order.GrcNo = booking.GrcNo
			order.RoomNumber = booking.RoomNumber
			order.GuestName = booking.Name
			order.GuestPhone = booking.MobileNo
		}
	}

	if err := s.DB.Create(order).Error; err != nil {
		return fmt.Errorf("restaurant orders: failed to create order: %w", err)
	}
	return nil
}

// LinkUnlinkedOrders backfills booking linkage for orders created before a
// matching booking existed. Returns how many were linked and how many were
// candidates.
func (s *RestaurantOrderService) LinkUnlinkedOrders() (linked int, total int, err error) {
	var orders []models.RestaurantOrder
	if err := s.DB.
		Where("booking_id IS NULL OR grc_no = '' OR grc_no IS NULL").
		Find(&orders).Error; err != nil {
		return 0, 0, fmt.Errorf("restaurant orders: failed to load unlinked orders: %w", err)
	}

	for _, order := range orders {
		if order.TableNo == "" {
			continue
		}
		booking, err := s.FindActiveBookingForTable(order.TableNo)
		if err != nil {
			return linked, len(orders), err
		}
		if booking == nil {
			continue
		}
		if err := s.DB.Model(&models.RestaurantOrder{}).
			Where("id = ?", order.ID).
			Updates(map[string]interface{}{
				"booking_id":  booking.ID,
				"grc_no":      booking.GrcNo,
				"room_number": booking.RoomNumber,
				"guest_name":  booking.Name,
				"guest_phone": booking.MobileNo,
			}).Error; err != nil {
			return linked, len(orders), fmt.Errorf("restaurant orders: failed to link order %d: %w", order.ID, err)
		}
		linked++
	}
	return linked, len(orders), nil
}
