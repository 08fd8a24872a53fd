// services/availability_service.go
package services

import (
	"fmt"
	"strconv"
	"sync"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"gorm.io/gorm"
)

// AvailabilityService resolves which rooms are free for a requested stay by
// excluding every room referenced by an overlapping active booking.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

type AvailableRoom struct {
	ID          uint    `json:"_id"`
	Title       string  `json:"title"`
	RoomNumber  string  `json:"room_number"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}

type CategoryGroup struct {
	Category     string          `json:"category"`
	CategoryName string          `json:"categoryName"`
	Rooms        []AvailableRoom `json:"rooms"`
}

type AvailabilityResult struct {
	AvailableRooms []CategoryGroup `json:"availableRooms"`
	TotalCount     int             `json:"totalCount"`
}

type RoomWithBookingStatus struct {
	ID           uint    `json:"_id"`
	Title        string  `json:"title"`
	RoomNumber   string  `json:"room_number"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	CategoryName string  `json:"categoryName"`
	IsBooked     bool    `json:"isBooked"`
	CanSelect    bool    `json:"canSelect"`
}

// FindAvailableRooms loads overlapping bookings and rooms in parallel, then
// filters rooms whose number appears in any overlapping booking's
// comma-separated room list. Overlap is the strict half-open test:
// booking.checkIn < queryCheckOut AND booking.checkOut > queryCheckIn.
//
// An inverted query range is not rejected: no booking can overlap it, so
// every room comes back available. Callers who want to forbid that must
// validate the range themselves.
func (s *AvailabilityService) FindAvailableRooms(checkInDate, checkOutDate, categoryID string) (*AvailabilityResult, error) {
	checkIn, checkOut, err := utils.ParseStayRange(checkInDate, checkOutDate)
	if err != nil {
		return nil, err
	}

	var (
		wg          sync.WaitGroup
		bookings    []models.Booking
		rooms       []models.Room
		bookingsErr error
		roomsErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		bookingsErr = s.DB.
			Select("room_number").
			Where("is_active = ?", true).
			Where("status IN ?", []string{models.BookingStatusBooked, models.BookingStatusCheckedIn}).
			Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
			Find(&bookings).Error
	}()
	go func() {
		defer wg.Done()
		q := s.DB.Preload("Category")
		if categoryID != "" {
			q = q.Where("category_id = ?", categoryID)
		}
		roomsErr = q.Find(&rooms).Error
	}()
	wg.Wait()

	if bookingsErr != nil {
		return nil, fmt.Errorf("availability: failed to load bookings: %w", bookingsErr)
	}
	if roomsErr != nil {
		return nil, fmt.Errorf("availability: failed to load rooms: %w", roomsErr)
	}

	occupied := occupiedRoomNumbers(bookings)

	// Group free rooms by category, preserving first-encounter order.
	groupIndex := map[string]int{}
	groups := []CategoryGroup{}
	total := 0

	for _, room := range rooms {
		if occupied[room.RoomNumber] {
			continue
		}

		catID := "uncategorized"
		catName := "Uncategorized"
		if room.CategoryID != nil {
			catID = strconv.FormatUint(uint64(*room.CategoryID), 10)
			if room.Category.Name != "" {
				catName = room.Category.Name
			}
		}

		idx, ok := groupIndex[catID]
		if !ok {
			groups = append(groups, CategoryGroup{Category: catID, CategoryName: catName})
			idx = len(groups) - 1
			groupIndex[catID] = idx
		}

		groups[idx].Rooms = append(groups[idx].Rooms, AvailableRoom{
			ID:          room.ID,
			Title:       room.Title,
			RoomNumber:  room.RoomNumber,
			Price:       room.Price,
			Description: room.Description,
			Status:      "available",
		})
		total++
	}

	return &AvailabilityResult{AvailableRooms: groups, TotalCount: total}, nil
}

// RoomsByCategory lists one category's rooms annotated with whether an
// active booking currently holds them.
func (s *AvailabilityService) RoomsByCategory(categoryID string) ([]RoomWithBookingStatus, error) {
	var (
		wg          sync.WaitGroup
		rooms       []models.Room
		bookings    []models.Booking
		roomsErr    error
		bookingsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		roomsErr = s.DB.Preload("Category").Where("category_id = ?", categoryID).Find(&rooms).Error
	}()
	go func() {
		defer wg.Done()
		bookingsErr = s.DB.
			Select("room_number").
			Where("category_id = ? AND is_active = ?", categoryID, true).
			Find(&bookings).Error
	}()
	wg.Wait()

	if roomsErr != nil {
		return nil, fmt.Errorf("availability: failed to load rooms: %w", roomsErr)
	}
	if bookingsErr != nil {
		return nil, fmt.Errorf("availability: failed to load bookings: %w", bookingsErr)
	}

	occupied := occupiedRoomNumbers(bookings)

	out := make([]RoomWithBookingStatus, 0, len(rooms))
	for _, room := range rooms {
		catName := "Unknown"
		if room.Category.Name != "" {
			catName = room.Category.Name
		}
		isBooked := occupied[room.RoomNumber]
		out = append(out, RoomWithBookingStatus{
			ID:           room.ID,
			Title:        room.Title,
			RoomNumber:   room.RoomNumber,
			Price:        room.Price,
			Status:       room.Status,
			CategoryName: catName,
			IsBooked:     isBooked,
			CanSelect:    !isBooked && room.Status == "available",
		})
	}
	return out, nil
}

// occupiedRoomNumbers collects every trimmed room-number token referenced by
// the given bookings. Multi-room bookings contribute one token per room.
func occupiedRoomNumbers(bookings []models.Booking) map[string]bool {
	occupied := make(map[string]bool)
	for _, b := range bookings {
		for _, token := range utils.SplitRoomNumbers(b.RoomNumber) {
			occupied[token] = true
		}
	}
	return occupied
}
