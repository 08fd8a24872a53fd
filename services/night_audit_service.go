// services/night_audit_service.go
package services

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"gorm.io/gorm"
)

// NightAuditService computes the end-of-day reconciliation report: occupancy,
// guest activity and revenue across bookings, restaurant orders and room
// service orders. Pure read; it never mutates booking or order state.
type NightAuditService struct {
	DB *gorm.DB
}

func NewNightAuditService(db *gorm.DB) *NightAuditService {
	return &NightAuditService{DB: db}
}

type OccupancySummary struct {
	TotalRooms    int     `json:"totalRooms"`
	OccupiedRooms int     `json:"occupiedRooms"`
	VacantRooms   int     `json:"vacantRooms"`
	OccupancyRate float64 `json:"occupancyRate"`
}

type GuestActivitySummary struct {
	CheckIns  int `json:"checkIns"`
	CheckOuts int `json:"checkOuts"`
	StayOvers int `json:"stayOvers"`
}

type RevenueSummary struct {
	RoomRevenue        float64  `json:"roomRevenue"`
	RestaurantRevenue  float64  `json:"restaurantRevenue"`
	RoomServiceRevenue *float64 `json:"roomServiceRevenue,omitempty"`
	TotalRevenue       float64  `json:"totalRevenue"`
	ADR                float64  `json:"adr"`
	RevPAR             float64  `json:"revpar"`
}

type ReportBookingLine struct {
	GrcNo       string    `json:"grcNo"`
	Name        string    `json:"name"`
	RoomNumber  string    `json:"roomNumber"`
	CheckInDate time.Time `json:"checkInDate"`
	TotalAmount float64   `json:"totalAmount"`
}

type ReportRestaurantOrderLine struct {
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	TableNo      string    `json:"tableNo"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ReportRoomServiceOrderLine struct {
	OrderID     string    `json:"orderId"`
	RoomNumber  string    `json:"roomNumber"`
	GuestName   string    `json:"guestName"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NightAuditReportData struct {
	Date              string                       `json:"date"`
	Occupancy         OccupancySummary             `json:"occupancy"`
	GuestActivity     GuestActivitySummary         `json:"guestActivity"`
	Revenue           RevenueSummary               `json:"revenue"`
	Bookings          []ReportBookingLine          `json:"bookings"`
	RestaurantOrders  []ReportRestaurantOrderLine  `json:"restaurantOrders"`
	RoomServiceOrders []ReportRoomServiceOrderLine `json:"roomServiceOrders,omitempty"`
}

// GenerateReport builds the primary night-audit report for one calendar day.
// Room-service orders are not part of this variant; per-check-in amounts are
// derived from room rates, extra beds, discount and GST.
func (s *NightAuditService) GenerateReport(date string) (*NightAuditReportData, error) {
	return s.buildReport(date, false)
}

// GenerateExtendedReport additionally pulls the day's room-service orders
// and folds their revenue into totalRevenue. Booking lines carry the stored
// booking amount instead of the derived one.
func (s *NightAuditService) GenerateExtendedReport(date string) (*NightAuditReportData, error) {
	return s.buildReport(date, true)
}

func (s *NightAuditService) buildReport(date string, includeRoomService bool) (*NightAuditReportData, error) {
	reportDate, nextDay, err := utils.ParseDayWindow(date)
	if err != nil {
		return nil, err
	}

	var (
		wg            sync.WaitGroup
		bookings      []models.Booking
		restOrders    []models.RestaurantOrder
		serviceOrders []models.RoomServiceOrder
		rooms         []models.Room
		bookingsErr   error
		roomsErr      error
	)

	// Fan out the independent reads and join before computing. Restaurant
	// and room-service fetches degrade to empty sets; bookings and rooms
	// are required.
	wg.Add(3)
	go func() {
		defer wg.Done()
		bookingsErr = s.DB.
			Preload("RoomRates").
			Where("(check_in_date >= ? AND check_in_date < ?)"+
				" OR (check_out_date >= ? AND check_out_date < ?)"+
				" OR (check_in_date < ? AND check_out_date > ?)",
				reportDate, nextDay, reportDate, nextDay, reportDate, reportDate).
			Find(&bookings).Error
	}()
	go func() {
		defer wg.Done()
		if err := s.DB.
			Where("created_at >= ? AND created_at < ?", reportDate, nextDay).
			Find(&restOrders).Error; err != nil {
			log.Printf("⚠️  night audit: failed to load restaurant orders, continuing without: %v", err)
			restOrders = nil
		}
	}()
	go func() {
		defer wg.Done()
		roomsErr = s.DB.Find(&rooms).Error
	}()
	if includeRoomService {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.DB.
				Where("created_at >= ? AND created_at < ?", reportDate, nextDay).
				Find(&serviceOrders).Error; err != nil {
				log.Printf("⚠️  night audit: failed to load room service orders, continuing without: %v", err)
				serviceOrders = nil
			}
		}()
	}
	wg.Wait()

	if bookingsErr != nil {
		return nil, fmt.Errorf("night audit: failed to load bookings: %w", bookingsErr)
	}
	if roomsErr != nil {
		return nil, fmt.Errorf("night audit: failed to load rooms: %w", roomsErr)
	}

	// Partition the day's bookings.
	var checkIns, checkOuts, occupied []models.Booking
	for _, b := range bookings {
		if !b.CheckInDate.Before(reportDate) && b.CheckInDate.Before(nextDay) {
			checkIns = append(checkIns, b)
		}
		if !b.CheckOutDate.Before(reportDate) && b.CheckOutDate.Before(nextDay) {
			checkOuts = append(checkOuts, b)
		}
		if b.Status == models.BookingStatusCheckedIn ||
			(!b.CheckInDate.After(reportDate) && b.CheckOutDate.After(reportDate)) {
			occupied = append(occupied, b)
		}
	}

	stayOvers := 0
	for _, b := range occupied {
		if b.CheckInDate.Before(reportDate) && b.CheckOutDate.After(nextDay) {
			stayOvers++
		}
	}

	// Revenue roll-ups.
	roomRevenue := 0.0
	for _, b := range bookings {
		if b.Status == models.BookingStatusCheckedIn || b.Status == models.BookingStatusCheckedOut {
			amount := b.TotalAmount
			if amount == 0 {
				amount = b.Rate
			}
			roomRevenue += amount
		}
	}

	restaurantRevenue := 0.0
	for _, o := range restOrders {
		restaurantRevenue += o.Amount
	}

	roomServiceRevenue := 0.0
	for _, o := range serviceOrders {
		roomServiceRevenue += o.TotalAmount
	}

	totalRevenue := roomRevenue + restaurantRevenue
	if includeRoomService {
		totalRevenue += roomServiceRevenue
	}

	totalRooms := len(rooms)
	occupiedCount := len(occupied)

	occupancyRate := 0.0
	if totalRooms > 0 {
		occupancyRate = float64(occupiedCount) / float64(totalRooms) * 100
	}
	adr := 0.0
	if occupiedCount > 0 {
		adr = roomRevenue / float64(occupiedCount)
	}
	revpar := 0.0
	if totalRooms > 0 {
		revpar = roomRevenue / float64(totalRooms)
	}

	revenue := RevenueSummary{
		RoomRevenue:       utils.Round2(roomRevenue),
		RestaurantRevenue: utils.Round2(restaurantRevenue),
		TotalRevenue:      utils.Round2(totalRevenue),
		ADR:               utils.Round2(adr),
		RevPAR:            utils.Round2(revpar),
	}
	if includeRoomService {
		rs := utils.Round2(roomServiceRevenue)
		revenue.RoomServiceRevenue = &rs
	}

	report := &NightAuditReportData{
		Date: reportDate.Format("2006-01-02"),
		Occupancy: OccupancySummary{
			TotalRooms:    totalRooms,
			OccupiedRooms: occupiedCount,
			VacantRooms:   totalRooms - occupiedCount,
			OccupancyRate: utils.Round2(occupancyRate),
		},
		GuestActivity: GuestActivitySummary{
			CheckIns:  len(checkIns),
			CheckOuts: len(checkOuts),
			StayOvers: stayOvers,
		},
		Revenue:          revenue,
		Bookings:         bookingLines(checkIns, includeRoomService),
		RestaurantOrders: restaurantOrderLines(restOrders),
	}
	if includeRoomService {
		report.RoomServiceOrders = roomServiceOrderLines(serviceOrders)
	}
	return report, nil
}

func bookingLines(checkIns []models.Booking, useStoredAmount bool) []ReportBookingLine {
	lines := make([]ReportBookingLine, 0, len(checkIns))
	for _, b := range checkIns {
		line := ReportBookingLine{
			GrcNo:       b.GrcNo,
			Name:        b.Name,
			RoomNumber:  b.RoomNumber,
			CheckInDate: b.CheckInDate,
		}
		if useStoredAmount {
			line.TotalAmount = b.TotalAmount
		} else {
			line.TotalAmount = DeriveBookingAmount(b)
			if b.ActualCheckInTime != nil {
				line.CheckInDate = *b.ActualCheckInTime
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func restaurantOrderLines(orders []models.RestaurantOrder) []ReportRestaurantOrderLine {
	lines := make([]ReportRestaurantOrderLine, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, ReportRestaurantOrderLine{
			OrderID:      fmt.Sprintf("%06d", o.ID),
			CustomerName: o.CustomerName,
			TableNo:      o.TableNo,
			Amount:       o.Amount,
			CreatedAt:    o.CreatedAt,
		})
	}
	return lines
}

func roomServiceOrderLines(orders []models.RoomServiceOrder) []ReportRoomServiceOrderLine {
	lines := make([]ReportRoomServiceOrderLine, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, ReportRoomServiceOrderLine{
			OrderID:     fmt.Sprintf("%06d", o.ID),
			RoomNumber:  o.RoomNumber,
			GuestName:   o.GuestName,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
		})
	}
	return lines
}

// DeriveBookingAmount reproduces the per-check-in amount derivation:
//
//	roomCost     = Σ customRate × days   (booking rate when no room rates)
//	extraBedCost = Σ extraBedCharge × days over extra-bed rooms
//	discount     = (roomCost + extraBedCost) × discountPercent/100
//	total        = round(afterDiscount + CGST + SGST)
//
// A zero result falls back to the booking rate. Days defaults to 1.
func DeriveBookingAmount(b models.Booking) float64 {
	days := float64(b.Days)
	if b.Days == 0 {
		days = 1
	}

	roomCost := b.Rate
	if len(b.RoomRates) > 0 {
		sum := 0.0
		for _, rr := range b.RoomRates {
			sum += rr.CustomRate
		}
		roomCost = sum * days
	}

	extraBedCost := 0.0
	for _, rr := range b.RoomRates {
		if rr.ExtraBed {
			extraBedCost += b.ExtraBedCharge * days
		}
	}

	subtotal := roomCost + extraBedCost
	discount := subtotal * (b.DiscountPercent / 100)
	afterDiscount := subtotal - discount
	cgst := afterDiscount * utils.RateOrDefault(b.CgstRate, utils.CGSTRate)
	sgst := afterDiscount * utils.RateOrDefault(b.SgstRate, utils.SGSTRate)

	total := math.Round(afterDiscount + cgst + sgst)
	if total == 0 {
		return b.Rate
	}
	return total
}
