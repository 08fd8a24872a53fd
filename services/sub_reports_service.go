// services/sub_reports_service.go
package services

import (
	"fmt"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"gorm.io/gorm"
)

// SubReportsService produces the smaller front-desk reports that accompany
// the night audit: house status, cashier MOP totals, revenue analysis, due
// balances and the 10-day forecast.
type SubReportsService struct {
	DB *gorm.DB
}

func NewSubReportsService(db *gorm.DB) *SubReportsService {
	return &SubReportsService{DB: db}
}

type HouseStatusLine struct {
	RoomNumber string     `json:"roomNumber"`
	RoomType   string     `json:"roomType"`
	Status     string     `json:"status"`
	GuestName  *string    `json:"guestName"`
	GrcNo      *string    `json:"grcNo"`
	CheckIn    *time.Time `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
}

type MOPTotal struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type RevenueAnalysis struct {
	RoomRevenue   float64 `json:"roomRevenue"`
	TotalBookings int     `json:"totalBookings"`
	AverageRate   float64 `json:"averageRate"`
}

type DueBalanceLine struct {
	GrcNo       string  `json:"grcNo"`
	GuestName   string  `json:"guestName"`
	RoomNumber  string  `json:"roomNumber"`
	TotalAmount float64 `json:"totalAmount"`
	AdvancePaid float64 `json:"advancePaid"`
	DueAmount   float64 `json:"dueAmount"`
}

type ForecastDay struct {
	Date     time.Time `json:"date"`
	Bookings int       `json:"bookings"`
	Revenue  float64   `json:"revenue"`
}

// HouseStatus reports, per room, whether a booking occupies it on the given
// date. Occupancy matches a booking whose stay covers the date, or any
// checked-in booking, compared against the room's full number field.
func (s *SubReportsService) HouseStatus(date string) ([]HouseStatusLine, error) {
	reportDate, _, err := utils.ParseDayWindow(date)
	if err != nil {
		return nil, err
	}

	var rooms []models.Room
	if err := s.DB.Preload("Category").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("house status: failed to load rooms: %w", err)
	}

	var bookings []models.Booking
	if err := s.DB.
		Where("(check_in_date <= ? AND check_out_date > ?) OR status = ?",
			reportDate, reportDate, models.BookingStatusCheckedIn).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("house status: failed to load bookings: %w", err)
	}

	lines := make([]HouseStatusLine, 0, len(rooms))
	for _, room := range rooms {
		line := HouseStatusLine{
			RoomNumber: room.RoomNumber,
			RoomType:   "Standard",
			Status:     "Vacant",
		}
		if room.Category.Name != "" {
			line.RoomType = room.Category.Name
		}
		for i := range bookings {
			if bookings[i].RoomNumber == room.RoomNumber {
				b := bookings[i]
				line.Status = "Occupied"
				line.GuestName = &b.Name
				line.GrcNo = &b.GrcNo
				line.CheckIn = &b.CheckInDate
				line.CheckOut = &b.CheckOutDate
				break
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// MOPWiseCashierReport totals the day's advance payments grouped by mode of
// payment, over bookings created within the day window.
func (s *SubReportsService) MOPWiseCashierReport(date string) (map[string]*MOPTotal, error) {
	reportDate, nextDay, err := utils.ParseDayWindow(date)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := s.DB.
		Preload("AdvancePayments").
		Where("created_at >= ? AND created_at < ?", reportDate, nextDay).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("mop report: failed to load bookings: %w", err)
	}

	report := map[string]*MOPTotal{}
	for _, b := range bookings {
		for _, p := range b.AdvancePayments {
			mode := p.PaymentMode
			if mode == "" {
				mode = "Cash"
			}
			if report[mode] == nil {
				report[mode] = &MOPTotal{}
			}
			report[mode].Count++
			report[mode].Amount += p.Amount
		}
	}
	return report, nil
}

// RevenueAnalysisForDate sums booking rates over the day's arrivals.
func (s *SubReportsService) RevenueAnalysisForDate(date string) (*RevenueAnalysis, error) {
	reportDate, nextDay, err := utils.ParseDayWindow(date)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := s.DB.
		Where("check_in_date >= ? AND check_in_date < ?", reportDate, nextDay).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("revenue analysis: failed to load bookings: %w", err)
	}

	total := 0.0
	for _, b := range bookings {
		total += b.Rate
	}
	avg := 0.0
	if len(bookings) > 0 {
		avg = total / float64(len(bookings))
	}
	return &RevenueAnalysis{
		RoomRevenue:   total,
		TotalBookings: len(bookings),
		AverageRate:   avg,
	}, nil
}

// InHouseGuestDueBalance lists checked-in guests whose payment is still
// pending or partial, with the amount outstanding after advances.
func (s *SubReportsService) InHouseGuestDueBalance() ([]DueBalanceLine, error) {
	var bookings []models.Booking
	if err := s.DB.
		Preload("AdvancePayments").
		Where("status = ? AND payment_status IN ?",
			models.BookingStatusCheckedIn, []string{"Pending", "Partial"}).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("due balance: failed to load bookings: %w", err)
	}

	lines := make([]DueBalanceLine, 0, len(bookings))
	for _, b := range bookings {
		advance := 0.0
		for _, p := range b.AdvancePayments {
			advance += p.Amount
		}
		lines = append(lines, DueBalanceLine{
			GrcNo:       b.GrcNo,
			GuestName:   b.Name,
			RoomNumber:  b.RoomNumber,
			TotalAmount: b.Rate,
			AdvancePaid: advance,
			DueAmount:   b.Rate - advance,
		})
	}
	return lines, nil
}

// TenDayForecast buckets upcoming arrivals and their rate revenue per day
// for the ten days starting at the given date.
func (s *SubReportsService) TenDayForecast(date string) ([]ForecastDay, error) {
	startDate, _, err := utils.ParseDayWindow(date)
	if err != nil {
		return nil, err
	}
	endDate := startDate.AddDate(0, 0, 10)

	var bookings []models.Booking
	if err := s.DB.
		Where("(check_in_date >= ? AND check_in_date < ?) OR (check_out_date >= ? AND check_out_date < ?)",
			startDate, endDate, startDate, endDate).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("forecast: failed to load bookings: %w", err)
	}

	forecast := make([]ForecastDay, 0, 10)
	for i := 0; i < 10; i++ {
		dayStart := startDate.AddDate(0, 0, i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		day := ForecastDay{Date: dayStart}
		for _, b := range bookings {
			if !b.CheckInDate.Before(dayStart) && b.CheckInDate.Before(dayEnd) {
				day.Bookings++
				day.Revenue += b.Rate
			}
		}
		forecast = append(forecast, day)
	}
	return forecast, nil
}
