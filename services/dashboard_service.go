// services/dashboard_service.go
package services

import (
	"fmt"
	"sync"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"gorm.io/gorm"
)

// DashboardService aggregates booking and order counters for the back-office
// dashboard. All numbers come from one grouped query per collection.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type PaymentBreakdown struct {
	Cash  int `json:"cash"`
	UPI   int `json:"upi"`
	Other int `json:"other"`
}

type DashboardStats struct {
	TotalBookings     int              `json:"totalBookings"`
	ActiveBookings    int              `json:"activeBookings"`
	CancelledBookings int              `json:"cancelledBookings"`
	Payments          PaymentBreakdown `json:"payments"`
	TotalRevenue      float64          `json:"totalRevenue"`
	CashRevenue       float64          `json:"cashRevenue"`
	OnlineRevenue     float64          `json:"onlineRevenue"`
	LaundryOrders     int              `json:"laundryOrders"`
	RestaurantOrders  int              `json:"restaurantOrders"`
	TodayCheckIns     int              `json:"todayCheckIns"`
	TodayCheckOuts    int              `json:"todayCheckOuts"`
}

type DashboardResult struct {
	Stats      DashboardStats `json:"stats"`
	TotalRooms int            `json:"totalRooms"`
}

type dateWindow struct {
	start        *time.Time
	end          *time.Time
	endInclusive bool
}

// resolveDateWindow maps the dashboard filter keyword onto a created_at
// window. An unknown or empty filter means no restriction.
func resolveDateWindow(filter, startDate, endDate string, now time.Time) dateWindow {
	switch filter {
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := start.Add(24*time.Hour - time.Millisecond)
		return dateWindow{start: &start, end: &end, endInclusive: true}
	case "weekly":
		start := now.AddDate(0, 0, -int(now.Weekday()))
		return dateWindow{start: &start}
	case "monthly":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)
		return dateWindow{start: &start, end: &end}
	case "yearly":
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(1, 0, 0)
		return dateWindow{start: &start, end: &end}
	case "range":
		if startDate == "" || endDate == "" {
			return dateWindow{}
		}
		start, _, err1 := utils.ParseDayWindow(startDate)
		end, _, err2 := utils.ParseDayWindow(endDate)
		if err1 != nil || err2 != nil {
			return dateWindow{}
		}
		return dateWindow{start: &start, end: &end, endInclusive: true}
	}
	return dateWindow{}
}

func (w dateWindow) apply(q *gorm.DB) *gorm.DB {
	if w.start != nil {
		q = q.Where("created_at >= ?", *w.start)
	}
	if w.end != nil {
		if w.endInclusive {
			q = q.Where("created_at <= ?", *w.end)
		} else {
			q = q.Where("created_at < ?", *w.end)
		}
	}
	return q
}

func (s *DashboardService) GetStats(filter, startDate, endDate string) (*DashboardResult, error) {
	now := time.Now().UTC()
	window := resolveDateWindow(filter, startDate, endDate, now)

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Millisecond)

	var (
		wg         sync.WaitGroup
		row        dashboardRow
		roomCount  int64
		laundry    int64
		restaurant int64
		bookingErr error
		roomErr    error
		laundryErr error
		restErr    error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		bookingErr = window.apply(s.DB.Model(&models.Booking{})).
			Select(`COUNT(*) AS total_bookings,
SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS active_bookings,
SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS cancelled_bookings,
SUM(CASE WHEN payment_mode = 'Cash' THEN 1 ELSE 0 END) AS cash_payments,
SUM(CASE WHEN payment_mode = 'UPI' THEN 1 ELSE 0 END) AS upi_payments,
COALESCE(SUM(rate), 0) AS total_revenue,
COALESCE(SUM(CASE WHEN payment_mode = 'Cash' THEN rate ELSE 0 END), 0) AS cash_revenue,
COALESCE(SUM(CASE WHEN payment_mode = 'UPI' THEN rate ELSE 0 END), 0) AS online_revenue,
SUM(CASE WHEN status = ? AND check_in_date >= ? AND check_in_date <= ? THEN 1 ELSE 0 END) AS today_check_ins,
SUM(CASE WHEN status = ? AND check_out_date >= ? AND check_out_date <= ? THEN 1 ELSE 0 END) AS today_check_outs`,
				models.BookingStatusCheckedIn,
				models.BookingStatusCancelled,
				models.BookingStatusCheckedIn, todayStart, todayEnd,
				models.BookingStatusCheckedOut, todayStart, todayEnd,
			).
			Scan(&row).Error
	}()
	go func() {
		defer wg.Done()
		roomErr = s.DB.Model(&models.Room{}).Count(&roomCount).Error
	}()
	go func() {
		defer wg.Done()
		laundryErr = s.DB.Model(&models.LaundryOrder{}).Count(&laundry).Error
	}()
	go func() {
		defer wg.Done()
		restErr = s.DB.Model(&models.RestaurantOrder{}).Count(&restaurant).Error
	}()
	wg.Wait()

	for _, err := range []error{bookingErr, roomErr, laundryErr, restErr} {
		if err != nil {
			return nil, fmt.Errorf("dashboard: failed to aggregate stats: %w", err)
		}
	}

	return &DashboardResult{
		Stats: DashboardStats{
			TotalBookings:     row.TotalBookings,
			ActiveBookings:    row.ActiveBookings,
			CancelledBookings: row.CancelledBookings,
			Payments: PaymentBreakdown{
				Cash:  row.CashPayments,
				UPI:   row.UpiPayments,
				Other: row.TotalBookings - row.CashPayments - row.UpiPayments,
			},
			TotalRevenue:     row.TotalRevenue,
			CashRevenue:      row.CashRevenue,
			OnlineRevenue:    row.OnlineRevenue,
			LaundryOrders:    int(laundry),
			RestaurantOrders: int(restaurant),
			TodayCheckIns:    row.TodayCheckIns,
			TodayCheckOuts:   row.TodayCheckOuts,
		},
		TotalRooms: int(roomCount),
	}, nil
}

type dashboardRow struct {
	TotalBookings     int
	ActiveBookings    int
	CancelledBookings int
	CashPayments      int
	UpiPayments       int
	TotalRevenue      float64
	CashRevenue       float64
	OnlineRevenue     float64
	TodayCheckIns     int
	TodayCheckOuts    int
}
