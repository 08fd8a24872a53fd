package services_test

import (
	"testing"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats_AggregatesCounters(t *testing.T) {
	// GIVEN: bookings across statuses and payment modes, plus rooms and
	// laundry/restaurant orders
	// WHEN: stats are requested without a date filter
	// THEN: every counter reflects the whole data set
	db := newTestDB(t)
	svc := services.NewDashboardService(db)

	cat := createCategory(t, db, "Standard")
	createRoom(t, db, &cat.ID, "101", 1500)
	createRoom(t, db, &cat.ID, "102", 1500)
	createRoom(t, db, &cat.ID, "103", 1500)

	now := time.Now().UTC()

	createBooking(t, db, models.Booking{
		GrcNo: "GRC-1", RoomNumber: "101",
		Status: models.BookingStatusCheckedIn, PaymentMode: "Cash", Rate: 1500,
		CheckInDate: now, CheckOutDate: now.AddDate(0, 0, 2),
	})
	createBooking(t, db, models.Booking{
		GrcNo: "GRC-2", RoomNumber: "102",
		Status: models.BookingStatusCheckedOut, PaymentMode: "UPI", Rate: 2500,
		CheckInDate: now.AddDate(0, 0, -2), CheckOutDate: now,
	})
	createBooking(t, db, models.Booking{
		GrcNo: "GRC-3", RoomNumber: "103",
		Status: models.BookingStatusCancelled, PaymentMode: "Card", Rate: 2000,
		CheckInDate: now.AddDate(0, 0, 5), CheckOutDate: now.AddDate(0, 0, 7),
	})

	require.NoError(t, db.Create(&models.LaundryOrder{RoomNumber: "101", TotalAmount: 120}).Error)
	require.NoError(t, db.Create(&models.RestaurantOrder{TableNo: "T1", Amount: 450}).Error)
	require.NoError(t, db.Create(&models.RestaurantOrder{TableNo: "T2", Amount: 300}).Error)

	result, err := svc.GetStats("", "", "")
	require.NoError(t, err)

	stats := result.Stats
	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 1, stats.ActiveBookings)
	assert.Equal(t, 1, stats.CancelledBookings)

	assert.Equal(t, 1, stats.Payments.Cash)
	assert.Equal(t, 1, stats.Payments.UPI)
	assert.Equal(t, 1, stats.Payments.Other)

	assert.Equal(t, 6000.0, stats.TotalRevenue)
	assert.Equal(t, 1500.0, stats.CashRevenue)
	assert.Equal(t, 2500.0, stats.OnlineRevenue)

	assert.Equal(t, 1, stats.LaundryOrders)
	assert.Equal(t, 2, stats.RestaurantOrders)

	assert.Equal(t, 1, stats.TodayCheckIns)
	assert.Equal(t, 1, stats.TodayCheckOuts)

	assert.Equal(t, 3, result.TotalRooms)
}

func TestGetStats_TodayFilterExcludesOldBookings(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDashboardService(db)

	now := time.Now().UTC()

	fresh := models.Booking{
		GrcNo: "GRC-1", RoomNumber: "101",
		Status: models.BookingStatusCheckedIn, PaymentMode: "Cash", Rate: 1500,
		CheckInDate: now, CheckOutDate: now.AddDate(0, 0, 1),
	}
	require.NoError(t, db.Create(&fresh).Error)

	old := models.Booking{
		GrcNo: "GRC-2", RoomNumber: "102",
		Status: models.BookingStatusCheckedIn, PaymentMode: "UPI", Rate: 9000,
		CheckInDate: now.AddDate(0, 0, -30), CheckOutDate: now.AddDate(0, 0, -28),
	}
	old.CreatedAt = now.AddDate(0, 0, -30)
	require.NoError(t, db.Create(&old).Error)

	result, err := svc.GetStats("today", "", "")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.TotalBookings)
	assert.Equal(t, 1500.0, result.Stats.TotalRevenue)
}

func TestGetStats_RangeFilter(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDashboardService(db)

	inRange := models.Booking{
		GrcNo: "GRC-1", RoomNumber: "101",
		Status: models.BookingStatusBooked, PaymentMode: "Cash", Rate: 1500,
		CheckInDate: day(2025, time.March, 10), CheckOutDate: day(2025, time.March, 12),
	}
	inRange.CreatedAt = day(2025, time.March, 10).Add(9 * time.Hour)
	require.NoError(t, db.Create(&inRange).Error)

	outOfRange := models.Booking{
		GrcNo: "GRC-2", RoomNumber: "102",
		Status: models.BookingStatusBooked, PaymentMode: "Cash", Rate: 8000,
		CheckInDate: day(2025, time.April, 1), CheckOutDate: day(2025, time.April, 3),
	}
	outOfRange.CreatedAt = day(2025, time.April, 1)
	require.NoError(t, db.Create(&outOfRange).Error)

	result, err := svc.GetStats("range", "2025-03-09", "2025-03-11")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.TotalBookings)
	assert.Equal(t, 1500.0, result.Stats.TotalRevenue)
}

func TestGetStats_BadRangeFallsBackToUnfiltered(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDashboardService(db)

	b := models.Booking{
		GrcNo: "GRC-1", RoomNumber: "101",
		Status: models.BookingStatusBooked, PaymentMode: "Cash", Rate: 1500,
		CheckInDate: day(2025, time.March, 10), CheckOutDate: day(2025, time.March, 12),
	}
	b.CreatedAt = day(2025, time.March, 10)
	require.NoError(t, db.Create(&b).Error)

	result, err := svc.GetStats("range", "bogus", "2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.TotalBookings)
}
