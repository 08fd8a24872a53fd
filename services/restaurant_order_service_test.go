package services_test

import (
	"testing"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindActiveBookingForTable(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewRestaurantOrderService(db)

	createBooking(t, db, models.Booking{
		GrcNo: "GRC-1", Name: "Guest A", MobileNo: "9000000001",
		RoomNumber: "101, 102",
		Status:     models.BookingStatusCheckedIn, IsActive: true,
		CheckInDate: day(2025, time.March, 14), CheckOutDate: day(2025, time.March, 18),
	})
	createBooking(t, db, models.Booking{
		GrcNo: "GRC-2", Name: "Guest B",
		RoomNumber: "1101",
		Status:     models.BookingStatusBooked, IsActive: true,
		CheckInDate: day(2025, time.March, 14), CheckOutDate: day(2025, time.March, 18),
	})
	createBooking(t, db, models.Booking{
		GrcNo: "GRC-3", Name: "Gone Guest",
		RoomNumber: "103",
		Status:     models.BookingStatusCheckedOut, IsActive: false,
		CheckInDate: day(2025, time.March, 10), CheckOutDate: day(2025, time.March, 12),
	})

	booking, err := svc.FindActiveBookingForTable("102")
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, "GRC-1", booking.GrcNo)

	// "101" must not match the booking holding "1101".
	booking, err = svc.FindActiveBookingForTable("1101")
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, "GRC-2", booking.GrcNo)

	// Checked-out bookings never match.
	booking, err = svc.FindActiveBookingForTable("103")
	require.NoError(t, err)
	assert.Nil(t, booking)

	booking, err = svc.FindActiveBookingForTable("999")
	require.NoError(t, err)
	assert.Nil(t, booking)
}

func TestCreateOrder_LinksToOccupyingBooking(t *testing.T) {
	// GIVEN: an active booking holding room 101
	// WHEN: an order is created for table 101
	// THEN: the order carries the booking's guest details
	db := newTestDB(t)
	svc := services.NewRestaurantOrderService(db)

	booking := createBooking(t, db, models.Booking{
		GrcNo: "GRC-1", Name: "Guest A", MobileNo: "9000000001",
		RoomNumber: "101",
		Status:     models.BookingStatusCheckedIn, IsActive: true,
		CheckInDate: day(2025, time.March, 14), CheckOutDate: day(2025, time.March, 18),
	})

	order := models.RestaurantOrder{CustomerName: "Guest A", TableNo: "101", Amount: 450, Status: "Pending"}
	require.NoError(t, svc.CreateOrder(&order))

	require.NotNil(t, order.BookingID)
	assert.Equal(t, booking.ID, *order.BookingID)
	assert.Equal(t, "GRC-1", order.GrcNo)
	assert.Equal(t, "101", order.RoomNumber)
	assert.Equal(t, "Guest A", order.GuestName)
	assert.Equal(t, "9000000001", order.GuestPhone)
}

func TestCreateOrder_WalkInStaysUnlinked(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewRestaurantOrderService(db)

	order := models.RestaurantOrder{CustomerName: "Walk In", TableNo: "T7", Amount: 300, Status: "Pending"}
	require.NoError(t, svc.CreateOrder(&order))

	assert.Nil(t, order.BookingID)
	assert.Empty(t, order.GrcNo)
	assert.NotZero(t, order.ID)
}

func TestLinkUnlinkedOrders_Backfills(t *testing.T) {
	// GIVEN: an unlinked order for a room whose booking arrived later, plus
	// a walk-in order with no matching booking
	// WHEN: the backfill runs
	// THEN: one order gets linked and both were candidates
	db := newTestDB(t)
	svc := services.NewRestaurantOrderService(db)

	roomOrder := models.RestaurantOrder{CustomerName: "Early Diner", TableNo: "101", Amount: 450}
	require.NoError(t, db.Create(&roomOrder).Error)
	walkIn := models.RestaurantOrder{CustomerName: "Walk In", TableNo: "T7", Amount: 300}
	require.NoError(t, db.Create(&walkIn).Error)

	booking := createBooking(t, db, models.Booking{
		GrcNo: "GRC-1", Name: "Guest A", MobileNo: "9000000001",
		RoomNumber: "101",
		Status:     models.BookingStatusCheckedIn, IsActive: true,
		CheckInDate: day(2025, time.March, 14), CheckOutDate: day(2025, time.March, 18),
	})

	linked, total, err := svc.LinkUnlinkedOrders()
	require.NoError(t, err)
	assert.Equal(t, 1, linked)
	assert.Equal(t, 2, total)

	var reloaded models.RestaurantOrder
	require.NoError(t, db.First(&reloaded, roomOrder.ID).Error)
	require.NotNil(t, reloaded.BookingID)
	assert.Equal(t, booking.ID, *reloaded.BookingID)
	assert.Equal(t, "GRC-1", reloaded.GrcNo)
	assert.Equal(t, "Guest A", reloaded.GuestName)

	// Already-linked orders are not candidates on the next run.
	linked, total, err = svc.LinkUnlinkedOrders()
	require.NoError(t, err)
	assert.Equal(t, 0, linked)
	assert.Equal(t, 1, total, "the walk-in order remains an unlinked candidate")
}
