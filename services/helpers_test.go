package services_test

import (
	"testing"
	"time"

	"hotel-backoffice/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// newTestDB opens an in-memory SQLite database with the full schema. A single
// connection keeps every goroutine on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.Room{},
		&models.Booking{},
		&models.BookingRoomRate{},
		&models.AdvancePayment{},
		&models.RestaurantOrder{},
		&models.RoomServiceOrder{},
		&models.LaundryOrder{},
		&models.AuditLog{},
		&models.NightAuditReport{},
	))
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	cat := models.Category{Name: name}
	require.NoError(t, db.Create(&cat).Error)
	return &cat
}

func createRoom(t *testing.T, db *gorm.DB, categoryID *uint, roomNumber string, price float64) *models.Room {
	t.Helper()
	room := models.Room{
		CategoryID: categoryID,
		Title:      "Room " + roomNumber,
		RoomNumber: roomNumber,
		Status:     "available",
		Price:      price,
	}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func createBooking(t *testing.T, db *gorm.DB, b models.Booking) *models.Booking {
	t.Helper()
	require.NoError(t, db.Create(&b).Error)
	return &b
}
