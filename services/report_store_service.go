// services/report_store_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-backoffice/models"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReportStoreService persists generated night-audit reports. One report per
// calendar date; the unique index on date enforces it.
type ReportStoreService struct {
	DB *gorm.DB
}

func NewReportStoreService(db *gorm.DB) *ReportStoreService {
	return &ReportStoreService{DB: db}
}

func (s *ReportStoreService) SaveReport(data *NightAuditReportData, generatedBy string) (*models.NightAuditReport, error) {
	date, err := time.ParseInLocation("2006-01-02", data.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("report store: bad report date %q: %w", data.Date, err)
	}

	record := models.NightAuditReport{
		Date:             date,
		Occupancy:        mustJSON(data.Occupancy),
		GuestActivity:    mustJSON(data.GuestActivity),
		Revenue:          mustJSON(data.Revenue),
		Bookings:         mustJSON(data.Bookings),
		RestaurantOrders: mustJSON(data.RestaurantOrders),
		GeneratedBy:      generatedBy,
	}

	if err := s.DB.Create(&record).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrReportExists
		}
		return nil, fmt.Errorf("report store: failed to save report: %w", err)
	}
	return &record, nil
}

func (s *ReportStoreService) ListReports() ([]models.NightAuditReport, error) {
	var reports []models.NightAuditReport
	if err := s.DB.Order("date DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("report store: failed to list reports: %w", err)
	}
	return reports, nil
}

func (s *ReportStoreService) GetReportByID(id uint) (*models.NightAuditReport, error) {
	var report models.NightAuditReport
	if err := s.DB.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("report store: failed to load report %d: %w", id, err)
	}
	return &report, nil
}

func (s *ReportStoreService) DeleteReport(id uint) error {
	result := s.DB.Delete(&models.NightAuditReport{}, id)
	if result.Error != nil {
		return fmt.Errorf("report store: failed to delete report %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

// isDuplicateKeyErr covers MySQL error 1062 plus the driver-agnostic
// message checks used elsewhere in the codebase (SQLite in tests).
func isDuplicateKeyErr(err error) bool {
	var mysqlErr *mysqldrv.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

func mustJSON(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(raw)
}
