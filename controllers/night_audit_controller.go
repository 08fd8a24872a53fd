// controllers/night_audit_controller.go
package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NightAuditController struct {
	AuditSvc    *services.NightAuditService
	ReportStore *services.ReportStoreService
	DB          *gorm.DB
}

func NewNightAuditController(auditSvc *services.NightAuditService, store *services.ReportStoreService, db *gorm.DB) *NightAuditController {
	return &NightAuditController{AuditSvc: auditSvc, ReportStore: store, DB: db}
}

// ----------------------------------------------------
// 1. Generate report (GET /api/night-audit/report/:date)
// ----------------------------------------------------

func (ctrl *NightAuditController) GenerateReport(c *gin.Context) {
	date := c.Param("date")

	report, err := ctrl.AuditSvc.GenerateReport(date)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format", "error": err.Error()})
			return
		}
		log.Printf("❌ Error generating night audit report for %s: %v", date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating report", "error": err.Error()})
		return
	}

	utils.RecordAuditLog(ctrl.DB, "CREATE", "NIGHT_AUDIT", "REPORT_"+date, "", "",
		nil, gin.H{"reportDate": date, "summary": report}, c)

	c.JSON(http.StatusOK, report)
}

// ----------------------------------------------------
// 2. Extended report with room service (GET /api/reports/night-audit/:date)
// ----------------------------------------------------

func (ctrl *NightAuditController) GenerateExtendedReport(c *gin.Context) {
	date := c.Param("date")

	report, err := ctrl.AuditSvc.GenerateExtendedReport(date)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format", "error": err.Error()})
			return
		}
		log.Printf("❌ Error generating extended night audit report for %s: %v", date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating report", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ----------------------------------------------------
// 3. Generate + persist (POST /api/night-audit/report/:date)
// ----------------------------------------------------

func (ctrl *NightAuditController) SaveReport(c *gin.Context) {
	date := c.Param("date")

	report, err := ctrl.AuditSvc.GenerateReport(date)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format", "error": err.Error()})
			return
		}
		log.Printf("❌ Error generating night audit report for %s: %v", date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating report", "error": err.Error()})
		return
	}

	record, err := ctrl.ReportStore.SaveReport(report, "SYSTEM")
	if err != nil {
		if errors.Is(err, services.ErrReportExists) {
			c.JSON(http.StatusConflict, gin.H{
				"message": fmt.Sprintf("A night audit report for %s already exists", date),
			})
			return
		}
		log.Printf("❌ Error saving night audit report for %s: %v", date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving report", "error": err.Error()})
		return
	}

	utils.RecordAuditLog(ctrl.DB, "CREATE", "NIGHT_AUDIT", "REPORT_"+date, "", "",
		nil, gin.H{"reportDate": date, "reportId": record.ID}, c)

	c.JSON(http.StatusCreated, record)
}

// ----------------------------------------------------
// 4. Saved reports (GET/DELETE /api/night-audit/reports...)
// ----------------------------------------------------

func (ctrl *NightAuditController) ListReports(c *gin.Context) {
	reports, err := ctrl.ReportStore.ListReports()
	if err != nil {
		log.Printf("❌ Error listing night audit reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error listing reports", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (ctrl *NightAuditController) GetReportByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid report id"})
		return
	}

	report, err := ctrl.ReportStore.GetReportByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error loading report", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (ctrl *NightAuditController) DeleteReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid report id"})
		return
	}

	if err := ctrl.ReportStore.DeleteReport(uint(id)); err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting report", "error": err.Error()})
		return
	}

	utils.RecordAuditLog(ctrl.DB, "DELETE", "NIGHT_AUDIT", c.Param("id"), "", "", nil, nil, c)

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted"})
}
