// controllers/sub_reports_controller.go
package controllers

import (
	"errors"
	"net/http"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type SubReportsController struct {
	SubReportsSvc *services.SubReportsService
}

func NewSubReportsController(svc *services.SubReportsService) *SubReportsController {
	return &SubReportsController{SubReportsSvc: svc}
}

func subReportError(c *gin.Context, what string, err error) {
	if errors.Is(err, utils.ErrInvalidDate) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format", "error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating " + what, "error": err.Error()})
}

func (ctrl *SubReportsController) GetHouseStatus(c *gin.Context) {
	lines, err := ctrl.SubReportsSvc.HouseStatus(c.Param("date"))
	if err != nil {
		subReportError(c, "house status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"houseStatus": lines})
}

func (ctrl *SubReportsController) GetMOPWiseCashierReport(c *gin.Context) {
	report, err := ctrl.SubReportsSvc.MOPWiseCashierReport(c.Param("date"))
	if err != nil {
		subReportError(c, "MOP report", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mopReport": report})
}

func (ctrl *SubReportsController) GetRevenueAnalysis(c *gin.Context) {
	analysis, err := ctrl.SubReportsSvc.RevenueAnalysisForDate(c.Param("date"))
	if err != nil {
		subReportError(c, "revenue analysis", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenueAnalysis": analysis})
}

func (ctrl *SubReportsController) GetInHouseGuestDueBalance(c *gin.Context) {
	balances, err := ctrl.SubReportsSvc.InHouseGuestDueBalance()
	if err != nil {
		subReportError(c, "due balance report", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dueBalances": balances})
}

func (ctrl *SubReportsController) GetTenDaysForecast(c *gin.Context) {
	forecast, err := ctrl.SubReportsSvc.TenDayForecast(c.Param("date"))
	if err != nil {
		subReportError(c, "forecast", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"forecast": forecast})
}
