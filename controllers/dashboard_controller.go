// controllers/dashboard_controller.go
package controllers

import (
	"log"
	"net/http"

	"hotel-backoffice/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardSvc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{DashboardSvc: svc}
}

// GetStats (GET /api/dashboard/stats?filter=today|weekly|monthly|yearly|range)
func (ctrl *DashboardController) GetStats(c *gin.Context) {
	result, err := ctrl.DashboardSvc.GetStats(
		c.Query("filter"),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		log.Printf("❌ Dashboard stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"stats":      result.Stats,
		"totalRooms": result.TotalRooms,
	})
}
