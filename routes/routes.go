package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-backoffice/controllers"
	"hotel-backoffice/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the HTTP surface.
func SetupRouter(
	rc *controllers.RoomController,
	nac *controllers.NightAuditController,
	src *controllers.SubReportsController,
	dc *controllers.DashboardController,
	roc *controllers.RestaurantOrderController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("/available", rc.GetAvailableRooms)
			rooms.GET("/category/:categoryId", rc.GetRoomsByCategory)
		}

		nightAudit := api.Group("/night-audit")
		{
			nightAudit.GET("/report/:date", nac.GenerateReport)
			nightAudit.POST("/report/:date", nac.SaveReport)

			// saved snapshots
			nightAudit.GET("/reports", nac.ListReports)
			nightAudit.GET("/reports/:id", nac.GetReportByID)
			nightAudit.DELETE("/reports/:id", nac.DeleteReport)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/night-audit/:date", nac.GenerateExtendedReport)
		}

		subReports := api.Group("/sub-reports")
		{
			subReports.GET("/house-status/:date", src.GetHouseStatus)
			subReports.GET("/mop-cashier/:date", src.GetMOPWiseCashierReport)
			subReports.GET("/revenue-analysis/:date", src.GetRevenueAnalysis)
			subReports.GET("/due-balance", src.GetInHouseGuestDueBalance)
			subReports.GET("/forecast/:date", src.GetTenDaysForecast)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dc.GetStats)
		}

		restaurantOrders := api.Group("/restaurant-orders")
		{
			restaurantOrders.POST("", roc.CreateOrder)
			restaurantOrders.POST("/link", roc.LinkOrdersToBookings)
		}
	}

	return r
}
