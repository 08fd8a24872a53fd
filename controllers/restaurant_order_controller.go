// controllers/restaurant_order_controller.go
package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRestaurantOrderRequest struct {
	CustomerName string  `json:"customerName"`
	TableNo      string  `json:"tableNo" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	Status       string  `json:"status"`
}

type RestaurantOrderController struct {
	OrderSvc *services.RestaurantOrderService
	DB       *gorm.DB
}

func NewRestaurantOrderController(svc *services.RestaurantOrderService, db *gorm.DB) *RestaurantOrderController {
	return &RestaurantOrderController{OrderSvc: svc, DB: db}
}

// CreateOrder (POST /api/restaurant-orders). When tableNo matches a room of
// an active booking, the order is linked to that booking at creation time.
func (ctrl *RestaurantOrderController) CreateOrder(c *gin.Context) {
	var payload CreateRestaurantOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tableNo and amount are required", "details": err.Error()})
		return
	}

	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = "Pending"
	}

	order := models.RestaurantOrder{
		CustomerName: strings.TrimSpace(payload.CustomerName),
		TableNo:      strings.TrimSpace(payload.TableNo),
		Amount:       payload.Amount,
		Status:       status,
	}

	if err := ctrl.OrderSvc.CreateOrder(&order); err != nil {
		log.Printf("❌ CreateOrder failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.RecordAuditLog(ctrl.DB, "CREATE", "RESTAURANT_ORDER",
		strconv.FormatUint(uint64(order.ID), 10), "", "", nil, order, c)

	c.JSON(http.StatusCreated, order)
}

// LinkOrdersToBookings (POST /api/restaurant-orders/link) backfills booking
// linkage for orders created before their booking.
func (ctrl *RestaurantOrderController) LinkOrdersToBookings(c *gin.Context) {
	linked, total, err := ctrl.OrderSvc.LinkUnlinkedOrders()
	if err != nil {
		log.Printf("❌ LinkOrdersToBookings failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Linked " + strconv.Itoa(linked) + " restaurant orders to bookings",
		"linkedCount":   linked,
		"totalUnlinked": total,
	})
}
