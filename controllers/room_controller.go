// controllers/room_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewRoomController(svc *services.AvailabilityService) *RoomController {
	return &RoomController{AvailabilitySvc: svc}
}

// ----------------------------------------------------
// 1. Available rooms (GET /api/rooms/available)
// ----------------------------------------------------

func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	checkInDate := strings.TrimSpace(c.Query("checkInDate"))
	checkOutDate := strings.TrimSpace(c.Query("checkOutDate"))
	categoryID := strings.TrimSpace(c.Query("categoryId"))

	if checkInDate == "" || checkOutDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "checkInDate and checkOutDate are required")
		return
	}

	result, err := ctrl.AvailabilitySvc.FindAvailableRooms(checkInDate, checkOutDate, categoryID)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDate) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date format")
			return
		}
		log.Printf("❌ GetAvailableRooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"availableRooms": result.AvailableRooms,
		"totalCount":     result.TotalCount,
	})
}

// ----------------------------------------------------
// 2. Rooms by category with booking status (GET /api/rooms/category/:categoryId)
// ----------------------------------------------------

func (ctrl *RoomController) GetRoomsByCategory(c *gin.Context) {
	categoryID := c.Param("categoryId")

	rooms, err := ctrl.AvailabilitySvc.RoomsByCategory(categoryID)
	if err != nil {
		log.Printf("❌ GetRoomsByCategory failed for category %s: %v", categoryID, err)
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rooms": rooms})
}
