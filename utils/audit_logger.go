package utils

import (
	"encoding/json"
	"log"

	"hotel-backoffice/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecordAuditLog writes an audit-trail entry without blocking the request.
// Request metadata is captured before the goroutine starts; the gin context
// must not be touched after the handler returns.
func RecordAuditLog(db *gorm.DB, action, module, recordID, userID, userRole string, oldData, newData interface{}, c *gin.Context) {
	if userID == "" {
		userID = "SYSTEM"
	}
	if userRole == "" {
		userRole = "SYSTEM"
	}

	var ip, ua string
	if c != nil {
		ip = c.ClientIP()
		ua = c.Request.UserAgent()
	}

	entry := models.AuditLog{
		Action:    action,
		Module:    module,
		RecordID:  recordID,
		UserID:    userID,
		UserRole:  userRole,
		OldData:   marshalAuditData(oldData),
		NewData:   marshalAuditData(newData),
		IPAddress: ip,
		UserAgent: ua,
	}

	go func() {
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("❌ Audit log creation failed for %s %s: %v", module, action, err)
			return
		}
		log.Printf("✅ Audit log created: %s for %s %s", action, module, recordID)
	}()
}

func marshalAuditData(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
