package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog is an append-only trail entry written fire-and-forget; a failed
// write never fails the request that produced it.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action   string `gorm:"size:32" json:"action"`
	Module   string `gorm:"size:64;index" json:"module"`
	RecordID string `gorm:"column:record_id;size:128;index" json:"recordId"`

	UserID   string `gorm:"column:user_id;size:64" json:"userId"`
	UserRole string `gorm:"column:user_role;size:64" json:"userRole"`

	OldData datatypes.JSON `gorm:"column:old_data" json:"oldData,omitempty"`
	NewData datatypes.JSON `gorm:"column:new_data" json:"newData,omitempty"`

	IPAddress string `gorm:"column:ip_address;size:64" json:"ipAddress,omitempty"`
	UserAgent string `gorm:"column:user_agent;size:512" json:"userAgent,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
