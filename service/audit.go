package service

import (
	"encoding/json"
	"log"

	"staffmis_backend/model"

	"gorm.io/gorm"
)

// Audit action types.
const (
	ActionAttendanceSubmit = "ATTENDANCE_SUBMIT"
	ActionLeaveApplied     = "LEAVE_APPLIED"
	ActionLeaveApproved    = "LEAVE_APPROVED"
	ActionLeaveRejected    = "LEAVE_REJECTED"
	ActionSubAdminCreate   = "SUB_ADMIN_CREATE"
	ActionSubAdminDelete   = "SUB_ADMIN_DELETE"
	ActionStaffCreate      = "STAFF_CREATE"
	ActionStaffDelete      = "STAFF_DELETE"
)

// LogAction appends an audit row. The audit log is best effort: a failed
// write is logged and swallowed so it never blocks the parent operation.
func LogAction(db *gorm.DB, userID uint, actionType, entityType string, entityID uint, meta map[string]interface{}) {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		log.Println("audit: marshal metadata:", err)
		metaJSON = []byte("{}")
	}

	entry := model.AuditLog{
		UserID:     userID,
		ActionType: actionType,
		EntityType: entityType,
		EntityID:   entityID,
		MetaJSON:   metaJSON,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("audit: write failed:", err)
	}
}
