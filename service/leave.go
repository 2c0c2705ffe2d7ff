package service

import (
	"time"

	"staffmis_backend/model"

	"gorm.io/gorm"
)

// LeaveService handles the apply/approve/reject workflow. PENDING is the
// only state a decision can move away from.
type LeaveService struct {
	DB *gorm.DB
}

// Apply files a new PENDING leave for the staff member.
func (s *LeaveService) Apply(userID uint, leaveType string, fromDate, toDate time.Time, reason string) (*model.Leave, error) {
	if leaveType != model.LeavePaid && leaveType != model.LeaveUnpaid {
		return nil, &ValidationError{Msg: "leave type must be PAID or UNPAID"}
	}
	if toDate.Before(fromDate) {
		return nil, &ValidationError{Msg: "to date must not be before from date"}
	}

	var staff model.StaffProfile
	if err := s.DB.Where("user_id = ?", userID).First(&staff).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	leave := model.Leave{
		StaffID:  staff.ID,
		Type:     leaveType,
		FromDate: fromDate,
		ToDate:   toDate,
		Reason:   reason,
		Status:   model.LeavePending,
	}
	if err := s.DB.Create(&leave).Error; err != nil {
		return nil, err
	}

	LogAction(s.DB, userID, ActionLeaveApplied, "Leave", leave.ID, map[string]interface{}{
		"type": leaveType,
		"from": fromDate.Format("2006-01-02"),
		"to":   toDate.Format("2006-01-02"),
	})

	return &leave, nil
}

// Decide approves or rejects a PENDING leave. The status change is a
// conditional update, so a leave transitions exactly once no matter how
// many decisions race; exactly one level-1 approval row is appended for
// the decision that wins.
func (s *LeaveService) Decide(leaveID, approverID uint, decision, comment string) (*model.Leave, error) {
	if decision != model.LeaveApproved && decision != model.LeaveRejected {
		return nil, &ValidationError{Msg: "decision must be APPROVED or REJECTED"}
	}

	var leave model.Leave
	if err := s.DB.First(&leave, leaveID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrLeaveNotFound
		}
		return nil, err
	}

	res := s.DB.Model(&model.Leave{}).
		Where("id = ? AND status = ?", leaveID, model.LeavePending).
		Update("status", decision)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrLeaveNotPending
	}

	approval := model.LeaveApproval{
		LeaveID:    leaveID,
		Level:      1,
		ApproverID: approverID,
		Decision:   decision,
		Comment:    comment,
		DecidedAt:  time.Now(),
	}
	if err := s.DB.Create(&approval).Error; err != nil {
		return nil, err
	}

	action := ActionLeaveApproved
	if decision == model.LeaveRejected {
		action = ActionLeaveRejected
	}
	LogAction(s.DB, approverID, action, "Leave", leaveID, map[string]interface{}{
		"decision": decision,
		"comment":  comment,
	})

	leave.Status = decision
	leave.Approvals = []model.LeaveApproval{approval}
	return &leave, nil
}

// ListForStaff returns the staff member's leaves with their approvals.
func (s *LeaveService) ListForStaff(userID uint) ([]model.Leave, error) {
	var staff model.StaffProfile
	if err := s.DB.Where("user_id = ?", userID).First(&staff).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []model.Leave{}, nil
		}
		return nil, err
	}

	var leaves []model.Leave
	err := s.DB.Where("staff_id = ?", staff.ID).
		Preload("Approvals").Preload("Approvals.Approver").
		Order("created_at DESC").Find(&leaves).Error
	return leaves, err
}

// ListAll returns every leave with staff and approval details.
func (s *LeaveService) ListAll() ([]model.Leave, error) {
	var leaves []model.Leave
	err := s.DB.Preload("Staff").Preload("Staff.User").
		Preload("Approvals").Preload("Approvals.Approver").
		Order("created_at DESC").Find(&leaves).Error
	return leaves, err
}
