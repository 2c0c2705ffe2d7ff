package service_test

import (
	"errors"
	"testing"
	"time"

	"staffmis_backend/model"
	"staffmis_backend/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestApplyLeave(t *testing.T) {
	db := setupDB(t)
	svc := &service.LeaveService{DB: db}
	user, staff := seedStaff(t, db, "staff@example.com")

	leave, err := svc.Apply(user.ID, model.LeavePaid, date(2026, 9, 7), date(2026, 9, 9), "family function")
	require.NoError(t, err)

	assert.Equal(t, staff.ID, leave.StaffID)
	assert.Equal(t, model.LeavePending, leave.Status)

	var audits []model.AuditLog
	require.NoError(t, db.Where("action_type = ?", service.ActionLeaveApplied).Find(&audits).Error)
	assert.Len(t, audits, 1)
}

func TestApplyLeaveInvalidType(t *testing.T) {
	db := setupDB(t)
	svc := &service.LeaveService{DB: db}
	user, _ := seedStaff(t, db, "staff@example.com")

	_, err := svc.Apply(user.ID, "SICK", date(2026, 9, 7), date(2026, 9, 9), "")
	var vErr *service.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestApplyLeaveReversedDates(t *testing.T) {
	db := setupDB(t)
	svc := &service.LeaveService{DB: db}
	user, _ := seedStaff(t, db, "staff@example.com")

	_, err := svc.Apply(user.ID, model.LeavePaid, date(2026, 9, 9), date(2026, 9, 7), "")
	var vErr *service.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestDecideLeaveApproves(t *testing.T) {
	db := setupDB(t)
	svc := &service.LeaveService{DB: db}
	user, _ := seedStaff(t, db, "staff@example.com")

	admin := model.User{Name: "Admin", Email: "admin@example.com", Role: model.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	leave, err := svc.Apply(user.ID, model.LeavePaid, date(2026, 9, 7), date(2026, 9, 9), "")
	require.NoError(t, err)

	decided, err := svc.Decide(leave.ID, admin.ID, model.LeaveApproved, "enjoy")
	require.NoError(t, err)
	assert.Equal(t, model.LeaveApproved, decided.Status)

	// Exactly one level-1 approval row carrying the decision.
	var approvals []model.LeaveApproval
	require.NoError(t, db.Where("leave_id = ?", leave.ID).Find(&approvals).Error)
	require.Len(t, approvals, 1)
	assert.Equal(t, 1, approvals[0].Level)
	assert.Equal(t, admin.ID, approvals[0].ApproverID)
	assert.Equal(t, model.LeaveApproved, approvals[0].Decision)
	assert.Equal(t, "enjoy", approvals[0].Comment)
}

func TestDecideLeaveTwiceFails(t *testing.T) {
	db := setupDB(t)
	svc := &service.LeaveService{DB: db}
	user, _ := seedStaff(t, db, "staff@example.com")

	admin := model.User{Name: "Admin", Email: "admin@example.com", Role: model.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	leave, err := svc.Apply(user.ID, model.LeaveUnpaid, date(2026, 9, 7), date(2026, 9, 9), "")
	require.NoError(t, err)

	_, err = svc.Decide(leave.ID, admin.ID, model.LeaveApproved, "")
	require.NoError(t, err)

	_, err = svc.Decide(leave.ID, admin.ID, model.LeaveRejected, "")
	assert.ErrorIs(t, err, service.ErrLeaveNotPending)

	// The second decision appended nothing.
	var count int64
	require.NoError(t, db.Model(&model.LeaveApproval{}).Where("leave_id = ?", leave.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDecideLeaveNotFound(t *testing.T) {
	db := setupDB(t)
	svc := &service.LeaveService{DB: db}

	_, err := svc.Decide(12345, 1, model.LeaveApproved, "")
	assert.ErrorIs(t, err, service.ErrLeaveNotFound)
}

func TestDecideLeaveInvalidDecision(t *testing.T) {
	db := setupDB(t)
	svc := &service.LeaveService{DB: db}
	user, _ := seedStaff(t, db, "staff@example.com")

	leave, err := svc.Apply(user.ID, model.LeavePaid, date(2026, 9, 7), date(2026, 9, 9), "")
	require.NoError(t, err)

	_, err = svc.Decide(leave.ID, 1, "MAYBE", "")
	var vErr *service.ValidationError
	assert.True(t, errors.As(err, &vErr))
}
