package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role values carried in the users table and in JWT claims.
const (
	RoleStaff    = "STAFF"
	RoleSubAdmin = "SUB_ADMIN"
	RoleAdmin    = "ADMIN"
)

// Attendance statuses.
const (
	AttendancePresent = "PRESENT"
	AttendanceLate    = "LATE"
	AttendanceAbsent  = "ABSENT"
)

// Field trip statuses.
const (
	TripOngoing   = "ONGOING"
	TripCompleted = "COMPLETED"
	TripCancelled = "CANCELLED"
)

// Leave types and statuses.
const (
	LeavePaid   = "PAID"
	LeaveUnpaid = "UNPAID"

	LeavePending   = "PENDING"
	LeaveApproved  = "APPROVED"
	LeaveRejected  = "REJECTED"
	LeaveCancelled = "CANCELLED"
)

// Payroll statuses.
const (
	PayrollPending   = "PENDING"
	PayrollGenerated = "GENERATED"
	PayrollPaid      = "PAID"
)

type User struct {
	gorm.Model
	Name            string  `json:"name"`
	Email           string  `gorm:"unique" json:"email"`
	Phone           *string `gorm:"unique" json:"phone"`
	Password        string  `json:"-"`
	Role            string  `gorm:"default:STAFF" json:"role"`
	FCMToken        string  `json:"fcm_token"`
	ConfirmPassword string  `json:"confirm_password" gorm:"-"`

	Staff *StaffProfile `gorm:"foreignKey:UserID" json:"staff,omitempty"`
}

type StaffProfile struct {
	gorm.Model
	UserID        uint       `gorm:"uniqueIndex" json:"user_id"`
	Designation   string     `json:"designation"`
	Department    string     `json:"department"`
	Salary        float64    `json:"salary"`
	JoiningDate   *time.Time `json:"joining_date"`
	BankName      string     `json:"bank_name"`
	AccountNumber string     `json:"account_number"`
	IfscCode      string     `json:"ifsc_code"`
	Status        string     `gorm:"default:Active" json:"status"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

type OfficeLocation struct {
	gorm.Model
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	RadiusMeters float64 `gorm:"default:10" json:"radius_meters"`
	Active       bool    `gorm:"default:true" json:"active"`
}

// Attendance rows are written once and never updated.
type Attendance struct {
	gorm.Model
	StaffID          uint      `gorm:"index" json:"staff_id"`
	Datetime         time.Time `json:"datetime"`
	SelfieFile       string    `json:"selfie_file"`
	Lat              float64   `json:"lat"`
	Lng              float64   `json:"lng"`
	DistanceToOffice float64   `json:"distance_to_office"`
	Status           string    `json:"status"`
	DeviceInfo       string    `json:"device_info"`

	Staff StaffProfile `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

type FieldTrip struct {
	gorm.Model
	StaffID       uint       `gorm:"index" json:"staff_id"`
	StartTime     time.Time  `json:"start_time"`
	StartLat      float64    `json:"start_lat"`
	StartLng      float64    `json:"start_lng"`
	StartOdometer *float64   `json:"start_odometer"`
	EndTime       *time.Time `json:"end_time"`
	EndLat        *float64   `json:"end_lat"`
	EndLng        *float64   `json:"end_lng"`
	EndOdometer   *float64   `json:"end_odometer"`
	ComputedKm    *float64   `json:"computed_km"`
	Status        string     `gorm:"index" json:"status"`

	Staff StaffProfile `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

type Leave struct {
	gorm.Model
	StaffID  uint      `gorm:"index" json:"staff_id"`
	Type     string    `json:"type"`
	FromDate time.Time `json:"from_date"`
	ToDate   time.Time `json:"to_date"`
	Reason   string    `json:"reason"`
	Status   string    `gorm:"default:PENDING" json:"status"`

	Staff     StaffProfile    `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	Approvals []LeaveApproval `gorm:"foreignKey:LeaveID" json:"approvals,omitempty"`
}

// LeaveApproval captures a single decision. Level stays 1; there is no
// multi-step escalation.
type LeaveApproval struct {
	gorm.Model
	LeaveID    uint      `gorm:"index" json:"leave_id"`
	Level      int       `gorm:"default:1" json:"level"`
	ApproverID uint      `json:"approver_id"`
	Decision   string    `json:"decision"`
	Comment    string    `json:"comment"`
	DecidedAt  time.Time `json:"decided_at"`

	Approver User `gorm:"foreignKey:ApproverID" json:"approver,omitempty"`
}

type Payroll struct {
	gorm.Model
	StaffID         uint    `gorm:"index" json:"staff_id"`
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	Gross           float64 `json:"gross"`
	Deductions      float64 `json:"deductions"`
	Net             float64 `json:"net"`
	PresentDays     int     `json:"present_days"`
	PaidLeaveDays   int     `json:"paid_leave_days"`
	UnpaidLeaveDays int     `json:"unpaid_leave_days"`
	Status          string  `gorm:"default:GENERATED" json:"status"`

	Staff          StaffProfile    `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	SalaryPayments []SalaryPayment `gorm:"foreignKey:PayrollID" json:"salary_payments,omitempty"`
}

type SalaryPayment struct {
	gorm.Model
	PayrollID   uint      `gorm:"index" json:"payroll_id"`
	Method      string    `json:"method"`
	ReferenceNo string    `json:"reference_no"`
	PaidAt      time.Time `json:"paid_at"`
}

// AuditLog is append-only; rows are never updated or deleted.
type AuditLog struct {
	gorm.Model
	UserID     uint           `gorm:"index" json:"user_id"`
	ActionType string         `json:"action_type"`
	EntityType string         `json:"entity_type"`
	EntityID   uint           `json:"entity_id"`
	MetaJSON   datatypes.JSON `json:"meta_json"`
}
