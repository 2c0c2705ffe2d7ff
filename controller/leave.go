package controller

import (
	"fmt"
	"log"
	"time"

	"staffmis_backend/middleware"
	"staffmis_backend/model"
	"staffmis_backend/service"

	"github.com/gofiber/fiber/v2"
)

func leaveService() *service.LeaveService {
	return &service.LeaveService{DB: middleware.DBConn}
}

// ApplyLeave files a new PENDING leave for the calling staff member.
func ApplyLeave(c *fiber.Ctx) error {
	type LeaveRequest struct {
		Type     string `json:"type" validate:"required,oneof=PAID UNPAID"`
		FromDate string `json:"from_date" validate:"required"`
		ToDate   string `json:"to_date" validate:"required"`
		Reason   string `json:"reason"`
	}

	var req LeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	fromDate, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid from date format. Use YYYY-MM-DD.",
		})
	}
	toDate, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid to date format. Use YYYY-MM-DD.",
		})
	}

	leave, err := leaveService().Apply(middleware.UserID(c), req.Type, fromDate, toDate, req.Reason)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return okResponse(c, "Leave request successfully added", leave)
}

// DecideLeave approves or rejects a PENDING leave and notifies the
// staff member's device when an FCM token is on file.
func DecideLeave(c *fiber.Ctx) error {
	type DecisionRequest struct {
		LeaveID  uint   `json:"leave_id" validate:"required"`
		Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
		Comment  string `json:"comment"`
	}

	var req DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	leave, err := leaveService().Decide(req.LeaveID, middleware.UserID(c), req.Decision, req.Comment)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	notifyLeaveDecision(leave)

	return okResponse(c, "Leave request status updated", leave)
}

// notifyLeaveDecision pushes the decision to the staff member's device.
// Notification failures never fail the decision itself.
func notifyLeaveDecision(leave *model.Leave) {
	var recipient struct {
		FCMToken string
		Name     string
	}
	err := middleware.DBConn.Table("staff_profiles").
		Select("users.fcm_token, users.name").
		Joins("JOIN users ON users.id = staff_profiles.user_id").
		Where("staff_profiles.id = ?", leave.StaffID).
		Scan(&recipient).Error

	if err != nil || recipient.FCMToken == "" {
		log.Printf("FCM token not found for staff ID %d, skipping notification\n", leave.StaffID)
		return
	}

	title := "Leave Request Approved"
	body := fmt.Sprintf("Hi %s, your leave request has been approved.", recipient.Name)
	if leave.Status == model.LeaveRejected {
		title = "Leave Request Rejected"
		body = fmt.Sprintf("Hi %s, your leave request has been rejected.", recipient.Name)
	}
	if err := SendPushNotification(recipient.FCMToken, title, body); err != nil {
		log.Printf("Failed to send notification for leave ID %d: %v\n", leave.ID, err)
	}
}

// GetLeaves lists leaves: staff see their own with approvals, admins see
// everyone's.
func GetLeaves(c *fiber.Ctx) error {
	svc := leaveService()

	if middleware.Role(c) == model.RoleStaff {
		leaves, err := svc.ListForStaff(middleware.UserID(c))
		if err != nil {
			return serviceErrorResponse(c, err)
		}
		return okResponse(c, "Leave requests fetched successfully", leaves)
	}

	leaves, err := svc.ListAll()
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return okResponse(c, "Leave requests fetched successfully", leaves)
}
