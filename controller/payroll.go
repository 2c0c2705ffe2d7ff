package controller

import (
	"staffmis_backend/middleware"
	"staffmis_backend/model"
	"staffmis_backend/service"

	"github.com/gofiber/fiber/v2"
)

func payrollService() *service.PayrollService {
	return &service.PayrollService{DB: middleware.DBConn}
}

// GeneratePayroll creates a GENERATED payroll record with its derived
// net amount.
func GeneratePayroll(c *fiber.Ctx) error {
	type GenerateRequest struct {
		StaffID         uint     `json:"staff_id" validate:"required"`
		Month           int      `json:"month" validate:"required,min=1,max=12"`
		Year            int      `json:"year" validate:"required"`
		Gross           *float64 `json:"gross" validate:"required"`
		Deductions      *float64 `json:"deductions" validate:"required"`
		PresentDays     int      `json:"present_days"`
		PaidLeaveDays   int      `json:"paid_leave_days"`
		UnpaidLeaveDays int      `json:"unpaid_leave_days"`
	}

	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	payroll, err := payrollService().Generate(
		req.StaffID, req.Month, req.Year, *req.Gross, *req.Deductions,
		req.PresentDays, req.PaidLeaveDays, req.UnpaidLeaveDays)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return okResponse(c, "Payroll generated successfully", payroll)
}

// MarkPayrollPaid transitions a GENERATED record to PAID and attaches
// the salary payment.
func MarkPayrollPaid(c *fiber.Ctx) error {
	type PaidRequest struct {
		PayrollID   uint   `json:"payroll_id" validate:"required"`
		Method      string `json:"method" validate:"required"`
		ReferenceNo string `json:"reference_no" validate:"required"`
	}

	var req PaidRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	payroll, err := payrollService().MarkPaid(req.PayrollID, req.Method, req.ReferenceNo)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return okResponse(c, "Payroll marked as paid successfully", payroll)
}

// GetPayrolls lists payrolls: staff see their own, admins see all.
func GetPayrolls(c *fiber.Ctx) error {
	svc := payrollService()

	if middleware.Role(c) == model.RoleStaff {
		payrolls, err := svc.ListForStaff(middleware.UserID(c))
		if err != nil {
			return serviceErrorResponse(c, err)
		}
		return okResponse(c, "Payrolls fetched successfully", payrolls)
	}

	payrolls, err := svc.ListAll()
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return okResponse(c, "Payrolls fetched successfully", payrolls)
}
