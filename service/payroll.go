package service

import (
	"time"

	"staffmis_backend/model"

	"gorm.io/gorm"
)

// PayrollService keeps the ledger: records are generated once with a
// derived net and later marked paid.
type PayrollService struct {
	DB *gorm.DB
}

// Generate creates a payroll record directly in GENERATED state. The net
// amount is computed here and never re-derived afterwards.
func (s *PayrollService) Generate(staffID uint, month, year int, gross, deductions float64, presentDays, paidLeaveDays, unpaidLeaveDays int) (*model.Payroll, error) {
	if month < 1 || month > 12 {
		return nil, &ValidationError{Msg: "month must be between 1 and 12"}
	}
	if gross < 0 || deductions < 0 {
		return nil, &ValidationError{Msg: "gross and deductions must not be negative"}
	}

	var staff model.StaffProfile
	if err := s.DB.First(&staff, staffID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	payroll := model.Payroll{
		StaffID:         staffID,
		Month:           month,
		Year:            year,
		Gross:           gross,
		Deductions:      deductions,
		Net:             gross - deductions,
		PresentDays:     presentDays,
		PaidLeaveDays:   paidLeaveDays,
		UnpaidLeaveDays: unpaidLeaveDays,
		Status:          model.PayrollGenerated,
	}
	if err := s.DB.Create(&payroll).Error; err != nil {
		return nil, err
	}
	return &payroll, nil
}

// MarkPaid moves a GENERATED record to PAID and attaches the salary
// payment. The transition is a conditional update; a record that is not
// GENERATED (already paid, or still pending) is left untouched.
func (s *PayrollService) MarkPaid(payrollID uint, method, referenceNo string) (*model.Payroll, error) {
	if method == "" || referenceNo == "" {
		return nil, &ValidationError{Msg: "payment method and reference number are required"}
	}

	var payroll model.Payroll
	if err := s.DB.First(&payroll, payrollID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPayrollNotFound
		}
		return nil, err
	}

	res := s.DB.Model(&model.Payroll{}).
		Where("id = ? AND status = ?", payrollID, model.PayrollGenerated).
		Update("status", model.PayrollPaid)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrPayrollNotGenerated
	}

	payment := model.SalaryPayment{
		PayrollID:   payrollID,
		Method:      method,
		ReferenceNo: referenceNo,
		PaidAt:      time.Now(),
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		return nil, err
	}

	payroll.Status = model.PayrollPaid
	payroll.SalaryPayments = []model.SalaryPayment{payment}
	return &payroll, nil
}

// ListForStaff returns the staff member's payrolls, newest period first.
func (s *PayrollService) ListForStaff(userID uint) ([]model.Payroll, error) {
	var staff model.StaffProfile
	if err := s.DB.Where("user_id = ?", userID).First(&staff).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []model.Payroll{}, nil
		}
		return nil, err
	}

	var payrolls []model.Payroll
	err := s.DB.Where("staff_id = ?", staff.ID).
		Preload("SalaryPayments").
		Order("year DESC, month DESC").Find(&payrolls).Error
	return payrolls, err
}

// ListAll returns every payroll with staff details for admins.
func (s *PayrollService) ListAll() ([]model.Payroll, error) {
	var payrolls []model.Payroll
	err := s.DB.Preload("Staff").Preload("Staff.User").Preload("SalaryPayments").
		Order("year DESC, month DESC").Find(&payrolls).Error
	return payrolls, err
}
