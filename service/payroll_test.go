package service_test

import (
	"errors"
	"testing"

	"staffmis_backend/model"
	"staffmis_backend/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePayroll(t *testing.T) {
	db := setupDB(t)
	svc := &service.PayrollService{DB: db}
	_, staff := seedStaff(t, db, "staff@example.com")

	payroll, err := svc.Generate(staff.ID, 8, 2026, 52000, 4500, 22, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, model.PayrollGenerated, payroll.Status)
	assert.Equal(t, 47500.0, payroll.Net)
	assert.Equal(t, payroll.Gross-payroll.Deductions, payroll.Net)
}

func TestGeneratePayrollBadMonth(t *testing.T) {
	db := setupDB(t)
	svc := &service.PayrollService{DB: db}
	_, staff := seedStaff(t, db, "staff@example.com")

	_, err := svc.Generate(staff.ID, 13, 2026, 52000, 4500, 0, 0, 0)
	var vErr *service.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestGeneratePayrollUnknownStaff(t *testing.T) {
	db := setupDB(t)
	svc := &service.PayrollService{DB: db}

	_, err := svc.Generate(999, 8, 2026, 52000, 4500, 0, 0, 0)
	assert.ErrorIs(t, err, service.ErrStaffNotFound)
}

func TestMarkPaid(t *testing.T) {
	db := setupDB(t)
	svc := &service.PayrollService{DB: db}
	_, staff := seedStaff(t, db, "staff@example.com")

	payroll, err := svc.Generate(staff.ID, 8, 2026, 52000, 4500, 22, 2, 0)
	require.NoError(t, err)

	paid, err := svc.MarkPaid(payroll.ID, "NEFT", "TXN-0042")
	require.NoError(t, err)

	assert.Equal(t, model.PayrollPaid, paid.Status)
	require.Len(t, paid.SalaryPayments, 1)
	assert.Equal(t, "NEFT", paid.SalaryPayments[0].Method)
	assert.Equal(t, "TXN-0042", paid.SalaryPayments[0].ReferenceNo)
}

func TestMarkPaidTwiceFails(t *testing.T) {
	db := setupDB(t)
	svc := &service.PayrollService{DB: db}
	_, staff := seedStaff(t, db, "staff@example.com")

	payroll, err := svc.Generate(staff.ID, 8, 2026, 52000, 4500, 22, 2, 0)
	require.NoError(t, err)

	_, err = svc.MarkPaid(payroll.ID, "NEFT", "TXN-0042")
	require.NoError(t, err)

	_, err = svc.MarkPaid(payroll.ID, "NEFT", "TXN-0043")
	assert.ErrorIs(t, err, service.ErrPayrollNotGenerated)

	// No second payment row.
	var count int64
	require.NoError(t, db.Model(&model.SalaryPayment{}).Where("payroll_id = ?", payroll.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMarkPaidNotFound(t *testing.T) {
	db := setupDB(t)
	svc := &service.PayrollService{DB: db}

	_, err := svc.MarkPaid(999, "NEFT", "TXN-0042")
	assert.ErrorIs(t, err, service.ErrPayrollNotFound)
}

func TestMarkPaidMissingReference(t *testing.T) {
	db := setupDB(t)
	svc := &service.PayrollService{DB: db}
	_, staff := seedStaff(t, db, "staff@example.com")

	payroll, err := svc.Generate(staff.ID, 8, 2026, 52000, 4500, 22, 2, 0)
	require.NoError(t, err)

	_, err = svc.MarkPaid(payroll.ID, "", "")
	var vErr *service.ValidationError
	assert.True(t, errors.As(err, &vErr))
}
