package service_test

import (
	"path/filepath"
	"testing"

	"staffmis_backend/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.StaffProfile{},
		&model.OfficeLocation{},
		&model.Attendance{},
		&model.FieldTrip{},
		&model.Leave{},
		&model.LeaveApproval{},
		&model.Payroll{},
		&model.SalaryPayment{},
		&model.AuditLog{},
	))
	return db
}

func seedStaff(t *testing.T, db *gorm.DB, email string) (model.User, model.StaffProfile) {
	t.Helper()

	user := model.User{Name: "Test Staff", Email: email, Role: model.RoleStaff}
	require.NoError(t, db.Create(&user).Error)

	staff := model.StaffProfile{UserID: user.ID, Designation: "Field Officer", Department: "Operations"}
	require.NoError(t, db.Create(&staff).Error)

	return user, staff
}

func seedOffice(t *testing.T, db *gorm.DB, name string, lat, lng, radius float64) model.OfficeLocation {
	t.Helper()

	office := model.OfficeLocation{Name: name, Lat: lat, Lng: lng, RadiusMeters: radius, Active: true}
	require.NoError(t, db.Create(&office).Error)
	return office
}
