package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"staffmis_backend/controller"
	"staffmis_backend/middleware"
	"staffmis_backend/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "controller_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
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

	middleware.DBConn = db
	return db
}

// asUser stands in for the JWT middleware so handlers see an
// authenticated caller.
func asUser(userID uint, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

func createUser(t *testing.T, db *gorm.DB, email, password, role string) model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := model.User{Name: "Test User", Email: email, Password: string(hashed), Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func postJSON(t *testing.T, app *fiber.App, target string, body interface{}) (map[string]interface{}, int) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", target, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded, resp.StatusCode
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "admin@example.com", "secret123", model.RoleAdmin)

	app := fiber.New()
	app.Post("/login", controller.Login)

	body, status := postJSON(t, app, "/login", fiber.Map{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	assert.Equal(t, 200, status)
	assert.Equal(t, "200", body["retCode"])

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "admin@example.com", "secret123", model.RoleAdmin)

	app := fiber.New()
	app.Post("/login", controller.Login)

	_, status := postJSON(t, app, "/login", fiber.Map{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, 401, status)
}

func TestEnrollStaff(t *testing.T) {
	db := setupTestDB(t)
	admin := createUser(t, db, "admin@example.com", "secret123", model.RoleAdmin)

	app := fiber.New()
	app.Post("/admin/staff", asUser(admin.ID, model.RoleAdmin), controller.EnrollStaff)

	body, status := postJSON(t, app, "/admin/staff", fiber.Map{
		"name":         "Ravi Kumar",
		"email":        "ravi@example.com",
		"password":     "password1",
		"designation":  "Field Officer",
		"department":   "Operations",
		"salary":       42000,
		"joining_date": "2025-04-01",
	})
	assert.Equal(t, 200, status)
	assert.Equal(t, "200", body["retCode"])

	var user model.User
	require.NoError(t, db.Where("email = ?", "ravi@example.com").First(&user).Error)
	assert.Equal(t, model.RoleStaff, user.Role)

	var profile model.StaffProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "Field Officer", profile.Designation)
	assert.Equal(t, 42000.0, profile.Salary)

	var audit model.AuditLog
	require.NoError(t, db.Where("action_type = ?", "STAFF_CREATE").First(&audit).Error)
	assert.Equal(t, admin.ID, audit.UserID)
}

func TestEnrollStaffDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	admin := createUser(t, db, "admin@example.com", "secret123", model.RoleAdmin)
	createUser(t, db, "ravi@example.com", "secret123", model.RoleStaff)

	app := fiber.New()
	app.Post("/admin/staff", asUser(admin.ID, model.RoleAdmin), controller.EnrollStaff)

	_, status := postJSON(t, app, "/admin/staff", fiber.Map{
		"name":     "Ravi Kumar",
		"email":    "ravi@example.com",
		"password": "password1",
	})
	assert.Equal(t, 409, status)
}

func TestRequireRolesBlocksStaff(t *testing.T) {
	db := setupTestDB(t)
	staff := createUser(t, db, "staff@example.com", "secret123", model.RoleStaff)

	app := fiber.New()
	app.Post("/admin/sub-admins",
		asUser(staff.ID, model.RoleStaff),
		middleware.RequireRoles(model.RoleAdmin),
		controller.CreateSubAdmin)

	_, status := postJSON(t, app, "/admin/sub-admins", fiber.Map{
		"name":     "New Sub",
		"email":    "sub@example.com",
		"password": "password1",
	})
	assert.Equal(t, 403, status)
}

func TestCreateLocationDefaultsRadius(t *testing.T) {
	db := setupTestDB(t)
	admin := createUser(t, db, "admin@example.com", "secret123", model.RoleAdmin)

	app := fiber.New()
	app.Post("/admin/locations", asUser(admin.ID, model.RoleAdmin), controller.CreateLocation)

	_, status := postJSON(t, app, "/admin/locations", fiber.Map{
		"name": "Head Office",
		"lat":  26.8467,
		"lng":  80.9462,
	})
	assert.Equal(t, 200, status)

	var location model.OfficeLocation
	require.NoError(t, db.Where("name = ?", "Head Office").First(&location).Error)
	assert.Equal(t, 10.0, location.RadiusMeters)
	assert.True(t, location.Active)
}

func TestSubmitAttendanceMissingCoordinates(t *testing.T) {
	db := setupTestDB(t)
	staff := createUser(t, db, "staff@example.com", "secret123", model.RoleStaff)
	profile := model.StaffProfile{UserID: staff.ID, Designation: "Clerk", Status: "Active"}
	require.NoError(t, db.Create(&profile).Error)

	app := fiber.New()
	app.Post("/attendance", asUser(staff.ID, model.RoleStaff), controller.SubmitAttendance)

	// No lat/lng in the payload: must fail validation, never reach the
	// geofence check as a (0,0) submission.
	body, status := postJSON(t, app, "/attendance", fiber.Map{
		"selfie": "data:image/png;base64,aGVsbG8=",
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Validation failed", body["message"])

	errs := body["errors"].(map[string]interface{})
	assert.Equal(t, "required", errs["Lat"])
	assert.Equal(t, "required", errs["Lng"])

	var count int64
	require.NoError(t, db.Model(&model.Attendance{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplyLeaveEndpoint(t *testing.T) {
	db := setupTestDB(t)
	staff := createUser(t, db, "staff@example.com", "secret123", model.RoleStaff)
	profile := model.StaffProfile{UserID: staff.ID, Designation: "Clerk", Status: "Active"}
	require.NoError(t, db.Create(&profile).Error)

	app := fiber.New()
	app.Post("/leaves", asUser(staff.ID, model.RoleStaff), controller.ApplyLeave)

	body, status := postJSON(t, app, "/leaves", fiber.Map{
		"type":      model.LeavePaid,
		"from_date": "2025-05-10",
		"to_date":   "2025-05-12",
		"reason":    "Family function",
	})
	assert.Equal(t, 200, status)
	assert.Equal(t, "200", body["retCode"])

	var leave model.Leave
	require.NoError(t, db.Where("staff_id = ?", profile.ID).First(&leave).Error)
	assert.Equal(t, model.LeavePending, leave.Status)
	assert.Equal(t, time.May, leave.FromDate.Month())
}
