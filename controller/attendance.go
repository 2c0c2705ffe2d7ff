package controller

import (
	"encoding/base64"
	"regexp"

	"staffmis_backend/middleware"
	"staffmis_backend/model"
	"staffmis_backend/service"
	"staffmis_backend/storage"

	"github.com/gofiber/fiber/v2"
)

func attendanceService() *service.AttendanceService {
	return &service.AttendanceService{
		DB:    middleware.DBConn,
		Store: storage.NewLocalStorage(middleware.GetEnv("UPLOAD_DIR", "uploads")),
	}
}

// Selfies arrive as data URLs from the camera capture on the client.
var selfieDataURL = regexp.MustCompile(`^data:image/(png|jpeg|webp);base64,(.+)$`)

// SubmitAttendance records a geofence-checked attendance submission for
// the calling staff member.
func SubmitAttendance(c *fiber.Ctx) error {
	type AttendanceRequest struct {
		Selfie string   `json:"selfie" validate:"required"`
		Lat    *float64 `json:"lat" validate:"required"`
		Lng    *float64 `json:"lng" validate:"required"`
	}

	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	match := selfieDataURL.FindStringSubmatch(req.Selfie)
	if match == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid selfie",
		})
	}
	ext := match[1]
	if ext == "jpeg" {
		ext = "jpg"
	}
	data, err := base64.StdEncoding.DecodeString(match[2])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid selfie",
		})
	}

	record, err := attendanceService().Record(
		middleware.UserID(c), data, ext, *req.Lat, *req.Lng, c.Get("User-Agent"))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return okResponse(c, "Attendance recorded", fiber.Map{
		"attendance": record,
		"distance":   record.DistanceToOffice,
	})
}

// GetAttendance lists submissions: staff see their own recent records,
// admins see the latest records across everyone.
func GetAttendance(c *fiber.Ctx) error {
	svc := attendanceService()

	if middleware.Role(c) == model.RoleStaff {
		records, err := svc.ListForStaff(middleware.UserID(c), 30)
		if err != nil {
			return serviceErrorResponse(c, err)
		}
		return okResponse(c, "Attendance fetched successfully", records)
	}

	records, err := svc.ListAll(50)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return okResponse(c, "Attendance fetched successfully", records)
}

// ViewUpload streams a stored proof file back to an authenticated caller.
func ViewUpload(c *fiber.Ctx) error {
	store := storage.NewLocalStorage(middleware.GetEnv("UPLOAD_DIR", "uploads"))
	return c.SendFile(store.Path(c.Params("filename")))
}
