package controller

import (
	"staffmis_backend/middleware"
	"staffmis_backend/model"
	"staffmis_backend/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func fieldTripService() *service.FieldTripService {
	return &service.FieldTripService{DB: middleware.DBConn}
}

func staffProfileForUser(userID uint) (*model.StaffProfile, error) {
	var staff model.StaffProfile
	if err := middleware.DBConn.Where("user_id = ?", userID).First(&staff).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, service.ErrStaffNotFound
		}
		return nil, err
	}
	return &staff, nil
}

// StartFieldTrip opens an ONGOING trip for the calling staff member.
func StartFieldTrip(c *fiber.Ctx) error {
	type StartRequest struct {
		StartLat      *float64 `json:"start_lat" validate:"required"`
		StartLng      *float64 `json:"start_lng" validate:"required"`
		StartOdometer *float64 `json:"start_odometer"`
	}

	var req StartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	staff, err := staffProfileForUser(middleware.UserID(c))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	trip, err := fieldTripService().Start(staff.ID, *req.StartLat, *req.StartLng, req.StartOdometer)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Field trip started",
		"field_trip": trip,
	})
}

// EndFieldTrip completes the caller's ONGOING trip.
func EndFieldTrip(c *fiber.Ctx) error {
	type EndRequest struct {
		FieldTripID uint     `json:"field_trip_id" validate:"required"`
		EndLat      *float64 `json:"end_lat" validate:"required"`
		EndLng      *float64 `json:"end_lng" validate:"required"`
		EndOdometer *float64 `json:"end_odometer"`
	}

	var req EndRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	staff, err := staffProfileForUser(middleware.UserID(c))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	trip, err := fieldTripService().End(staff.ID, req.FieldTripID, *req.EndLat, *req.EndLng, req.EndOdometer)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return okResponse(c, "Field trip completed", trip)
}

// GetFieldTrips lists trips: staff see their own, admins see all.
func GetFieldTrips(c *fiber.Ctx) error {
	svc := fieldTripService()

	if middleware.Role(c) == model.RoleStaff {
		staff, err := staffProfileForUser(middleware.UserID(c))
		if err != nil {
			return serviceErrorResponse(c, err)
		}
		trips, err := svc.ListForStaff(staff.ID)
		if err != nil {
			return serviceErrorResponse(c, err)
		}
		return okResponse(c, "Field trips fetched successfully", trips)
	}

	trips, err := svc.ListAll()
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return okResponse(c, "Field trips fetched successfully", trips)
}
