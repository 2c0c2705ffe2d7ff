package controller

import (
	"strconv"

	"staffmis_backend/middleware"
	"staffmis_backend/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetLocations lists all office locations, newest first.
func GetLocations(c *fiber.Ctx) error {
	var locations []model.OfficeLocation
	if err := middleware.DBConn.Order("created_at DESC").Find(&locations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch locations",
		})
	}
	return okResponse(c, "Locations fetched successfully", locations)
}

// CreateLocation adds an office location used for the geofence check.
func CreateLocation(c *fiber.Ctx) error {
	type LocationRequest struct {
		Name         string   `json:"name" validate:"required"`
		Lat          *float64 `json:"lat" validate:"required,min=-90,max=90"`
		Lng          *float64 `json:"lng" validate:"required,min=-180,max=180"`
		RadiusMeters float64  `json:"radius_meters" validate:"omitempty,gt=0"`
		Active       *bool    `json:"active"`
	}

	var req LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	location := model.OfficeLocation{
		Name:         req.Name,
		Lat:          *req.Lat,
		Lng:          *req.Lng,
		RadiusMeters: req.RadiusMeters,
		Active:       true,
	}
	if location.RadiusMeters == 0 {
		location.RadiusMeters = 10
	}
	if req.Active != nil {
		location.Active = *req.Active
	}

	if err := middleware.DBConn.Create(&location).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create location",
		})
	}

	return okResponse(c, "Location created successfully", location)
}

// UpdateLocation edits an office location; only provided fields change.
func UpdateLocation(c *fiber.Ctx) error {
	type UpdateRequest struct {
		ID           uint     `json:"id" validate:"required"`
		Name         *string  `json:"name"`
		Lat          *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
		Lng          *float64 `json:"lng" validate:"omitempty,min=-180,max=180"`
		RadiusMeters *float64 `json:"radius_meters" validate:"omitempty,gt=0"`
		Active       *bool    `json:"active"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	var existing model.OfficeLocation
	if err := middleware.DBConn.First(&existing, req.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Location not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch location",
		})
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Lat != nil {
		updates["lat"] = *req.Lat
	}
	if req.Lng != nil {
		updates["lng"] = *req.Lng
	}
	if req.RadiusMeters != nil {
		updates["radius_meters"] = *req.RadiusMeters
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := middleware.DBConn.Model(&existing).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update location",
			})
		}
	}

	return okResponse(c, "Location updated successfully", nil)
}

// DeleteLocation removes an office location.
func DeleteLocation(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid location ID",
		})
	}

	var existing model.OfficeLocation
	if err := middleware.DBConn.First(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Location not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch location",
		})
	}

	if err := middleware.DBConn.Delete(&existing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete location",
		})
	}

	return okResponse(c, "Location deleted successfully", nil)
}
