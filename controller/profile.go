package controller

import (
	"staffmis_backend/middleware"
	"staffmis_backend/model"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the authenticated user's account and staff profile.
func GetProfile(c *fiber.Ctx) error {
	var user model.User
	err := middleware.DBConn.Preload("Staff").First(&user, middleware.UserID(c)).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}
	return okResponse(c, "Profile fetched successfully", user)
}

// UpdateProfile lets the authenticated user edit their own details.
// Salary, role and status stay admin-only and are not accepted here.
func UpdateProfile(c *fiber.Ctx) error {
	type UpdateRequest struct {
		Name          *string `json:"name"`
		Phone         *string `json:"phone"`
		BankName      *string `json:"bank_name"`
		AccountNumber *string `json:"account_number"`
		IfscCode      *string `json:"ifsc_code"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	userID := middleware.UserID(c)

	userUpdates := map[string]interface{}{}
	if req.Name != nil {
		userUpdates["name"] = *req.Name
	}
	if req.Phone != nil {
		userUpdates["phone"] = *req.Phone
	}
	if len(userUpdates) > 0 {
		err := middleware.DBConn.Model(&model.User{}).
			Where("id = ?", userID).Updates(userUpdates).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update profile",
			})
		}
	}

	profileUpdates := map[string]interface{}{}
	if req.BankName != nil {
		profileUpdates["bank_name"] = *req.BankName
	}
	if req.AccountNumber != nil {
		profileUpdates["account_number"] = *req.AccountNumber
	}
	if req.IfscCode != nil {
		profileUpdates["ifsc_code"] = *req.IfscCode
	}
	if len(profileUpdates) > 0 {
		err := middleware.DBConn.Model(&model.StaffProfile{}).
			Where("user_id = ?", userID).Updates(profileUpdates).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update bank details",
			})
		}
	}

	return okResponse(c, "Profile updated successfully", nil)
}

// SaveFCMToken stores the device token used for push notifications.
func SaveFCMToken(c *fiber.Ctx) error {
	type TokenRequest struct {
		Token string `json:"token" validate:"required"`
	}

	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	err := middleware.DBConn.Model(&model.User{}).
		Where("id = ?", middleware.UserID(c)).
		Update("fcm_token", req.Token).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to save token",
		})
	}

	return okResponse(c, "Token saved successfully", nil)
}
