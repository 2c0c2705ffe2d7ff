package controller

import (
	"strconv"

	"staffmis_backend/middleware"
	"staffmis_backend/model"
	"staffmis_backend/service"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GetSubAdmins lists all sub-admin accounts.
func GetSubAdmins(c *fiber.Ctx) error {
	var subAdmins []model.User
	err := middleware.DBConn.Where("role = ?", model.RoleSubAdmin).
		Order("name ASC").Find(&subAdmins).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch sub-admins",
		})
	}
	return okResponse(c, "Sub-admins fetched successfully", subAdmins)
}

// CreateSubAdmin creates a SUB_ADMIN account. Admin only.
func CreateSubAdmin(c *fiber.Ctx) error {
	type CreateRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone"`
		Password string `json:"password" validate:"required,min=8"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	var existing model.User
	if err := middleware.DBConn.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "A user with this email already exists",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to hash password",
		})
	}

	subAdmin := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     model.RoleSubAdmin,
	}
	if req.Phone != "" {
		subAdmin.Phone = &req.Phone
	}
	if err := middleware.DBConn.Create(&subAdmin).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create sub-admin",
		})
	}

	service.LogAction(middleware.DBConn, middleware.UserID(c), service.ActionSubAdminCreate,
		"User", subAdmin.ID, map[string]interface{}{"name": req.Name, "email": req.Email})

	return okResponse(c, "Sub-admin created successfully", fiber.Map{"id": subAdmin.ID})
}

// DeleteSubAdmin removes a SUB_ADMIN account. Admin only.
func DeleteSubAdmin(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	}

	var subAdmin model.User
	if err := middleware.DBConn.First(&subAdmin, id).Error; err != nil || subAdmin.Role != model.RoleSubAdmin {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Sub-admin not found",
		})
	}

	if err := middleware.DBConn.Delete(&subAdmin).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete sub-admin",
		})
	}

	service.LogAction(middleware.DBConn, middleware.UserID(c), service.ActionSubAdminDelete,
		"User", subAdmin.ID, map[string]interface{}{"name": subAdmin.Name, "email": subAdmin.Email})

	return okResponse(c, "Sub-admin deleted successfully", nil)
}
