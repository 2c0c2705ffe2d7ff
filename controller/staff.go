package controller

import (
	"strconv"
	"time"

	"staffmis_backend/middleware"
	"staffmis_backend/model"
	"staffmis_backend/service"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetAllStaff lists every staff user with their profile.
func GetAllStaff(c *fiber.Ctx) error {
	var staff []model.User
	err := middleware.DBConn.Where("role = ?", model.RoleStaff).
		Preload("Staff").Order("name ASC").Find(&staff).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch staff",
		})
	}
	return okResponse(c, "Staff fetched successfully", staff)
}

// EnrollStaff creates a STAFF user together with their profile.
func EnrollStaff(c *fiber.Ctx) error {
	type EnrollRequest struct {
		Name        string  `json:"name" validate:"required"`
		Email       string  `json:"email" validate:"required,email"`
		Phone       string  `json:"phone"`
		Password    string  `json:"password" validate:"required,min=8"`
		Designation string  `json:"designation"`
		Department  string  `json:"department"`
		Salary      float64 `json:"salary"`
		JoiningDate string  `json:"joining_date"`
	}

	var req EnrollRequest
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
	if req.Phone != "" {
		if err := middleware.DBConn.Where("phone = ?", req.Phone).First(&existing).Error; err == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A user with this phone number already exists",
			})
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to hash password",
		})
	}

	var joiningDate *time.Time
	if req.JoiningDate != "" {
		d, err := time.Parse("2006-01-02", req.JoiningDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid joining date format. Use YYYY-MM-DD.",
			})
		}
		joiningDate = &d
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     model.RoleStaff,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	err = middleware.DBConn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := model.StaffProfile{
			UserID:      user.ID,
			Designation: req.Designation,
			Department:  req.Department,
			Salary:      req.Salary,
			JoiningDate: joiningDate,
			Status:      "Active",
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to enroll staff",
		})
	}

	service.LogAction(middleware.DBConn, middleware.UserID(c), service.ActionStaffCreate,
		"User", user.ID, map[string]interface{}{"name": req.Name, "email": req.Email})

	return okResponse(c, "Staff enrolled successfully", fiber.Map{"id": user.ID})
}

// UpdateStaff edits a staff user and their profile.
func UpdateStaff(c *fiber.Ctx) error {
	type UpdateRequest struct {
		UserID      uint     `json:"user_id" validate:"required"`
		Name        *string  `json:"name"`
		Phone       *string  `json:"phone"`
		Designation *string  `json:"designation"`
		Department  *string  `json:"department"`
		Salary      *float64 `json:"salary"`
		Status      *string  `json:"status"`
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

	var user model.User
	if err := middleware.DBConn.First(&user, req.UserID).Error; err != nil || user.Role != model.RoleStaff {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Staff member not found",
		})
	}

	userUpdates := map[string]interface{}{}
	if req.Name != nil {
		userUpdates["name"] = *req.Name
	}
	if req.Phone != nil {
		userUpdates["phone"] = *req.Phone
	}
	if len(userUpdates) > 0 {
		if err := middleware.DBConn.Model(&user).Updates(userUpdates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update staff",
			})
		}
	}

	profileUpdates := map[string]interface{}{}
	if req.Designation != nil {
		profileUpdates["designation"] = *req.Designation
	}
	if req.Department != nil {
		profileUpdates["department"] = *req.Department
	}
	if req.Salary != nil {
		profileUpdates["salary"] = *req.Salary
	}
	if req.Status != nil {
		profileUpdates["status"] = *req.Status
	}
	if len(profileUpdates) > 0 {
		err := middleware.DBConn.Model(&model.StaffProfile{}).
			Where("user_id = ?", req.UserID).Updates(profileUpdates).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update staff profile",
			})
		}
	}

	return okResponse(c, "Staff updated successfully", nil)
}

// DeleteStaff removes a staff user and their profile.
func DeleteStaff(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	}

	var user model.User
	if err := middleware.DBConn.First(&user, id).Error; err != nil || user.Role != model.RoleStaff {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Staff member not found",
		})
	}

	err = middleware.DBConn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&model.StaffProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete staff",
		})
	}

	service.LogAction(middleware.DBConn, middleware.UserID(c), service.ActionStaffDelete,
		"User", user.ID, map[string]interface{}{"name": user.Name, "email": user.Email})

	return okResponse(c, "Staff member deleted successfully", nil)
}
