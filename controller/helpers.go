package controller

import (
	"errors"
	"log"

	"staffmis_backend/model/response"
	"staffmis_backend/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// validationErrorResponse reports validator.v10 failures field by field.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	fields := make(map[string]string)
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  fields,
	})
}

// serviceErrorResponse maps service errors onto HTTP responses. Unknown
// errors are logged and reported generically.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": vErr.Msg,
		})
	}

	var gfErr *service.GeofenceError
	if errors.As(err, &gfErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":  "Outside geofence",
			"distance": gfErr.Distance,
		})
	}

	switch {
	case errors.Is(err, service.ErrOfficeNotConfigured):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Office not configured",
		})
	case errors.Is(err, service.ErrStaffNotFound),
		errors.Is(err, service.ErrTripNotFound),
		errors.Is(err, service.ErrLeaveNotFound),
		errors.Is(err, service.ErrPayrollNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, service.ErrTripOngoing),
		errors.Is(err, service.ErrLeaveNotPending),
		errors.Is(err, service.ErrPayrollNotGenerated):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	log.Println("internal error:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

func okResponse(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: message,
		Data:    data,
	})
}
