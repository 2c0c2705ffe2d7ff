package controller

import (
	"strconv"
	"time"

	"staffmis_backend/middleware"
	"staffmis_backend/model"

	"github.com/gofiber/fiber/v2"
)

// monthRange returns the inclusive bounds for the chosen month or
// year filter. A zero month with a non-zero year spans the whole year.
func monthRange(month, year int) (time.Time, time.Time, bool) {
	if year == 0 {
		return time.Time{}, time.Time{}, false
	}
	if month > 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		end := start.AddDate(0, 1, 0).Add(-time.Second)
		return start, end, true
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.Local)
	return start, end, true
}

// GetReport returns filtered records for one of the report types:
// attendance, leaves, field-trips or payroll.
func GetReport(c *fiber.Ctx) error {
	reportType := c.Query("type")
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	staffID, _ := strconv.Atoi(c.Query("staff_id"))

	db := middleware.DBConn

	switch reportType {
	case "attendance":
		query := db.Model(&model.Attendance{}).Order("datetime DESC")
		if staffID > 0 {
			query = query.Where("staff_id = ?", staffID)
		}
		if start, end, ok := monthRange(month, year); ok {
			query = query.Where("datetime BETWEEN ? AND ?", start, end)
		}
		var records []model.Attendance
		if err := query.Find(&records).Error; err != nil {
			return reportFailed(c)
		}
		return okResponse(c, "Report generated successfully", fiber.Map{
			"type": reportType, "records": records,
		})

	case "leaves":
		query := db.Model(&model.Leave{}).Preload("Approvals").Order("created_at DESC")
		if staffID > 0 {
			query = query.Where("staff_id = ?", staffID)
		}
		if start, end, ok := monthRange(month, year); ok {
			query = query.Where("from_date BETWEEN ? AND ?", start, end)
		}
		var records []model.Leave
		if err := query.Find(&records).Error; err != nil {
			return reportFailed(c)
		}
		return okResponse(c, "Report generated successfully", fiber.Map{
			"type": reportType, "records": records,
		})

	case "field-trips":
		query := db.Model(&model.FieldTrip{}).Order("start_time DESC")
		if staffID > 0 {
			query = query.Where("staff_id = ?", staffID)
		}
		if start, end, ok := monthRange(month, year); ok {
			query = query.Where("start_time BETWEEN ? AND ?", start, end)
		}
		var records []model.FieldTrip
		if err := query.Find(&records).Error; err != nil {
			return reportFailed(c)
		}
		return okResponse(c, "Report generated successfully", fiber.Map{
			"type": reportType, "records": records,
		})

	case "payroll":
		query := db.Model(&model.Payroll{}).Preload("SalaryPayments").Order("created_at DESC")
		if staffID > 0 {
			query = query.Where("staff_id = ?", staffID)
		}
		if month > 0 {
			query = query.Where("month = ?", month)
		}
		if year > 0 {
			query = query.Where("year = ?", year)
		}
		var records []model.Payroll
		if err := query.Find(&records).Error; err != nil {
			return reportFailed(c)
		}
		return okResponse(c, "Report generated successfully", fiber.Map{
			"type": reportType, "records": records,
		})
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid report type",
	})
}

func reportFailed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Failed to fetch report data",
	})
}
