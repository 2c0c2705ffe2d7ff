package routes

import (
	"staffmis_backend/controller"
	"staffmis_backend/middleware"
	"staffmis_backend/model"

	"github.com/gofiber/fiber/v2"
)

func AppRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Staff MIS API")
	})

	//LOGIN / PASSWORD RESET (no token)
	app.Post("/login", controller.Login)
	app.Post("/forgot-password", controller.ForgotPassword)
	app.Post("/verify-code", controller.VerifyResetCode)
	app.Post("/reset-password", controller.ResetPassword)

	//Grouped routes for the Staff MIS API (token required)
	api := app.Group("/api", middleware.JWTMiddleware())

	staffOnly := middleware.RequireRoles(model.RoleStaff)
	adminOnly := middleware.RequireRoles(model.RoleAdmin)
	adminOrSubAdmin := middleware.RequireRoles(model.RoleAdmin, model.RoleSubAdmin)

	api.Post("/logout", controller.Logout)

	//PROFILE
	api.Get("/profile", controller.GetProfile)
	api.Put("/profile", controller.UpdateProfile)
	api.Post("/fcm-token", controller.SaveFCMToken)

	//ATTENDANCE
	api.Post("/attendance", staffOnly, controller.SubmitAttendance)
	api.Get("/attendance", controller.GetAttendance)
	api.Get("/uploads/:filename", controller.ViewUpload)

	//FIELD TRIPS
	api.Post("/field-trips", staffOnly, controller.StartFieldTrip)
	api.Patch("/field-trips", staffOnly, controller.EndFieldTrip)
	api.Get("/field-trips", controller.GetFieldTrips)

	//LEAVES
	api.Post("/leaves", staffOnly, controller.ApplyLeave)
	api.Patch("/leaves", adminOrSubAdmin, controller.DecideLeave)
	api.Get("/leaves", controller.GetLeaves)

	//PAYROLL
	api.Get("/payroll", controller.GetPayrolls)
	api.Post("/payroll", adminOnly, controller.GeneratePayroll)
	api.Patch("/payroll", adminOnly, controller.MarkPayrollPaid)

	//OFFICE LOCATIONS
	api.Get("/admin/locations", adminOrSubAdmin, controller.GetLocations)
	api.Post("/admin/locations", adminOrSubAdmin, controller.CreateLocation)
	api.Put("/admin/locations", adminOrSubAdmin, controller.UpdateLocation)
	api.Delete("/admin/locations/:id", adminOnly, controller.DeleteLocation)

	//STAFF MANAGEMENT
	api.Get("/admin/staff", adminOrSubAdmin, controller.GetAllStaff)
	api.Post("/admin/staff", adminOrSubAdmin, controller.EnrollStaff)
	api.Put("/admin/staff", adminOrSubAdmin, controller.UpdateStaff)
	api.Delete("/admin/staff/:id", adminOnly, controller.DeleteStaff)

	//SUB-ADMIN MANAGEMENT (admin only)
	api.Get("/admin/sub-admins", adminOnly, controller.GetSubAdmins)
	api.Post("/admin/sub-admins", adminOnly, controller.CreateSubAdmin)
	api.Delete("/admin/sub-admins/:id", adminOnly, controller.DeleteSubAdmin)

	//REPORTS
	api.Get("/admin/reports", adminOrSubAdmin, controller.GetReport)
}
