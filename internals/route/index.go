// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "attendanceku_backend/internals/features/attendance/attendances/controller"
	attendeeController "attendanceku_backend/internals/features/attendance/attendees/controller"
	recordController "attendanceku_backend/internals/features/attendance/records/controller"
	scheduleController "attendanceku_backend/internals/features/attendance/schedules/controller"
	authController "attendanceku_backend/internals/features/users/auth/controller"
	authMiddleware "attendanceku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 🔓 public
	auth := authController.NewAuthController(db)
	api.Post("/auth/signup", auth.SignUp)
	api.Post("/auth/signin", auth.SignIn)
	api.Post("/auth/refresh", auth.Refresh)

	// 🔒 everything below carries an authenticated actor
	api.Use(authMiddleware.AuthMiddleware())

	attendances := attendanceController.NewAttendanceController(db)
	api.Post("/attendances", attendances.Create)
	api.Get("/attendances", attendances.ListMine)
	api.Get("/attendances/:attendanceId", attendances.GetOne)
	api.Patch("/attendances/:attendanceId", attendances.Update)
	api.Delete("/attendances/:attendanceId", attendances.Delete)

	attendees := attendeeController.NewAttendeeController(db)
	api.Post("/attendees", attendees.Create)
	api.Get("/attendances/:attendanceId/attendees", attendees.ListByAttendance)
	api.Get("/attendees/:attendeeId", attendees.GetOne)
	api.Delete("/attendees", attendees.DeleteAll)

	schedules := scheduleController.NewScheduleController(db)
	api.Post("/schedules", schedules.Create)
	api.Get("/attendees/:attendeeId/schedules", schedules.ListByAttendee)
	api.Get("/attendances/:attendanceId/schedules", schedules.ListByAttendance)
	api.Delete("/schedules", schedules.DeleteAll)

	records := recordController.NewRecordController(db)
	api.Post("/records", records.Create)
	api.Post("/records/all", records.CreateAll)
	api.Delete("/records", records.DeleteAll)
	api.Get("/attendances/:attendanceId/records", records.ListByAttendance)
	api.Get("/attendances/:attendanceId/records/excel", records.ExcelByAttendance)
	api.Get("/attendees/:attendeeId/records", records.ListByAttendee)
	api.Get("/attendees/:attendeeId/records/excel", records.ExcelByAttendee)
}
