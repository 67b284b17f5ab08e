// internals/features/attendance/schedules/controller/schedule_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "attendanceku_backend/internals/features/attendance/schedules/dto"
	service "attendanceku_backend/internals/features/attendance/schedules/service"
	helper "attendanceku_backend/internals/helpers"
)

type ScheduleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.ScheduleService
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewScheduleService(db),
	}
}

// POST /api/schedules
func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ScheduleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	schedule, err := ctl.Service.Create(c.Context(), req.ToModel(userID))
	if err != nil {
		if errors.Is(err, service.ErrInvalidAttendTime) {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid time format, expected HHMM with hour < 24 and minute < 60")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "SUCCESS CREATE SCHEDULE", schedule)
}

// GET /api/attendees/:attendeeId/schedules
func (ctl *ScheduleController) ListByAttendee(c *fiber.Ctx) error {
	attendeeID, err := uuid.Parse(c.Params("attendeeId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendee id")
	}

	schedules, err := ctl.Service.FindByAttendeeID(c.Context(), attendeeID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list schedules")
	}
	return helper.Success(c, "SUCCESS LIST SCHEDULES", schedules)
}

// GET /api/attendances/:attendanceId/schedules
func (ctl *ScheduleController) ListByAttendance(c *fiber.Ctx) error {
	attendanceID, err := uuid.Parse(c.Params("attendanceId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	schedules, err := ctl.Service.FindByAttendanceID(c.Context(), attendanceID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list schedules")
	}
	return helper.Success(c, "SUCCESS LIST SCHEDULES", schedules)
}

// DELETE /api/schedules
func (ctl *ScheduleController) DeleteAll(c *fiber.Ctx) error {
	var req dto.ScheduleDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Service.DeleteAll(c.Context(), req.IDs); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete schedules")
	}
	return helper.Success(c, "SUCCESS DELETE SCHEDULES", nil)
}
