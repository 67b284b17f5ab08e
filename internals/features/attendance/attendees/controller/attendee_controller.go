// internals/features/attendance/attendees/controller/attendee_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "attendanceku_backend/internals/features/attendance/attendees/dto"
	service "attendanceku_backend/internals/features/attendance/attendees/service"
	helper "attendanceku_backend/internals/helpers"
)

type AttendeeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.AttendeeService
}

func NewAttendeeController(db *gorm.DB) *AttendeeController {
	return &AttendeeController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewAttendeeService(db),
	}
}

// POST /api/attendees
func (ctl *AttendeeController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AttendeeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	attendee, err := ctl.Service.Create(c.Context(), req.ToModel(userID))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create attendee")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "SUCCESS CREATE ATTENDEE", attendee)
}

// GET /api/attendances/:attendanceId/attendees
func (ctl *AttendeeController) ListByAttendance(c *fiber.Ctx) error {
	attendanceID, err := uuid.Parse(c.Params("attendanceId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	attendees, err := ctl.Service.FindByAttendanceID(c.Context(), attendanceID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list attendees")
	}
	return helper.Success(c, "SUCCESS LIST ATTENDEES", attendees)
}

// GET /api/attendees/:attendeeId
func (ctl *AttendeeController) GetOne(c *fiber.Ctx) error {
	attendeeID, err := uuid.Parse(c.Params("attendeeId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendee id")
	}

	attendee, err := ctl.Service.FindOneByID(c.Context(), attendeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Attendee not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to get attendee")
	}
	return helper.Success(c, "SUCCESS GET ATTENDEE", attendee)
}

// DELETE /api/attendees
func (ctl *AttendeeController) DeleteAll(c *fiber.Ctx) error {
	var req dto.AttendeeDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Service.DeleteAll(c.Context(), req.AttendanceID, req.IDs); err != nil {
		if errors.Is(err, service.ErrIDsOutsideRoster) {
			return helper.Error(c, fiber.StatusBadRequest,
				fmt.Sprintf("Only attendees under attendance %s can be deleted", req.AttendanceID))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete attendees")
	}
	return helper.Success(c, "SUCCESS DELETE ATTENDEES", nil)
}
