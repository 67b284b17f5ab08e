// internals/features/attendance/attendances/controller/attendance_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "attendanceku_backend/internals/features/attendance/attendances/dto"
	model "attendanceku_backend/internals/features/attendance/attendances/model"
	helper "attendanceku_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validator: validator.New()}
}

// POST /api/attendances
func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AttendanceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	attendance := req.ToModel(userID)
	if err := ctl.DB.WithContext(c.Context()).Create(attendance).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create attendance")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "SUCCESS CREATE ATTENDANCE", attendance)
}

// GET /api/attendances
// Lists rosters created by the caller.
func (ctl *AttendanceController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var attendances []model.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_create_id = ?", userID).
		Order("attendance_created_at DESC").
		Find(&attendances).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list attendances")
	}
	return helper.Success(c, "SUCCESS LIST ATTENDANCES", attendances)
}

// GET /api/attendances/:attendanceId
func (ctl *AttendanceController) GetOne(c *fiber.Ctx) error {
	attendanceID, err := uuid.Parse(c.Params("attendanceId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	var attendance model.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_id = ?", attendanceID).
		First(&attendance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Attendance not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to get attendance")
	}
	return helper.Success(c, "SUCCESS GET ATTENDANCE", attendance)
}

// PATCH /api/attendances/:attendanceId
func (ctl *AttendanceController) Update(c *fiber.Ctx) error {
	attendanceID, err := uuid.Parse(c.Params("attendanceId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	var req dto.AttendanceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var attendance model.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_id = ?", attendanceID).
		First(&attendance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Attendance not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to get attendance")
	}

	req.ApplyTo(&attendance)
	if err := ctl.DB.WithContext(c.Context()).Save(&attendance).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update attendance")
	}
	return helper.Success(c, "SUCCESS UPDATE ATTENDANCE", attendance)
}

// DELETE /api/attendances/:attendanceId
func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	attendanceID, err := uuid.Parse(c.Params("attendanceId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("attendance_id = ?", attendanceID).
		Delete(&model.AttendanceModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete attendance")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Attendance not found")
	}
	return helper.Success(c, "SUCCESS DELETE ATTENDANCE", nil)
}
