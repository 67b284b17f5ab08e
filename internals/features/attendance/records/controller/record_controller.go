// internals/features/attendance/records/controller/record_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "attendanceku_backend/internals/features/attendance/attendances/model"
	dto "attendanceku_backend/internals/features/attendance/records/dto"
	model "attendanceku_backend/internals/features/attendance/records/model"
	service "attendanceku_backend/internals/features/attendance/records/service"
	helper "attendanceku_backend/internals/helpers"
	excel "attendanceku_backend/internals/helpers/excel"
)

type RecordController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.RecordService
}

func NewRecordController(db *gorm.DB) *RecordController {
	return &RecordController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewRecordService(db),
	}
}

// Default export columns; a roster may override the labels via its
// settings JSON ({"export_labels": {"attendee_name": "...", ...}}).
var defaultExportColumns = []excel.Column{
	{Key: "attendee_name", Label: "Attendee Name"},
	{Key: "attendee_age", Label: "Age"},
	{Key: "record_day", Label: "Day"},
	{Key: "record_date", Label: "Date"},
	{Key: "record_status", Label: "Status"},
}

/* =========================================================
   Writes
   ========================================================= */

// POST /api/records
func (ctl *RecordController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RecordCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	record, err := ctl.Service.Submit(c.Context(), req.ToModel(userID))
	if err != nil {
		return ctl.mapServiceError(c, err, "Failed to submit record")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "SUCCESS CREATE RECORD", record)
}

// POST /api/records/all
// Marks every scheduled-but-unrecorded attendee of the roster for one day.
func (ctl *RecordController) CreateAll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RecordReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	count, err := ctl.Service.ReconcileDay(
		c.Context(),
		req.AttendanceID,
		req.Date,
		req.Day,
		model.RecordStatus(req.Status),
		userID,
	)
	if err != nil {
		return ctl.mapServiceError(c, err, "Failed to reconcile records")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "SUCCESS CREATE ALL RECORDS", fiber.Map{
		"created_count": count,
	})
}

// DELETE /api/records
func (ctl *RecordController) DeleteAll(c *fiber.Ctx) error {
	var req dto.RecordDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Service.DeleteAll(c.Context(), req.AttendanceID, req.IDs); err != nil {
		if errors.Is(err, service.ErrIDsOutsideRoster) {
			return helper.Error(c, fiber.StatusBadRequest,
				fmt.Sprintf("Only records under attendance %s can be deleted", req.AttendanceID))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete records")
	}

	return helper.Success(c, "SUCCESS DELETE RECORDS", nil)
}

/* =========================================================
   Reads
   ========================================================= */

// GET /api/attendances/:attendanceId/records
func (ctl *RecordController) ListByAttendance(c *fiber.Ctx) error {
	attendanceID, err := uuid.Parse(c.Params("attendanceId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	q, err := ctl.parseListQuery(c)
	if q == nil {
		return err
	}
	p := helper.ParsePagination(c)

	records, total, err := ctl.Service.FindByAttendanceID(c.Context(), attendanceID, q, p.Take, p.Skip)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list records")
	}

	return helper.Success(c, "SUCCESS LIST RECORDS", fiber.Map{
		"items": records,
		"total": total,
	})
}

// GET /api/attendees/:attendeeId/records
func (ctl *RecordController) ListByAttendee(c *fiber.Ctx) error {
	attendeeID, err := uuid.Parse(c.Params("attendeeId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendee id")
	}

	q, err := ctl.parseListQuery(c)
	if q == nil {
		return err
	}
	p := helper.ParsePagination(c)

	records, total, err := ctl.Service.FindByAttendeeID(c.Context(), attendeeID, q, p.Take, p.Skip)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list records")
	}

	return helper.Success(c, "SUCCESS LIST RECORDS", fiber.Map{
		"items": records,
		"total": total,
	})
}

/* =========================================================
   Excel export
   ========================================================= */

// GET /api/attendances/:attendanceId/records/excel
func (ctl *RecordController) ExcelByAttendance(c *fiber.Ctx) error {
	attendanceID, err := uuid.Parse(c.Params("attendanceId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	q, err := ctl.parseListQuery(c)
	if q == nil {
		return err
	}

	rows, err := ctl.Service.FindByAttendanceIDForExport(c.Context(), attendanceID, q)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to query export rows")
	}

	columns := ctl.exportColumns(c, attendanceID)
	buf, err := excel.Encode(excel.Project(rows, columns), columns)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build spreadsheet")
	}

	return sendXLSX(c, fmt.Sprintf("attendance-%s-%s.xlsx", attendanceID, time.Now().Format(model.DateLayout)), buf.Bytes())
}

// GET /api/attendees/:attendeeId/records/excel
func (ctl *RecordController) ExcelByAttendee(c *fiber.Ctx) error {
	attendeeID, err := uuid.Parse(c.Params("attendeeId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendee id")
	}

	q, err := ctl.parseListQuery(c)
	if q == nil {
		return err
	}

	rows, err := ctl.Service.FindByAttendeeIDForExport(c.Context(), attendeeID, q)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to query export rows")
	}

	columns := defaultExportColumns
	buf, err := excel.Encode(excel.Project(rows, columns), columns)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build spreadsheet")
	}

	return sendXLSX(c, fmt.Sprintf("attendee-%s-%s.xlsx", attendeeID, time.Now().Format(model.DateLayout)), buf.Bytes())
}

/* =========================================================
   Internals
   ========================================================= */

func (ctl *RecordController) parseListQuery(c *fiber.Ctx) (*dto.RecordListQuery, error) {
	var q dto.RecordListQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := ctl.Validator.Struct(q); err != nil {
		return nil, helper.ValidationError(c, err)
	}
	return &q, nil
}

// exportColumns applies label overrides from the roster settings, if any.
func (ctl *RecordController) exportColumns(c *fiber.Ctx, attendanceID uuid.UUID) []excel.Column {
	columns := make([]excel.Column, len(defaultExportColumns))
	copy(columns, defaultExportColumns)

	var attendance attendanceModel.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_id = ?", attendanceID).
		First(&attendance).Error; err != nil {
		return columns
	}
	if len(attendance.AttendanceSettings) == 0 {
		return columns
	}

	var settings struct {
		ExportLabels map[string]string `json:"export_labels"`
	}
	if err := json.Unmarshal(attendance.AttendanceSettings, &settings); err != nil {
		return columns
	}
	for i := range columns {
		if label, ok := settings.ExportLabels[columns[i].Key]; ok && label != "" {
			columns[i].Label = label
		}
	}
	return columns
}

func (ctl *RecordController) mapServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrDayMismatch):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Record not found")
	default:
		return helper.Error(c, fiber.StatusInternalServerError, fallback)
	}
}

func sendXLSX(c *fiber.Ctx, filename string, payload []byte) error {
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(payload)
}
