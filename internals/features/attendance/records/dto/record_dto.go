// internals/features/attendance/records/dto/record_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "attendanceku_backend/internals/features/attendance/records/model"
)

/* =========================================================
   CREATE (single submit, upserted on (attendee, date))
   ========================================================= */

type RecordCreateRequest struct {
	RecordAttendeeID uuid.UUID `json:"record_attendee_id" validate:"required"`
	RecordDate       string    `json:"record_date" validate:"required,len=10"`
	RecordDay        string    `json:"record_day" validate:"required,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY"`
	RecordStatus     string    `json:"record_status" validate:"required,oneof=PRESENT ABSENT LATE"`
	RecordLateReason *string   `json:"record_late_reason" validate:"omitempty,max=500"`
}

func (in *RecordCreateRequest) ToModel(createID uuid.UUID) *model.RecordModel {
	return &model.RecordModel{
		RecordAttendeeID: in.RecordAttendeeID,
		RecordDate:       strings.TrimSpace(in.RecordDate),
		RecordDay:        strings.ToUpper(strings.TrimSpace(in.RecordDay)),
		RecordStatus:     model.RecordStatus(strings.ToUpper(strings.TrimSpace(in.RecordStatus))),
		RecordLateReason: in.RecordLateReason,
		RecordCreateID:   createID,
	}
}

/* =========================================================
   CREATE ALL (reconcile one day against schedules)
   ========================================================= */

type RecordReconcileRequest struct {
	AttendanceID uuid.UUID `json:"attendance_id" validate:"required"`
	Date         string    `json:"date" validate:"required,len=10"`
	Day          string    `json:"day" validate:"required,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY"`
	Status       string    `json:"status" validate:"required,oneof=PRESENT ABSENT LATE"`
}

/* =========================================================
   DELETE (batch, ownership-guarded)
   ========================================================= */

type RecordDeleteRequest struct {
	AttendanceID uuid.UUID   `json:"attendance_id" validate:"required"`
	IDs          []uuid.UUID `json:"ids" validate:"required,min=1,dive,required"`
}

/* =========================================================
   LIST / FILTER
   ========================================================= */

// RecordListQuery: all filters optional, combined with AND. Year+month
// narrows to that month (month is zero-padded); year alone matches the
// whole year; month without year is ignored. DateFrom is inclusive,
// DateTo exclusive.
type RecordListQuery struct {
	Date     *string `query:"date" validate:"omitempty,len=10"`
	Day      *string `query:"day" validate:"omitempty,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY"`
	Status   *string `query:"status" validate:"omitempty,oneof=PRESENT ABSENT LATE"`
	Year     *int    `query:"year" validate:"omitempty,min=1970,max=9999"`
	Month    *int    `query:"month" validate:"omitempty,min=1,max=12"`
	DateFrom *string `query:"date_from" validate:"omitempty,len=10"`
	DateTo   *string `query:"date_to" validate:"omitempty,len=10"`
}

// BuildQuery applies the filter set to tx (no Find/Count here).
func (q *RecordListQuery) BuildQuery(tx *gorm.DB) *gorm.DB {
	if q.Date != nil && *q.Date != "" {
		tx = tx.Where("records.record_date = ?", *q.Date)
	}
	if q.Day != nil && *q.Day != "" {
		tx = tx.Where("records.record_day = ?", strings.ToUpper(*q.Day))
	}
	if q.Status != nil && *q.Status != "" {
		tx = tx.Where("records.record_status = ?", strings.ToUpper(*q.Status))
	}

	if q.Year != nil && q.Month != nil {
		tx = tx.Where("records.record_date LIKE ?", fmt.Sprintf("%04d-%02d-%%", *q.Year, *q.Month))
	} else if q.Year != nil {
		tx = tx.Where("records.record_date LIKE ?", fmt.Sprintf("%04d-%%", *q.Year))
	}

	if q.DateFrom != nil && *q.DateFrom != "" {
		tx = tx.Where("records.record_date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil && *q.DateTo != "" {
		tx = tx.Where("records.record_date < ?", *q.DateTo)
	}

	return tx
}
