// internals/features/attendance/schedules/dto/schedule_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "attendanceku_backend/internals/features/attendance/schedules/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type ScheduleCreateRequest struct {
	ScheduleAttendeeID uuid.UUID `json:"schedule_attendee_id" validate:"required"`
	ScheduleDay        string    `json:"schedule_day" validate:"required,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY"`
	ScheduleTime       string    `json:"schedule_time" validate:"required,len=4"`
}

func (in *ScheduleCreateRequest) ToModel(createID uuid.UUID) *model.ScheduleModel {
	return &model.ScheduleModel{
		ScheduleAttendeeID: in.ScheduleAttendeeID,
		ScheduleDay:        strings.ToUpper(strings.TrimSpace(in.ScheduleDay)),
		ScheduleTime:       strings.TrimSpace(in.ScheduleTime),
		ScheduleCreateID:   createID,
	}
}

/* =========================================================
   DELETE (batch)
   ========================================================= */

type ScheduleDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1,dive,required"`
}
