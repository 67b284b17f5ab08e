// internals/features/attendance/attendees/dto/attendee_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "attendanceku_backend/internals/features/attendance/attendees/model"
)

type AttendeeCreateRequest struct {
	AttendeeAttendanceID uuid.UUID `json:"attendee_attendance_id" validate:"required"`
	AttendeeName         string    `json:"attendee_name" validate:"required,max=64"`
	AttendeeAge          *int      `json:"attendee_age" validate:"omitempty,min=0,max=150"`
	AttendeeDescription  *string   `json:"attendee_description" validate:"omitempty,max=1000"`
}

func (in *AttendeeCreateRequest) ToModel(createID uuid.UUID) *model.AttendeeModel {
	return &model.AttendeeModel{
		AttendeeAttendanceID: in.AttendeeAttendanceID,
		AttendeeName:         strings.TrimSpace(in.AttendeeName),
		AttendeeAge:          in.AttendeeAge,
		AttendeeDescription:  in.AttendeeDescription,
		AttendeeCreateID:     createID,
	}
}

type AttendeeDeleteRequest struct {
	AttendanceID uuid.UUID   `json:"attendance_id" validate:"required"`
	IDs          []uuid.UUID `json:"ids" validate:"required,min=1,dive,required"`
}
