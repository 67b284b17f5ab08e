// internals/features/attendance/attendances/dto/attendance_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "attendanceku_backend/internals/features/attendance/attendances/model"
)

type AttendanceCreateRequest struct {
	AttendanceTitle       string         `json:"attendance_title" validate:"required,max=100"`
	AttendanceDescription *string        `json:"attendance_description" validate:"omitempty,max=1000"`
	AttendanceSettings    datatypes.JSON `json:"attendance_settings" validate:"omitempty"`
}

func (in *AttendanceCreateRequest) ToModel(createID uuid.UUID) *model.AttendanceModel {
	return &model.AttendanceModel{
		AttendanceTitle:       strings.TrimSpace(in.AttendanceTitle),
		AttendanceDescription: trimPtr(in.AttendanceDescription),
		AttendanceSettings:    in.AttendanceSettings,
		AttendanceCreateID:    createID,
	}
}

type AttendanceUpdateRequest struct {
	AttendanceTitle       *string        `json:"attendance_title" validate:"omitempty,max=100"`
	AttendanceDescription *string        `json:"attendance_description" validate:"omitempty,max=1000"`
	AttendanceSettings    datatypes.JSON `json:"attendance_settings" validate:"omitempty"`
}

// ApplyTo mutates only the supplied fields.
func (p *AttendanceUpdateRequest) ApplyTo(m *model.AttendanceModel) {
	if p.AttendanceTitle != nil {
		m.AttendanceTitle = strings.TrimSpace(*p.AttendanceTitle)
	}
	if p.AttendanceDescription != nil {
		m.AttendanceDescription = trimPtr(p.AttendanceDescription)
	}
	if len(p.AttendanceSettings) > 0 {
		m.AttendanceSettings = p.AttendanceSettings
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
