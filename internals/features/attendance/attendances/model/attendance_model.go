// internals/features/attendance/attendances/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AttendanceModel is the roster: the organizational unit owning attendees,
// schedules and records.
type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceTitle       string  `gorm:"type:varchar(100);not null;column:attendance_title" json:"attendance_title"`
	AttendanceDescription *string `gorm:"type:text;column:attendance_description" json:"attendance_description,omitempty"`

	// Per-roster settings (e.g. export column label overrides), free-form JSON
	AttendanceSettings datatypes.JSON `gorm:"column:attendance_settings" json:"attendance_settings,omitempty"`

	// Audit
	AttendanceCreateID uuid.UUID `gorm:"type:uuid;not null;column:attendance_create_id" json:"attendance_create_id"`

	// Timestamps
	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
