// internals/features/attendance/attendees/model/attendee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendeeModel is a tracked member belonging to exactly one roster.
type AttendeeModel struct {
	// PK
	AttendeeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendee_id" json:"attendee_id"`

	// Roster FK (authorization boundary for record deletion)
	AttendeeAttendanceID uuid.UUID `gorm:"type:uuid;not null;column:attendee_attendance_id;index:idx_attendees_attendance" json:"attendee_attendance_id"`

	AttendeeName        string  `gorm:"type:varchar(64);not null;column:attendee_name" json:"attendee_name"`
	AttendeeAge         *int    `gorm:"column:attendee_age" json:"attendee_age,omitempty"`
	AttendeeDescription *string `gorm:"type:text;column:attendee_description" json:"attendee_description,omitempty"`

	// Audit
	AttendeeCreateID uuid.UUID `gorm:"type:uuid;not null;column:attendee_create_id" json:"attendee_create_id"`

	// Timestamps
	AttendeeCreatedAt time.Time      `gorm:"column:attendee_created_at;autoCreateTime" json:"attendee_created_at"`
	AttendeeUpdatedAt time.Time      `gorm:"column:attendee_updated_at;autoUpdateTime" json:"attendee_updated_at"`
	AttendeeDeletedAt gorm.DeletedAt `gorm:"column:attendee_deleted_at;index" json:"attendee_deleted_at,omitempty"`
}

func (AttendeeModel) TableName() string {
	return "attendees"
}

func (m *AttendeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendeeID == uuid.Nil {
		m.AttendeeID = uuid.New()
	}
	return nil
}
