// internals/features/attendance/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleModel is an attendee's recurring weekly commitment (weekday + time slot).
type ScheduleModel struct {
	// PK
	ScheduleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:schedule_id" json:"schedule_id"`

	// FK
	ScheduleAttendeeID uuid.UUID `gorm:"type:uuid;not null;column:schedule_attendee_id;index:idx_schedules_attendee" json:"schedule_attendee_id"`

	// Weekday token (SUNDAY..SATURDAY) + "HHMM" time slot
	ScheduleDay  string `gorm:"type:varchar(10);not null;column:schedule_day;index:idx_schedules_day" json:"schedule_day"`
	ScheduleTime string `gorm:"type:char(4);not null;column:schedule_time" json:"schedule_time"`

	// Audit
	ScheduleCreateID uuid.UUID `gorm:"type:uuid;not null;column:schedule_create_id" json:"schedule_create_id"`

	// Timestamps
	ScheduleCreatedAt time.Time      `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time      `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;index" json:"schedule_deleted_at,omitempty"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}

func (m *ScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScheduleID == uuid.Nil {
		m.ScheduleID = uuid.New()
	}
	return nil
}
