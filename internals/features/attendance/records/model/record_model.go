// internals/features/attendance/records/model/record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecordStatus string

const (
	RecordStatusPresent RecordStatus = "PRESENT"
	RecordStatusAbsent  RecordStatus = "ABSENT"
	RecordStatusLate    RecordStatus = "LATE"
)

// DateLayout: dates are naive YYYY-MM-DD calendar values throughout.
// No timezone is attached anywhere, so a record never shifts across a
// day boundary.
const DateLayout = "2006-01-02"

// Weekday tokens indexed by time.Weekday (Sunday = 0).
var dayTokens = [7]string{
	"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY",
}

// DayOfDate returns the weekday token of a YYYY-MM-DD date.
func DayOfDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	return dayTokens[int(t.Weekday())], nil
}

// RecordModel is one attendee's dated attendance outcome. The unique index
// on (attendee, date) is what the submit upsert and the reconciliation
// anti-join both key on: at most one row per attendee per calendar day.
type RecordModel struct {
	// PK
	RecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:record_id" json:"record_id"`

	// FK + conflict key
	RecordAttendeeID uuid.UUID `gorm:"type:uuid;not null;column:record_attendee_id;uniqueIndex:uq_records_attendee_date" json:"record_attendee_id"`
	RecordDate       string    `gorm:"type:varchar(10);not null;column:record_date;uniqueIndex:uq_records_attendee_date" json:"record_date"`

	RecordDay    string       `gorm:"type:varchar(10);not null;column:record_day" json:"record_day"`
	RecordStatus RecordStatus `gorm:"type:varchar(10);not null;column:record_status;index:idx_records_status" json:"record_status"`

	// Only meaningful while status = ABSENT; stripped otherwise at write time
	RecordLateReason *string `gorm:"type:text;column:record_late_reason" json:"record_late_reason,omitempty"`

	// Audit
	RecordCreateID uuid.UUID `gorm:"type:uuid;not null;column:record_create_id" json:"record_create_id"`

	// Timestamps
	RecordCreatedAt time.Time      `gorm:"column:record_created_at;autoCreateTime" json:"record_created_at"`
	RecordUpdatedAt time.Time      `gorm:"column:record_updated_at;autoUpdateTime" json:"record_updated_at"`
	RecordDeletedAt gorm.DeletedAt `gorm:"column:record_deleted_at;index" json:"record_deleted_at,omitempty"`
}

func (RecordModel) TableName() string {
	return "records"
}

func (m *RecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.RecordID == uuid.Nil {
		m.RecordID = uuid.New()
	}
	return nil
}
