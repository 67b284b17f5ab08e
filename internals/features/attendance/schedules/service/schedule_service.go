// internals/features/attendance/schedules/service/schedule_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "attendanceku_backend/internals/features/attendance/schedules/model"
)

var ErrInvalidAttendTime = errors.New("invalid time format")

type ScheduleService struct {
	DB *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

// ValidateAttendTime checks a 4-char "HHMM" token: hour < 24, minute < 60.
// Pure predicate, callers translate false into a rejection.
func ValidateAttendTime(raw string) bool {
	if len(raw) != 4 {
		return false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}
	hour := int(raw[0]-'0')*10 + int(raw[1]-'0')
	minute := int(raw[2]-'0')*10 + int(raw[3]-'0')
	return hour < 24 && minute < 60
}

func (s *ScheduleService) Create(ctx context.Context, m *model.ScheduleModel) (*model.ScheduleModel, error) {
	if !ValidateAttendTime(m.ScheduleTime) {
		return nil, ErrInvalidAttendTime
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ScheduleService) FindByAttendeeID(ctx context.Context, attendeeID uuid.UUID) ([]model.ScheduleModel, error) {
	var schedules []model.ScheduleModel
	err := s.DB.WithContext(ctx).
		Where("schedule_attendee_id = ?", attendeeID).
		Order("schedule_day ASC, schedule_time ASC").
		Find(&schedules).Error
	return schedules, err
}

// FindByAttendanceID lists every schedule under a roster (join through attendees).
func (s *ScheduleService) FindByAttendanceID(ctx context.Context, attendanceID uuid.UUID) ([]model.ScheduleModel, error) {
	var schedules []model.ScheduleModel
	err := s.DB.WithContext(ctx).
		Joins("JOIN attendees ON attendees.attendee_id = schedules.schedule_attendee_id AND attendees.attendee_deleted_at IS NULL").
		Where("attendees.attendee_attendance_id = ?", attendanceID).
		Find(&schedules).Error
	return schedules, err
}

// DeleteAll soft-deletes a batch of schedules by id.
func (s *ScheduleService) DeleteAll(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).
		Where("schedule_id IN ?", ids).
		Delete(&model.ScheduleModel{}).Error
}

// DeleteByAttendeeIDs soft-deletes every schedule of the given attendees
// (cascade used when attendees are removed).
func (s *ScheduleService) DeleteByAttendeeIDs(tx *gorm.DB, attendeeIDs []uuid.UUID) error {
	if len(attendeeIDs) == 0 {
		return nil
	}
	return tx.
		Where("schedule_attendee_id IN ?", attendeeIDs).
		Delete(&model.ScheduleModel{}).Error
}
