// internals/features/attendance/attendees/service/attendee_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "attendanceku_backend/internals/features/attendance/attendees/model"
	scheduleModel "attendanceku_backend/internals/features/attendance/schedules/model"
)

var ErrIDsOutsideRoster = errors.New("ids outside roster")

type AttendeeService struct {
	DB *gorm.DB
}

func NewAttendeeService(db *gorm.DB) *AttendeeService {
	return &AttendeeService{DB: db}
}

func (s *AttendeeService) Create(ctx context.Context, m *model.AttendeeModel) (*model.AttendeeModel, error) {
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *AttendeeService) FindByAttendanceID(ctx context.Context, attendanceID uuid.UUID) ([]model.AttendeeModel, error) {
	var attendees []model.AttendeeModel
	err := s.DB.WithContext(ctx).
		Where("attendee_attendance_id = ?", attendanceID).
		Order("attendee_name ASC").
		Find(&attendees).Error
	return attendees, err
}

func (s *AttendeeService) FindOneByID(ctx context.Context, id uuid.UUID) (*model.AttendeeModel, error) {
	var attendee model.AttendeeModel
	if err := s.DB.WithContext(ctx).Where("attendee_id = ?", id).First(&attendee).Error; err != nil {
		return nil, err
	}
	return &attendee, nil
}

// DeleteAll soft-deletes a batch of attendees and their schedules. Every id
// must belong to the roster or the whole batch is rejected.
func (s *AttendeeService) DeleteAll(ctx context.Context, attendanceID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		err := tx.Model(&model.AttendeeModel{}).
			Where("attendee_attendance_id = ?", attendanceID).
			Where("attendee_id IN ?", ids).
			Count(&owned).Error
		if err != nil {
			return err
		}
		if owned != int64(len(ids)) {
			return ErrIDsOutsideRoster
		}

		if err := tx.Where("attendee_id IN ?", ids).Delete(&model.AttendeeModel{}).Error; err != nil {
			return err
		}
		// cascade: a removed attendee keeps no live weekly slots
		return tx.Where("schedule_attendee_id IN ?", ids).Delete(&scheduleModel.ScheduleModel{}).Error
	})
}
