// internals/features/attendance/records/service/record_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "attendanceku_backend/internals/features/attendance/records/dto"
	model "attendanceku_backend/internals/features/attendance/records/model"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrDayMismatch      = errors.New("day does not match date")
	ErrIDsOutsideRoster = errors.New("ids outside roster")
)

type RecordService struct {
	DB *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{DB: db}
}

/* =========================================================
   Submit (idempotent upsert on (attendee, date))
   ========================================================= */

// Submit persists a single record. The weekday is recomputed from the date
// and never trusted from the caller; a non-ABSENT status drops the late
// reason. Conflicts on (attendee, date) update the existing row in one
// atomic statement, so resubmitting converges to the latest submission.
func (s *RecordService) Submit(ctx context.Context, m *model.RecordModel) (*model.RecordModel, error) {
	realDay, err := model.DayOfDate(m.RecordDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if m.RecordDay != realDay {
		return nil, ErrDayMismatch
	}

	if m.RecordStatus != model.RecordStatusAbsent {
		m.RecordLateReason = nil
	}

	assignments := clause.AssignmentColumns([]string{
		"record_day", "record_status", "record_late_reason", "record_create_id", "record_updated_at",
	})
	// a conflicting soft-deleted row is revived rather than left flagged
	assignments = append(assignments, clause.Assignment{
		Column: clause.Column{Name: "record_deleted_at"},
		Value:  nil,
	})

	err = s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_attendee_id"}, {Name: "record_date"}},
		DoUpdates: assignments,
	}).Create(m).Error
	if err != nil {
		return nil, err
	}

	// re-read the persisted row; on conflict the stored id differs from m's
	var out model.RecordModel
	err = s.DB.WithContext(ctx).
		Where("record_attendee_id = ? AND record_date = ?", m.RecordAttendeeID, m.RecordDate).
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

/* =========================================================
   Reconcile (bulk insert-the-missing for one day)
   ========================================================= */

// ReconcileDay inserts a record with the given default status for every
// live attendee of the roster who has a live schedule on that weekday and
// no record yet for the date. One set-based statement: existing records
// are never touched, and two overlapping calls cannot double-insert.
// Returns the number of rows inserted; zero is a valid result.
func (s *RecordService) ReconcileDay(ctx context.Context, attendanceID uuid.UUID, date, day string, status model.RecordStatus, createID uuid.UUID) (int64, error) {
	realDay, err := model.DayOfDate(date)
	if err != nil {
		return 0, ErrInvalidDate
	}
	if day != realDay {
		return 0, ErrDayMismatch
	}

	res := s.DB.WithContext(ctx).Exec(`
INSERT INTO records (record_attendee_id, record_date, record_day, record_status, record_create_id, record_created_at, record_updated_at)
SELECT DISTINCT a.attendee_id, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
FROM attendees a
JOIN schedules s ON s.schedule_attendee_id = a.attendee_id
	AND s.schedule_day = ?
	AND s.schedule_deleted_at IS NULL
LEFT JOIN records r ON r.record_attendee_id = a.attendee_id
	AND r.record_date = ?
WHERE a.attendee_attendance_id = ?
	AND a.attendee_deleted_at IS NULL
	AND r.record_id IS NULL`,
		date, day, status, createID, day, date, attendanceID)

	return res.RowsAffected, res.Error
}

/* =========================================================
   Filtered reads
   ========================================================= */

// FindByAttendanceID lists a roster's records with optional filters.
// take <= 0 disables paging; the returned total always reflects the full
// filtered set, never the page.
func (s *RecordService) FindByAttendanceID(ctx context.Context, attendanceID uuid.UUID, q *dto.RecordListQuery, take, skip int) ([]model.RecordModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.RecordModel{}).
		Joins("JOIN attendees ON attendees.attendee_id = records.record_attendee_id AND attendees.attendee_deleted_at IS NULL").
		Where("attendees.attendee_attendance_id = ?", attendanceID)
	return s.listAndCount(q.BuildQuery(tx), take, skip)
}

// FindByAttendeeID lists one attendee's records with optional filters.
func (s *RecordService) FindByAttendeeID(ctx context.Context, attendeeID uuid.UUID, q *dto.RecordListQuery, take, skip int) ([]model.RecordModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.RecordModel{}).
		Where("records.record_attendee_id = ?", attendeeID)
	return s.listAndCount(q.BuildQuery(tx), take, skip)
}

func (s *RecordService) listAndCount(tx *gorm.DB, take, skip int) ([]model.RecordModel, int64, error) {
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx = tx.Order("records.record_date ASC, records.record_created_at ASC")
	if take > 0 {
		tx = tx.Limit(take).Offset(skip)
	}

	var records []model.RecordModel
	if err := tx.Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// FindOneByID looks a record up by id; gorm.ErrRecordNotFound propagates.
func (s *RecordService) FindOneByID(ctx context.Context, id uuid.UUID) (*model.RecordModel, error) {
	var record model.RecordModel
	if err := s.DB.WithContext(ctx).Where("record_id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

/* =========================================================
   Export reads (raw joined rows, ordered by attendee name)
   ========================================================= */

const exportSelect = "attendees.attendee_name AS attendee_name, " +
	"attendees.attendee_age AS attendee_age, " +
	"records.record_day AS record_day, " +
	"records.record_date AS record_date, " +
	"records.record_status AS record_status"

// FindByAttendanceIDForExport returns raw record × attendee rows for the
// spreadsheet projector, ordered by attendee name ascending.
func (s *RecordService) FindByAttendanceIDForExport(ctx context.Context, attendanceID uuid.UUID, q *dto.RecordListQuery) ([]map[string]interface{}, error) {
	tx := s.DB.WithContext(ctx).Model(&model.RecordModel{}).
		Select(exportSelect).
		Joins("JOIN attendees ON attendees.attendee_id = records.record_attendee_id AND attendees.attendee_deleted_at IS NULL").
		Where("attendees.attendee_attendance_id = ?", attendanceID)

	var rows []map[string]interface{}
	err := q.BuildQuery(tx).
		Order("attendees.attendee_name ASC").
		Find(&rows).Error
	return rows, err
}

// FindByAttendeeIDForExport is the single-attendee variant.
func (s *RecordService) FindByAttendeeIDForExport(ctx context.Context, attendeeID uuid.UUID, q *dto.RecordListQuery) ([]map[string]interface{}, error) {
	tx := s.DB.WithContext(ctx).Model(&model.RecordModel{}).
		Select(exportSelect).
		Joins("JOIN attendees ON attendees.attendee_id = records.record_attendee_id").
		Where("records.record_attendee_id = ?", attendeeID)

	var rows []map[string]interface{}
	err := q.BuildQuery(tx).
		Order("records.record_date ASC").
		Find(&rows).Error
	return rows, err
}

/* =========================================================
   Batch delete (all-or-nothing, roster-guarded)
   ========================================================= */

// DeleteAll soft-deletes the given records only if every id belongs to an
// attendee of the roster. Guard and delete run in one transaction, so a
// failed batch never leaves the set partially flagged.
func (s *RecordService) DeleteAll(ctx context.Context, attendanceID uuid.UUID, ids []uuid.UUID) error {
	uniq := dedupeIDs(ids)
	if len(uniq) == 0 {
		return nil
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		err := tx.Model(&model.RecordModel{}).
			Joins("JOIN attendees ON attendees.attendee_id = records.record_attendee_id AND attendees.attendee_deleted_at IS NULL").
			Where("attendees.attendee_attendance_id = ?", attendanceID).
			Where("records.record_id IN ?", uniq).
			Count(&owned).Error
		if err != nil {
			return err
		}
		if owned != int64(len(uniq)) {
			return ErrIDsOutsideRoster
		}

		return tx.Where("record_id IN ?", uniq).Delete(&model.RecordModel{}).Error
	})
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
