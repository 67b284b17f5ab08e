// internals/features/attendance/records/service/record_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "attendanceku_backend/internals/features/attendance/attendances/model"
	attendeeModel "attendanceku_backend/internals/features/attendance/attendees/model"
	dto "attendanceku_backend/internals/features/attendance/records/dto"
	model "attendanceku_backend/internals/features/attendance/records/model"
	scheduleModel "attendanceku_backend/internals/features/attendance/schedules/model"
	"attendanceku_backend/internals/testutil"
)

// 2024-01-01 is a Monday, 2024-01-07 a Sunday.
const (
	monday = "2024-01-01"
	sunday = "2024-01-07"
)

var actorID = uuid.New()

type fixture struct {
	db      *gorm.DB
	svc     *RecordService
	rosterA uuid.UUID
	rosterB uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.OpenTestDB(t)
	f := &fixture{db: db, svc: NewRecordService(db)}
	f.rosterA = f.createRoster(t, "morning class")
	f.rosterB = f.createRoster(t, "evening class")
	return f
}

func (f *fixture) createRoster(t *testing.T, title string) uuid.UUID {
	t.Helper()
	roster := &attendanceModel.AttendanceModel{
		AttendanceTitle:    title,
		AttendanceCreateID: actorID,
	}
	if err := f.db.Create(roster).Error; err != nil {
		t.Fatalf("create roster: %v", err)
	}
	return roster.AttendanceID
}

func (f *fixture) createAttendee(t *testing.T, rosterID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	attendee := &attendeeModel.AttendeeModel{
		AttendeeAttendanceID: rosterID,
		AttendeeName:         name,
		AttendeeCreateID:     actorID,
	}
	if err := f.db.Create(attendee).Error; err != nil {
		t.Fatalf("create attendee: %v", err)
	}
	return attendee.AttendeeID
}

func (f *fixture) createSchedule(t *testing.T, attendeeID uuid.UUID, day string) uuid.UUID {
	t.Helper()
	schedule := &scheduleModel.ScheduleModel{
		ScheduleAttendeeID: attendeeID,
		ScheduleDay:        day,
		ScheduleTime:       "0900",
		ScheduleCreateID:   actorID,
	}
	if err := f.db.Create(schedule).Error; err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	return schedule.ScheduleID
}

func (f *fixture) submit(t *testing.T, attendeeID uuid.UUID, date, day string, status model.RecordStatus, lateReason *string) *model.RecordModel {
	t.Helper()
	record, err := f.svc.Submit(context.Background(), &model.RecordModel{
		RecordAttendeeID: attendeeID,
		RecordDate:       date,
		RecordDay:        day,
		RecordStatus:     status,
		RecordLateReason: lateReason,
		RecordCreateID:   actorID,
	})
	if err != nil {
		t.Fatalf("submit record: %v", err)
	}
	return record
}

func (f *fixture) countRows(t *testing.T, attendeeID uuid.UUID, date string) int64 {
	t.Helper()
	var n int64
	err := f.db.Unscoped().Model(&model.RecordModel{}).
		Where("record_attendee_id = ? AND record_date = ?", attendeeID, date).
		Count(&n).Error
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

func strPtr(s string) *string { return &s }

/* =========================================================
   Submit
   ========================================================= */

func TestSubmitIsIdempotentPerAttendeeAndDate(t *testing.T) {
	f := newFixture(t)
	attendee := f.createAttendee(t, f.rosterA, "alice")

	statuses := []model.RecordStatus{
		model.RecordStatusPresent,
		model.RecordStatusAbsent,
		model.RecordStatusLate,
		model.RecordStatusPresent,
		model.RecordStatusLate,
	}
	for _, status := range statuses {
		f.submit(t, attendee, monday, "MONDAY", status, nil)
	}

	if n := f.countRows(t, attendee, monday); n != 1 {
		t.Fatalf("expected exactly 1 row for the (attendee, date) pair, got %d", n)
	}

	var stored model.RecordModel
	if err := f.db.Where("record_attendee_id = ? AND record_date = ?", attendee, monday).First(&stored).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if stored.RecordStatus != model.RecordStatusLate {
		t.Fatalf("expected last submitted status LATE, got %s", stored.RecordStatus)
	}
}

func TestSubmitRejectsDayDateMismatch(t *testing.T) {
	f := newFixture(t)
	attendee := f.createAttendee(t, f.rosterA, "alice")

	for _, status := range []model.RecordStatus{model.RecordStatusPresent, model.RecordStatusAbsent, model.RecordStatusLate} {
		_, err := f.svc.Submit(context.Background(), &model.RecordModel{
			RecordAttendeeID: attendee,
			RecordDate:       monday,
			RecordDay:        "TUESDAY",
			RecordStatus:     status,
			RecordCreateID:   actorID,
		})
		if err != ErrDayMismatch {
			t.Fatalf("status %s: expected ErrDayMismatch, got %v", status, err)
		}
	}

	if n := f.countRows(t, attendee, monday); n != 0 {
		t.Fatalf("rejected submit must not write, found %d rows", n)
	}
}

func TestSubmitRejectsMalformedDate(t *testing.T) {
	f := newFixture(t)
	attendee := f.createAttendee(t, f.rosterA, "alice")

	_, err := f.svc.Submit(context.Background(), &model.RecordModel{
		RecordAttendeeID: attendee,
		RecordDate:       "01-01-2024",
		RecordDay:        "MONDAY",
		RecordStatus:     model.RecordStatusPresent,
		RecordCreateID:   actorID,
	})
	if err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestSubmitStripsLateReasonUnlessAbsent(t *testing.T) {
	f := newFixture(t)
	attendee := f.createAttendee(t, f.rosterA, "alice")

	record := f.submit(t, attendee, monday, "MONDAY", model.RecordStatusPresent, strPtr("overslept"))
	if record.RecordLateReason != nil {
		t.Fatalf("PRESENT must strip late reason, got %q", *record.RecordLateReason)
	}

	record = f.submit(t, attendee, monday, "MONDAY", model.RecordStatusAbsent, strPtr("sick"))
	if record.RecordLateReason == nil || *record.RecordLateReason != "sick" {
		t.Fatalf("ABSENT must keep late reason, got %v", record.RecordLateReason)
	}

	record = f.submit(t, attendee, monday, "MONDAY", model.RecordStatusLate, strPtr("traffic"))
	if record.RecordLateReason != nil {
		t.Fatalf("LATE must strip late reason, got %q", *record.RecordLateReason)
	}
}

/* =========================================================
   ReconcileDay
   ========================================================= */

func TestReconcileInsertsOnlyScheduledWithoutRecord(t *testing.T) {
	f := newFixture(t)
	scheduled := f.createAttendee(t, f.rosterA, "alice")
	unscheduled := f.createAttendee(t, f.rosterA, "bob")
	f.createSchedule(t, scheduled, "MONDAY")

	count, err := f.svc.ReconcileDay(context.Background(), f.rosterA, monday, "MONDAY", model.RecordStatusPresent, actorID)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 inserted row, got %d", count)
	}

	if n := f.countRows(t, scheduled, monday); n != 1 {
		t.Fatalf("scheduled attendee should have a record, found %d", n)
	}
	if n := f.countRows(t, unscheduled, monday); n != 0 {
		t.Fatalf("unscheduled attendee must not get a record, found %d", n)
	}
}

func TestReconcileNeverTouchesExistingRecords(t *testing.T) {
	f := newFixture(t)
	withRecord := f.createAttendee(t, f.rosterA, "alice")
	missing := f.createAttendee(t, f.rosterA, "bob")
	f.createSchedule(t, withRecord, "MONDAY")
	f.createSchedule(t, missing, "MONDAY")

	f.submit(t, withRecord, monday, "MONDAY", model.RecordStatusLate, nil)

	count, err := f.svc.ReconcileDay(context.Background(), f.rosterA, monday, "MONDAY", model.RecordStatusPresent, actorID)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 inserted row (only the missing attendee), got %d", count)
	}

	var existing model.RecordModel
	if err := f.db.Where("record_attendee_id = ? AND record_date = ?", withRecord, monday).First(&existing).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if existing.RecordStatus != model.RecordStatusLate {
		t.Fatalf("reconcile must not overwrite existing record, status became %s", existing.RecordStatus)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	f := newFixture(t)
	attendee := f.createAttendee(t, f.rosterA, "alice")
	f.createSchedule(t, attendee, "MONDAY")

	first, err := f.svc.ReconcileDay(context.Background(), f.rosterA, monday, "MONDAY", model.RecordStatusPresent, actorID)
	if err != nil || first != 1 {
		t.Fatalf("first reconcile: count=%d err=%v", first, err)
	}
	second, err := f.svc.ReconcileDay(context.Background(), f.rosterA, monday, "MONDAY", model.RecordStatusPresent, actorID)
	if err != nil {
		t.Fatalf("second reconcile: %v", err)
	}
	if second != 0 {
		t.Fatalf("second reconcile must insert nothing, got %d", second)
	}
}

func TestReconcileSkipsDeletedAttendeesAndSchedules(t *testing.T) {
	f := newFixture(t)
	deletedAttendee := f.createAttendee(t, f.rosterA, "alice")
	deletedSchedule := f.createAttendee(t, f.rosterA, "bob")
	live := f.createAttendee(t, f.rosterA, "carol")

	f.createSchedule(t, deletedAttendee, "MONDAY")
	sched := f.createSchedule(t, deletedSchedule, "MONDAY")
	f.createSchedule(t, live, "MONDAY")

	if err := f.db.Where("attendee_id = ?", deletedAttendee).Delete(&attendeeModel.AttendeeModel{}).Error; err != nil {
		t.Fatalf("soft delete attendee: %v", err)
	}
	if err := f.db.Where("schedule_id = ?", sched).Delete(&scheduleModel.ScheduleModel{}).Error; err != nil {
		t.Fatalf("soft delete schedule: %v", err)
	}

	count, err := f.svc.ReconcileDay(context.Background(), f.rosterA, monday, "MONDAY", model.RecordStatusPresent, actorID)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if count != 1 {
		t.Fatalf("only the live attendee with a live schedule should be inserted, got %d", count)
	}
	if n := f.countRows(t, live, monday); n != 1 {
		t.Fatalf("live attendee missing record")
	}
}

func TestReconcileRejectsDayDateMismatch(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ReconcileDay(context.Background(), f.rosterA, monday, "SUNDAY", model.RecordStatusPresent, actorID)
	if err != ErrDayMismatch {
		t.Fatalf("expected ErrDayMismatch, got %v", err)
	}
}

func TestReconcileZeroIsNotAnError(t *testing.T) {
	f := newFixture(t)

	count, err := f.svc.ReconcileDay(context.Background(), f.rosterA, monday, "MONDAY", model.RecordStatusPresent, actorID)
	if err != nil {
		t.Fatalf("reconcile on empty roster: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0, got %d", count)
	}
}

/* =========================================================
   DeleteAll
   ========================================================= */

func TestDeleteAllRejectsIDsOutsideRoster(t *testing.T) {
	f := newFixture(t)
	ours := f.createAttendee(t, f.rosterA, "alice")
	theirs := f.createAttendee(t, f.rosterB, "mallory")

	r1 := f.submit(t, ours, monday, "MONDAY", model.RecordStatusPresent, nil)
	r2 := f.submit(t, ours, sunday, "SUNDAY", model.RecordStatusPresent, nil)
	r3 := f.submit(t, theirs, monday, "MONDAY", model.RecordStatusPresent, nil)

	err := f.svc.DeleteAll(context.Background(), f.rosterA, []uuid.UUID{r1.RecordID, r2.RecordID, r3.RecordID})
	if err != ErrIDsOutsideRoster {
		t.Fatalf("expected ErrIDsOutsideRoster, got %v", err)
	}

	// nothing may be flagged when the batch is rejected
	var deleted int64
	if err := f.db.Unscoped().Model(&model.RecordModel{}).
		Where("record_deleted_at IS NOT NULL").Count(&deleted).Error; err != nil {
		t.Fatalf("count deleted: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("rejected batch must delete nothing, found %d flagged rows", deleted)
	}
}

func TestDeleteAllSoftDeletesWholeBatch(t *testing.T) {
	f := newFixture(t)
	attendee := f.createAttendee(t, f.rosterA, "alice")

	r1 := f.submit(t, attendee, monday, "MONDAY", model.RecordStatusPresent, nil)
	r2 := f.submit(t, attendee, sunday, "SUNDAY", model.RecordStatusAbsent, nil)

	if err := f.svc.DeleteAll(context.Background(), f.rosterA, []uuid.UUID{r1.RecordID, r2.RecordID}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// rows are retained, only flagged
	var kept int64
	if err := f.db.Unscoped().Model(&model.RecordModel{}).Count(&kept).Error; err != nil {
		t.Fatalf("count unscoped: %v", err)
	}
	if kept != 2 {
		t.Fatalf("soft delete must retain rows, found %d", kept)
	}

	records, total, err := f.svc.FindByAttendeeID(context.Background(), attendee, &dto.RecordListQuery{}, 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 0 || len(records) != 0 {
		t.Fatalf("soft-deleted rows must be excluded from reads, got total=%d len=%d", total, len(records))
	}
}

func TestDeleteAllDedupesRequestedIDs(t *testing.T) {
	f := newFixture(t)
	attendee := f.createAttendee(t, f.rosterA, "alice")
	r1 := f.submit(t, attendee, monday, "MONDAY", model.RecordStatusPresent, nil)

	if err := f.svc.DeleteAll(context.Background(), f.rosterA, []uuid.UUID{r1.RecordID, r1.RecordID}); err != nil {
		t.Fatalf("duplicate ids in one batch should not trip the guard: %v", err)
	}
}

/* =========================================================
   Filtered reads + pagination
   ========================================================= */

func seedListFixture(t *testing.T, f *fixture) uuid.UUID {
	t.Helper()
	attendee := f.createAttendee(t, f.rosterA, "alice")
	f.submit(t, attendee, "2024-01-01", "MONDAY", model.RecordStatusPresent, nil)
	f.submit(t, attendee, "2024-01-08", "MONDAY", model.RecordStatusLate, nil)
	f.submit(t, attendee, "2024-02-05", "MONDAY", model.RecordStatusPresent, nil)
	f.submit(t, attendee, "2024-02-11", "SUNDAY", model.RecordStatusAbsent, strPtr("sick"))
	f.submit(t, attendee, "2025-01-06", "MONDAY", model.RecordStatusPresent, nil)
	return attendee
}

func TestListYearAndMonthPrecedence(t *testing.T) {
	f := newFixture(t)
	attendee := seedListFixture(t, f)

	year := 2024
	_, total, err := f.svc.FindByAttendeeID(context.Background(), attendee, &dto.RecordListQuery{Year: &year}, 0, 0)
	if err != nil {
		t.Fatalf("list by year: %v", err)
	}
	if total != 4 {
		t.Fatalf("year filter alone must match all months of 2024, got %d", total)
	}

	month := 2
	_, total, err = f.svc.FindByAttendeeID(context.Background(), attendee, &dto.RecordListQuery{Year: &year, Month: &month}, 0, 0)
	if err != nil {
		t.Fatalf("list by year+month: %v", err)
	}
	if total != 2 {
		t.Fatalf("year+month must narrow to February 2024, got %d", total)
	}
}

func TestListDateRangeBounds(t *testing.T) {
	f := newFixture(t)
	attendee := seedListFixture(t, f)

	from := "2024-01-08" // inclusive
	to := "2024-02-11"   // exclusive
	records, total, err := f.svc.FindByAttendeeID(context.Background(), attendee, &dto.RecordListQuery{DateFrom: &from, DateTo: &to}, 0, 0)
	if err != nil {
		t.Fatalf("list by range: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected [2024-01-08, 2024-02-11) to match 2 records, got %d", total)
	}
	for _, r := range records {
		if r.RecordDate < from || r.RecordDate >= to {
			t.Fatalf("record %s outside requested range", r.RecordDate)
		}
	}
}

func TestListExactMatchFilters(t *testing.T) {
	f := newFixture(t)
	attendee := seedListFixture(t, f)

	day := "SUNDAY"
	_, total, err := f.svc.FindByAttendeeID(context.Background(), attendee, &dto.RecordListQuery{Day: &day}, 0, 0)
	if err != nil {
		t.Fatalf("list by day: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 sunday record, got %d", total)
	}

	status := "PRESENT"
	_, total, err = f.svc.FindByAttendeeID(context.Background(), attendee, &dto.RecordListQuery{Status: &status}, 0, 0)
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 present records, got %d", total)
	}

	date := "2024-01-01"
	_, total, err = f.svc.FindByAttendeeID(context.Background(), attendee, &dto.RecordListQuery{Date: &date}, 0, 0)
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 record on %s, got %d", date, total)
	}
}

func TestListPaginationLeavesTotalUntouched(t *testing.T) {
	f := newFixture(t)
	attendee := seedListFixture(t, f)

	records, total, err := f.svc.FindByAttendeeID(context.Background(), attendee, &dto.RecordListQuery{}, 2, 0)
	if err != nil {
		t.Fatalf("paged list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected a 2-row page, got %d", len(records))
	}
	if total != 5 {
		t.Fatalf("total must ignore pagination, got %d", total)
	}

	_, unpagedTotal, err := f.svc.FindByAttendeeID(context.Background(), attendee, &dto.RecordListQuery{}, 0, 0)
	if err != nil {
		t.Fatalf("unpaged list: %v", err)
	}
	if total != unpagedTotal {
		t.Fatalf("paged total %d differs from unpaged total %d", total, unpagedTotal)
	}
}

func TestListByAttendanceScopesToRoster(t *testing.T) {
	f := newFixture(t)
	ours := f.createAttendee(t, f.rosterA, "alice")
	theirs := f.createAttendee(t, f.rosterB, "mallory")

	f.submit(t, ours, monday, "MONDAY", model.RecordStatusPresent, nil)
	f.submit(t, theirs, monday, "MONDAY", model.RecordStatusPresent, nil)

	_, total, err := f.svc.FindByAttendanceID(context.Background(), f.rosterA, &dto.RecordListQuery{}, 0, 0)
	if err != nil {
		t.Fatalf("list by roster: %v", err)
	}
	if total != 1 {
		t.Fatalf("roster scope must exclude other rosters, got %d", total)
	}
}

/* =========================================================
   Export rows
   ========================================================= */

func TestExportRowsOrderedByAttendeeName(t *testing.T) {
	f := newFixture(t)
	zoe := f.createAttendee(t, f.rosterA, "zoe")
	amy := f.createAttendee(t, f.rosterA, "amy")

	f.submit(t, zoe, monday, "MONDAY", model.RecordStatusPresent, nil)
	f.submit(t, amy, monday, "MONDAY", model.RecordStatusLate, nil)

	rows, err := f.svc.FindByAttendanceIDForExport(context.Background(), f.rosterA, &dto.RecordListQuery{})
	if err != nil {
		t.Fatalf("export query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 export rows, got %d", len(rows))
	}

	first, _ := rows[0]["attendee_name"].(string)
	second, _ := rows[1]["attendee_name"].(string)
	if first != "amy" || second != "zoe" {
		t.Fatalf("rows must be ordered by attendee name, got %q then %q", first, second)
	}
	for _, key := range []string{"attendee_name", "record_day", "record_date", "record_status"} {
		if _, ok := rows[0][key]; !ok {
			t.Fatalf("export row missing key %q", key)
		}
	}
}
