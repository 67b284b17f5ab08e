// internals/features/attendance/schedules/service/schedule_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	model "attendanceku_backend/internals/features/attendance/schedules/model"
	"attendanceku_backend/internals/testutil"
)

func TestValidateAttendTime(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"0000", true},
		{"0930", true},
		{"2359", true},
		{"2400", false},
		{"0060", false},
		{"2460", false},
		{"930", false},
		{"09300", false},
		{"", false},
		{"ab30", false},
		{"09:0", false},
	}

	for _, tc := range cases {
		if got := ValidateAttendTime(tc.raw); got != tc.want {
			t.Errorf("ValidateAttendTime(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestCreateRejectsInvalidTime(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewScheduleService(db)

	_, err := svc.Create(context.Background(), &model.ScheduleModel{
		ScheduleAttendeeID: uuid.New(),
		ScheduleDay:        "MONDAY",
		ScheduleTime:       "2500",
		ScheduleCreateID:   uuid.New(),
	})
	if err != ErrInvalidAttendTime {
		t.Fatalf("expected ErrInvalidAttendTime, got %v", err)
	}

	var n int64
	if err := db.Model(&model.ScheduleModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("rejected create must not persist, found %d rows", n)
	}
}

func TestCreateAndListByAttendee(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewScheduleService(db)
	attendee := uuid.New()

	for _, slot := range []struct{ day, time string }{
		{"MONDAY", "0900"},
		{"WEDNESDAY", "1830"},
	} {
		if _, err := svc.Create(context.Background(), &model.ScheduleModel{
			ScheduleAttendeeID: attendee,
			ScheduleDay:        slot.day,
			ScheduleTime:       slot.time,
			ScheduleCreateID:   uuid.New(),
		}); err != nil {
			t.Fatalf("create %s: %v", slot.day, err)
		}
	}

	schedules, err := svc.FindByAttendeeID(context.Background(), attendee)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(schedules) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(schedules))
	}
}

func TestDeleteAllSoftDeletes(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewScheduleService(db)
	attendee := uuid.New()

	created, err := svc.Create(context.Background(), &model.ScheduleModel{
		ScheduleAttendeeID: attendee,
		ScheduleDay:        "FRIDAY",
		ScheduleTime:       "0700",
		ScheduleCreateID:   uuid.New(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteAll(context.Background(), []uuid.UUID{created.ScheduleID}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	schedules, err := svc.FindByAttendeeID(context.Background(), attendee)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(schedules) != 0 {
		t.Fatalf("soft-deleted schedules must be excluded, got %d", len(schedules))
	}

	var kept int64
	if err := db.Unscoped().Model(&model.ScheduleModel{}).Count(&kept).Error; err != nil {
		t.Fatalf("count unscoped: %v", err)
	}
	if kept != 1 {
		t.Fatalf("soft delete must retain the row, found %d", kept)
	}
}
