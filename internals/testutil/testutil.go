// internals/testutil/testutil.go
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// schema mirrors the production tables. Raw DDL keeps the tests honest
// about column names, defaults and the (attendee, date) uniqueness the
// upsert and reconciliation statements rely on.
const schema = `
CREATE TABLE users (
	user_id TEXT PRIMARY KEY,
	user_username TEXT NOT NULL UNIQUE,
	user_password TEXT NOT NULL,
	user_name TEXT,
	user_refresh_token TEXT,
	user_created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	user_updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	user_deleted_at DATETIME
);

CREATE TABLE attendances (
	attendance_id TEXT PRIMARY KEY,
	attendance_title TEXT NOT NULL,
	attendance_description TEXT,
	attendance_settings TEXT,
	attendance_create_id TEXT NOT NULL,
	attendance_created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	attendance_updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	attendance_deleted_at DATETIME
);

CREATE TABLE attendees (
	attendee_id TEXT PRIMARY KEY,
	attendee_attendance_id TEXT NOT NULL,
	attendee_name TEXT NOT NULL,
	attendee_age INTEGER,
	attendee_description TEXT,
	attendee_create_id TEXT NOT NULL,
	attendee_created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	attendee_updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	attendee_deleted_at DATETIME
);

CREATE TABLE schedules (
	schedule_id TEXT PRIMARY KEY,
	schedule_attendee_id TEXT NOT NULL,
	schedule_day TEXT NOT NULL,
	schedule_time TEXT NOT NULL,
	schedule_create_id TEXT NOT NULL,
	schedule_created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	schedule_updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	schedule_deleted_at DATETIME
);

CREATE TABLE records (
	record_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
	record_attendee_id TEXT NOT NULL,
	record_date TEXT NOT NULL,
	record_day TEXT NOT NULL,
	record_status TEXT NOT NULL,
	record_late_reason TEXT,
	record_create_id TEXT NOT NULL,
	record_created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	record_updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	record_deleted_at DATETIME,
	UNIQUE (record_attendee_id, record_date)
);
`

// OpenTestDB returns an isolated in-memory database with the full schema.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Exec(schema).Error; err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
