package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new open record. The store enforces the single-open-
	// record and one-check-in-per-day invariants; conflicts surface as
	// ErrAlreadyCheckedIn / ErrDuplicateCheckInForDay.
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// GetOpenByUser returns the user's open record, or nil when none exists.
	GetOpenByUser(ctx context.Context, userID string) (*Attendance, error)

	// HasCheckInInWindow reports whether any of the user's records checked in
	// inside [start, end).
	HasCheckInInWindow(ctx context.Context, userID string, start, end time.Time) (bool, error)

	// Close sets the check-out fields of an open record.
	Close(ctx context.Context, record Attendance) (Attendance, error)

	// ListByUser returns the user's records ordered by check-in descending.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Attendance, int64, error)

	// ListInWindow returns all records whose check-in falls inside [start, end).
	ListInWindow(ctx context.Context, start, end time.Time) ([]Attendance, error)

	// ListInWindowByUsers restricts ListInWindow to the given user ids.
	ListInWindowByUsers(ctx context.Context, start, end time.Time, userIDs []string) ([]Attendance, error)

	// CountAll returns the total number of records.
	CountAll(ctx context.Context) (int64, error)

	// CountWorked returns the number of closed records with positive
	// working hours.
	CountWorked(ctx context.Context) (int64, error)
}
