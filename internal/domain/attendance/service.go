package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens a new attendance record after validating the
	// device-supplied time and the daily-uniqueness invariants.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the caller's open record and fixes working hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetHistory returns the caller's records, newest check-in first.
	GetHistory(ctx context.Context, filter HistoryFilter) (HistoryResponse, error)
}
