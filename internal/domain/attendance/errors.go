package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn       = errors.New("already checked in, please check out first")
	ErrDuplicateCheckInForDay = errors.New("a check-in already exists for this day")

	// Check-out errors
	ErrNoOpenCheckIn         = errors.New("no active check-in found")
	ErrCheckOutBeforeCheckIn = errors.New("check-out must be after check-in")

	// Device time errors
	ErrMissingDeviceTime     = errors.New("device time is required")
	ErrImplausibleDeviceTime = errors.New("device time differs from server time by more than 24 hours")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
