package attendance

import (
	"time"
)

// Attendance is one check-in/check-out cycle for a user. A record with
// CheckOut unset is an open record; it is closed exactly once and never
// touched again.
type Attendance struct {
	ID               string
	UserID           string
	WorkDay          time.Time // calendar day of the device check-in time
	CheckIn          time.Time
	CheckOut         *time.Time
	WorkingHours     *float64
	CheckInTimezone  *string
	CheckOutTimezone *string

	// Server-observed counterparts of the device timestamps, kept for audit.
	ServerCheckIn  time.Time
	ServerCheckOut *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join
	UserName *string
}

// IsOpen reports whether the record has not been checked out yet.
func (a *Attendance) IsOpen() bool {
	return a.CheckOut == nil
}

// Hours recomputes working hours from the stored pair of timestamps rather
// than trusting the persisted value. Open records yield zero.
func (a *Attendance) Hours() float64 {
	if a.CheckOut == nil {
		return 0
	}
	return a.CheckOut.Sub(a.CheckIn).Hours()
}

// Summary bands working hours into a qualitative tier. Presentational only.
func Summary(hours float64) string {
	switch {
	case hours >= 8:
		return "full day"
	case hours >= 6:
		return "substantial"
	case hours >= 4:
		return "half day"
	default:
		return "short session"
	}
}
