package datetime

import "time"

// MaxDeviceClockSkew is how far a device-supplied timestamp may drift from
// the server clock before it is considered implausible.
const MaxDeviceClockSkew = 24 * time.Hour

// DayWindow returns the calendar-day window [midnight, midnight+24h) that
// contains the reference timestamp, in the reference's own location.
func DayWindow(ref time.Time) (start, end time.Time) {
	start = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	end = start.AddDate(0, 0, 1)
	return start, end
}

// SameDay reports whether a and b fall on the same calendar day, evaluated
// in a's location.
func SameDay(a, b time.Time) bool {
	start, end := DayWindow(a)
	b = b.In(a.Location())
	return !b.Before(start) && b.Before(end)
}

// IsPlausible reports whether a device-supplied timestamp is within the
// accepted skew of the server clock. The boundary itself is accepted.
func IsPlausible(deviceTime, serverTime time.Time) bool {
	diff := serverTime.Sub(deviceTime)
	if diff < 0 {
		diff = -diff
	}
	return diff <= MaxDeviceClockSkew
}

// HoursBetween returns the elapsed time between from and to in hours.
func HoursBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours()
}
