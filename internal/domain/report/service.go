package report

import (
	"context"
)

// ReportService aggregates attendance records into presence statistics.
type ReportService interface {
	// GetAttendanceReports partitions users into Employee and Manager cohorts
	// and groups each by department for the given date ("" means today).
	GetAttendanceReports(ctx context.Context, date string) (AttendanceReportsResponse, error)

	// GetTeamAttendance joins a department's employee roster with the day's
	// attendance records.
	GetTeamAttendance(ctx context.Context, department string, date string) (TeamAttendanceResponse, error)
}
