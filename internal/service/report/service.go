package report

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/datetime"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewReportService(userRepo user.UserRepository, attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
	}
}

// resolveDate parses "YYYY-MM-DD" into that day's local midnight; an empty
// string resolves to today.
func resolveDate(date string) (time.Time, error) {
	if date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	parsed, ok := validator.IsValidDate(date)
	if !ok {
		return time.Time{}, report.ErrInvalidDate
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local), nil
}

// GetAttendanceReports implements report.ReportService.
func (s *ReportServiceImpl) GetAttendanceReports(ctx context.Context, date string) (report.AttendanceReportsResponse, error) {
	targetDate, err := resolveDate(date)
	if err != nil {
		return report.AttendanceReportsResponse{}, err
	}
	start, end := datetime.DayWindow(targetDate)

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return report.AttendanceReportsResponse{}, fmt.Errorf("failed to load users: %w", err)
	}

	records, err := s.attendanceRepo.ListInWindow(ctx, start, end)
	if err != nil {
		return report.AttendanceReportsResponse{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	present := make(map[string]struct{}, len(records))
	for _, record := range records {
		present[record.UserID] = struct{}{}
	}

	employees := buildCohort(users, present, user.RoleEmployee)
	managers := buildCohort(users, present, user.RoleManager)

	return report.AttendanceReportsResponse{
		Date:           targetDate.Format("2006-01-02"),
		HasData:        len(records) > 0,
		Employees:      employees.departments,
		Managers:       managers.departments,
		EmployeeTotals: employees.totals,
		ManagerTotals:  managers.totals,
	}, nil
}

type cohortReport struct {
	departments []report.DepartmentReport
	totals      report.CohortTotals
}

// buildCohort groups one role cohort by department. Admins never enter a
// cohort, and users without a department are dropped from the groupings.
func buildCohort(users []user.User, present map[string]struct{}, role user.Role) cohortReport {
	type counts struct {
		total   int
		present int
	}
	byDepartment := make(map[string]*counts, len(user.AllDepartments()))
	for _, dept := range user.AllDepartments() {
		byDepartment[dept] = &counts{}
	}

	var cohort cohortReport
	for _, u := range users {
		if u.Role != role {
			continue
		}
		if u.Department == nil {
			continue
		}
		c, ok := byDepartment[*u.Department]
		if !ok {
			continue
		}
		c.total++
		cohort.totals.Total++
		if _, ok := present[u.ID]; ok {
			c.present++
			cohort.totals.Present++
		}
	}

	for _, dept := range user.AllDepartments() {
		c := byDepartment[dept]
		cohort.departments = append(cohort.departments, report.DepartmentReport{
			Department: dept,
			Present:    c.present,
			Absent:     c.total - c.present,
			Total:      c.total,
			Percentage: report.FormatPercentage(c.present, c.total),
		})
	}

	cohort.totals.Absent = cohort.totals.Total - cohort.totals.Present
	cohort.totals.Percentage = report.FormatPercentage(cohort.totals.Present, cohort.totals.Total)
	return cohort
}

// GetTeamAttendance implements report.ReportService.
func (s *ReportServiceImpl) GetTeamAttendance(ctx context.Context, department string, date string) (report.TeamAttendanceResponse, error) {
	if !validator.IsInSlice(department, user.AllDepartments()) {
		return report.TeamAttendanceResponse{}, user.ErrInvalidDepartment
	}

	targetDate, err := resolveDate(date)
	if err != nil {
		return report.TeamAttendanceResponse{}, err
	}
	start, end := datetime.DayWindow(targetDate)

	members, err := s.userRepo.ListByDepartmentAndRole(ctx, department, user.RoleEmployee)
	if err != nil {
		return report.TeamAttendanceResponse{}, fmt.Errorf("failed to load department roster: %w", err)
	}

	memberIDs := make([]string, 0, len(members))
	for _, member := range members {
		memberIDs = append(memberIDs, member.ID)
	}

	records, err := s.attendanceRepo.ListInWindowByUsers(ctx, start, end, memberIDs)
	if err != nil {
		return report.TeamAttendanceResponse{}, fmt.Errorf("failed to load team attendance: %w", err)
	}

	// First record per user wins.
	recordByUser := make(map[string]attendance.Attendance, len(records))
	for _, record := range records {
		if _, ok := recordByUser[record.UserID]; !ok {
			recordByUser[record.UserID] = record
		}
	}

	resp := report.TeamAttendanceResponse{
		Department: department,
		Date:       targetDate.Format("2006-01-02"),
		Members:    make([]report.TeamMember, 0, len(members)),
		Total:      len(members),
	}

	for _, member := range members {
		tm := report.TeamMember{
			UserID: member.ID,
			Name:   member.Name,
			Status: "Absent",
		}
		if record, ok := recordByUser[member.ID]; ok {
			tm.Status = "Present"
			checkIn := record.CheckIn.Format(time.RFC3339)
			tm.CheckIn = &checkIn
			if record.CheckOut != nil {
				checkOut := record.CheckOut.Format(time.RFC3339)
				tm.CheckOut = &checkOut
				// Recomputed from the timestamps rather than read from
				// storage, so a partially written record cannot skew it.
				hours := record.Hours()
				tm.WorkingHours = &hours
			}
			resp.Present++
		}
		resp.Members = append(resp.Members, tm)
	}

	resp.Absent = resp.Total - resp.Present
	resp.AttendanceRate = report.FormatPercentage(resp.Present, resp.Total)
	return resp, nil
}
