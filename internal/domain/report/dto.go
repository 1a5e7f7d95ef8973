package report

import "fmt"

// DepartmentReport is the presence aggregate for one department within a
// single cohort.
type DepartmentReport struct {
	Department string `json:"department"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Total      int    `json:"total"`
	Percentage string `json:"percentage"`
}

// CohortTotals aggregates a whole role cohort across departments.
type CohortTotals struct {
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Total      int    `json:"total"`
	Percentage string `json:"percentage"`
}

type AttendanceReportsResponse struct {
	Date           string             `json:"date"`
	HasData        bool               `json:"has_data"`
	Employees      []DepartmentReport `json:"employees"`
	Managers       []DepartmentReport `json:"managers"`
	EmployeeTotals CohortTotals       `json:"employee_totals"`
	ManagerTotals  CohortTotals       `json:"manager_totals"`
}

type TeamMember struct {
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Status       string   `json:"status"` // Present or Absent
	CheckIn      *string  `json:"check_in,omitempty"`
	CheckOut     *string  `json:"check_out,omitempty"`
	WorkingHours *float64 `json:"working_hours,omitempty"`
}

type TeamAttendanceResponse struct {
	Department     string       `json:"department"`
	Date           string       `json:"date"`
	Members        []TeamMember `json:"members"`
	Present        int          `json:"present"`
	Absent         int          `json:"absent"`
	Total          int          `json:"total"`
	AttendanceRate string       `json:"attendance_rate"`
}

// FormatPercentage renders present/total as a one-decimal percentage string,
// "0.0" for an empty group.
func FormatPercentage(present, total int) string {
	if total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(present)/float64(total)*100)
}
