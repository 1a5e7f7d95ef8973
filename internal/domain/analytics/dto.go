package analytics

// StatsResponse mirrors the admin dashboard counters.
type StatsResponse struct {
	NumEmployees      int64  `json:"num_employees"`
	TotalTasks        int64  `json:"total_tasks"`
	CompletedTasks    int64  `json:"completed_tasks"`
	AttendancePercent string `json:"attendance_percent"`
	LeavesRequested   int64  `json:"leaves_requested"`
	LeavesApproved    int64  `json:"leaves_approved"`
}
