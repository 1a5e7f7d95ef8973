package analytics

import (
	"context"
	"testing"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/task"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	user.UserRepository
	employees int64
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	if role == user.RoleEmployee {
		return f.employees, nil
	}
	return 0, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	total  int64
	worked int64
}

func (f *fakeAttendanceRepo) CountAll(ctx context.Context) (int64, error) {
	return f.total, nil
}

func (f *fakeAttendanceRepo) CountWorked(ctx context.Context) (int64, error) {
	return f.worked, nil
}

type fakeTaskRepo struct {
	task.TaskRepository
	total     int64
	completed int64
}

func (f *fakeTaskRepo) CountAll(ctx context.Context) (int64, error) {
	return f.total, nil
}

func (f *fakeTaskRepo) CountByStatus(ctx context.Context, status task.Status) (int64, error) {
	if status == task.StatusCompleted {
		return f.completed, nil
	}
	return 0, nil
}

type fakeLeaveRepo struct {
	leave.LeaveRepository
	total    int64
	approved int64
}

func (f *fakeLeaveRepo) CountAll(ctx context.Context) (int64, error) {
	return f.total, nil
}

func (f *fakeLeaveRepo) CountByStatus(ctx context.Context, status leave.Status) (int64, error) {
	if status == leave.StatusApproved {
		return f.approved, nil
	}
	return 0, nil
}

func newTestService(users *fakeUserRepo, att *fakeAttendanceRepo, tasks *fakeTaskRepo, leaves *fakeLeaveRepo, txCount *int) *AnalyticsServiceImpl {
	return &AnalyticsServiceImpl{
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			if txCount != nil {
				*txCount++
			}
			return fn(ctx)
		},
		userRepo:       users,
		attendanceRepo: att,
		taskRepo:       tasks,
		leaveRepo:      leaves,
	}
}

func TestGetStats(t *testing.T) {
	txCount := 0
	svc := newTestService(
		&fakeUserRepo{employees: 12},
		&fakeAttendanceRepo{total: 3, worked: 2},
		&fakeTaskRepo{total: 9, completed: 4},
		&fakeLeaveRepo{total: 5, approved: 3},
		&txCount,
	)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.NumEmployees)
	assert.Equal(t, int64(9), stats.TotalTasks)
	assert.Equal(t, int64(4), stats.CompletedTasks)
	assert.Equal(t, "66.67", stats.AttendancePercent)
	assert.Equal(t, int64(5), stats.LeavesRequested)
	assert.Equal(t, int64(3), stats.LeavesApproved)
	assert.Equal(t, 1, txCount, "all counters should be read in a single transaction scope")
}

func TestGetStatsAttendancePercent(t *testing.T) {
	tests := []struct {
		name   string
		total  int64
		worked int64
		want   string
	}{
		{"no records", 0, 0, "0"},
		{"all worked", 4, 4, "100.00"},
		{"half worked", 4, 2, "50.00"},
		{"repeating fraction", 3, 1, "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(
				&fakeUserRepo{},
				&fakeAttendanceRepo{total: tt.total, worked: tt.worked},
				&fakeTaskRepo{},
				&fakeLeaveRepo{},
				nil,
			)

			stats, err := svc.GetStats(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, stats.AttendancePercent)
		})
	}
}
