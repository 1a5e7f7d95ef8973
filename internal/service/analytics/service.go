package analytics

import (
	"context"
	"fmt"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/analytics"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/task"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
)

// txRunner wraps fn in a transaction scope carried through the context.
type txRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type AnalyticsServiceImpl struct {
	inTx           txRunner
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	taskRepo       task.TaskRepository
	leaveRepo      leave.LeaveRepository
}

func NewAnalyticsService(
	db *database.DB,
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	taskRepo task.TaskRepository,
	leaveRepo leave.LeaveRepository,
) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		taskRepo:       taskRepo,
		leaveRepo:      leaveRepo,
	}
}

// GetStats implements analytics.AnalyticsService. The counters are read in
// one transaction so the dashboard shows a consistent snapshot.
func (s *AnalyticsServiceImpl) GetStats(ctx context.Context) (analytics.StatsResponse, error) {
	var stats analytics.StatsResponse

	err := s.inTx(ctx, func(txCtx context.Context) error {
		numEmployees, err := s.userRepo.CountByRole(txCtx, user.RoleEmployee)
		if err != nil {
			return err
		}

		totalTasks, err := s.taskRepo.CountAll(txCtx)
		if err != nil {
			return err
		}
		completedTasks, err := s.taskRepo.CountByStatus(txCtx, task.StatusCompleted)
		if err != nil {
			return err
		}

		totalRecords, err := s.attendanceRepo.CountAll(txCtx)
		if err != nil {
			return err
		}
		workedRecords, err := s.attendanceRepo.CountWorked(txCtx)
		if err != nil {
			return err
		}

		leavesRequested, err := s.leaveRepo.CountAll(txCtx)
		if err != nil {
			return err
		}
		leavesApproved, err := s.leaveRepo.CountByStatus(txCtx, leave.StatusApproved)
		if err != nil {
			return err
		}

		attendancePercent := "0"
		if totalRecords > 0 {
			attendancePercent = fmt.Sprintf("%.2f", float64(workedRecords)/float64(totalRecords)*100)
		}

		stats = analytics.StatsResponse{
			NumEmployees:      numEmployees,
			TotalTasks:        totalTasks,
			CompletedTasks:    completedTasks,
			AttendancePercent: attendancePercent,
			LeavesRequested:   leavesRequested,
			LeavesApproved:    leavesApproved,
		}
		return nil
	})
	if err != nil {
		return analytics.StatsResponse{}, err
	}

	return stats, nil
}
