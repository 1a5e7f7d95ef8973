package leave

import (
	"context"
)

type LeaveService interface {
	RequestLeave(ctx context.Context, req RequestLeaveRequest) (LeaveResponse, error)
	GetMyLeaves(ctx context.Context) ([]LeaveResponse, error)
	GetAllLeaves(ctx context.Context) ([]LeaveResponse, error)
	GetLeavesByDepartment(ctx context.Context, department string) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (LeaveResponse, error)
}
