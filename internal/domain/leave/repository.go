package leave

import (
	"context"
)

type LeaveRepository interface {
	Create(ctx context.Context, newLeave Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	ListByUser(ctx context.Context, userID string) ([]Leave, error)
	ListAll(ctx context.Context) ([]Leave, error)
	ListByUsers(ctx context.Context, userIDs []string) ([]Leave, error)
	UpdateStatus(ctx context.Context, id string, status Status, approverID string) (Leave, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
