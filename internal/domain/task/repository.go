package task

import (
	"context"
)

type TaskRepository interface {
	Create(ctx context.Context, newTask Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]Task, error)
	ListAll(ctx context.Context) ([]Task, error)
	UpdateStatus(ctx context.Context, id string, userID string, status Status) (Task, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
