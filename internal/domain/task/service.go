package task

import (
	"context"
)

type TaskService interface {
	AssignTask(ctx context.Context, req AssignTaskRequest) (TaskResponse, error)
	GetMyTasks(ctx context.Context) ([]TaskResponse, error)
	GetAllTasks(ctx context.Context) ([]TaskResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (TaskResponse, error)
}
