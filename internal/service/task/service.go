package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/task"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
)

type TaskServiceImpl struct {
	taskRepo task.TaskRepository
	userRepo user.UserRepository
}

func NewTaskService(taskRepo task.TaskRepository, userRepo user.UserRepository) task.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// AssignTask implements task.TaskService.
func (s *TaskServiceImpl) AssignTask(ctx context.Context, req task.AssignTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	assignerID, err := userIDFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.AssignedTo); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return task.TaskResponse{}, task.ErrAssigneeNotFound
		}
		return task.TaskResponse{}, err
	}

	priority := task.PriorityMedium
	if req.Priority != nil {
		priority = task.Priority(*req.Priority)
	}

	newTask := task.Task{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.DeadlineTime,
		Priority:    priority,
		Status:      task.StatusToDo,
		AssignedTo:  req.AssignedTo,
		AssignedBy:  &assignerID,
	}

	created, err := s.taskRepo.Create(ctx, newTask)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(created), nil
}

// GetMyTasks implements task.TaskService.
func (s *TaskServiceImpl) GetMyTasks(ctx context.Context) ([]task.TaskResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toResponses(tasks), nil
}

// GetAllTasks implements task.TaskService.
func (s *TaskServiceImpl) GetAllTasks(ctx context.Context) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return toResponses(tasks), nil
}

// UpdateStatus implements task.TaskService.
// Only the assignee of a task can move it between statuses.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, id string, req task.UpdateStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	updated, err := s.taskRepo.UpdateStatus(ctx, id, userID, task.Status(req.Status))
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(updated), nil
}

func toResponses(tasks []task.Task) []task.TaskResponse {
	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, task.ToResponse(t))
	}
	return responses
}
