package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/task"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskRepo struct {
	tasks  []task.Task
	nextID int
}

func (f *fakeTaskRepo) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	f.nextID++
	newTask.ID = fmt.Sprintf("task-%d", f.nextID)
	f.tasks = append(f.tasks, newTask)
	return newTask, nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (task.Task, error) {
	for _, tk := range f.tasks {
		if tk.ID == id {
			return tk, nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

func (f *fakeTaskRepo) ListByAssignee(ctx context.Context, userID string) ([]task.Task, error) {
	var out []task.Task
	for _, tk := range f.tasks {
		if tk.AssignedTo == userID {
			out = append(out, tk)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ListAll(ctx context.Context) ([]task.Task, error) {
	return f.tasks, nil
}

func (f *fakeTaskRepo) UpdateStatus(ctx context.Context, id string, userID string, status task.Status) (task.Task, error) {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			if f.tasks[i].AssignedTo != userID {
				return task.Task{}, task.ErrTaskNotFound
			}
			f.tasks[i].Status = status
			return f.tasks[i], nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

func (f *fakeTaskRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.tasks)), nil
}

func (f *fakeTaskRepo) CountByStatus(ctx context.Context, status task.Status) (int64, error) {
	var n int64
	for _, tk := range f.tasks {
		if tk.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	user.UserRepository
	known map[string]bool
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if f.known[id] {
		return user.User{ID: id}, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    "Manager",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestAssignTask(t *testing.T) {
	repo := &fakeTaskRepo{}
	users := &fakeUserRepo{known: map[string]bool{"employee-1": true}}
	svc := NewTaskService(repo, users)

	resp, err := svc.AssignTask(authedContext(t, "manager-1"), task.AssignTaskRequest{
		Title:      "Ship quarterly report",
		AssignedTo: "employee-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "employee-1", resp.AssignedTo)
	require.NotNil(t, resp.AssignedBy)
	assert.Equal(t, "manager-1", *resp.AssignedBy)
	assert.Equal(t, string(task.StatusToDo), resp.Status)
	assert.Equal(t, string(task.PriorityMedium), resp.Priority)
}

func TestAssignTaskUnknownAssignee(t *testing.T) {
	svc := NewTaskService(&fakeTaskRepo{}, &fakeUserRepo{known: map[string]bool{}})

	_, err := svc.AssignTask(authedContext(t, "manager-1"), task.AssignTaskRequest{
		Title:      "Orphan task",
		AssignedTo: "ghost",
	})
	assert.ErrorIs(t, err, task.ErrAssigneeNotFound)
}

func TestUpdateStatusOnlyAssignee(t *testing.T) {
	repo := &fakeTaskRepo{}
	users := &fakeUserRepo{known: map[string]bool{"employee-1": true}}
	svc := NewTaskService(repo, users)

	created, err := svc.AssignTask(authedContext(t, "manager-1"), task.AssignTaskRequest{
		Title:      "Review designs",
		AssignedTo: "employee-1",
	})
	require.NoError(t, err)

	// The assignee can move the task.
	resp, err := svc.UpdateStatus(authedContext(t, "employee-1"), created.ID, task.UpdateStatusRequest{
		Status: string(task.StatusInProgress),
	})
	require.NoError(t, err)
	assert.Equal(t, string(task.StatusInProgress), resp.Status)

	// Anyone else cannot.
	_, err = svc.UpdateStatus(authedContext(t, "employee-2"), created.ID, task.UpdateStatusRequest{
		Status: string(task.StatusCompleted),
	})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	svc := NewTaskService(&fakeTaskRepo{}, &fakeUserRepo{})

	_, err := svc.UpdateStatus(authedContext(t, "employee-1"), "task-1", task.UpdateStatusRequest{
		Status: "Done",
	})
	assert.Error(t, err)
}
