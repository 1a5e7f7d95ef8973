package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/task"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

const taskJoinedColumns = `t.id, t.title, t.description, t.deadline, t.priority, t.status,
	t.assigned_to, t.assigned_by, t.created_at, t.updated_at, u.name, u.email`

func scanTaskJoined(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Deadline, &t.Priority, &t.Status,
		&t.AssignedTo, &t.AssignedBy, &t.CreatedAt, &t.UpdatedAt, &t.AssigneeName, &t.AssigneeEmail,
	)
	return t, err
}

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, title, description, deadline, priority, status, assigned_to, assigned_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	newTask.ID = uuid.New().String()
	err := q.QueryRow(ctx, query,
		newTask.ID,
		newTask.Title,
		newTask.Description,
		newTask.Deadline,
		newTask.Priority,
		newTask.Status,
		newTask.AssignedTo,
		newTask.AssignedBy,
	).Scan(&newTask.CreatedAt, &newTask.UpdatedAt)

	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return newTask, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM tasks t
		JOIN users u ON u.id = t.assigned_to
		WHERE t.id = $1
	`, taskJoinedColumns)

	t, err := scanTaskJoined(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

func (r *taskRepository) list(ctx context.Context, where string, args ...interface{}) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM tasks t
		JOIN users u ON u.id = t.assigned_to
		%s
		ORDER BY t.deadline ASC NULLS LAST
	`, taskJoinedColumns, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTaskJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// ListByAssignee implements task.TaskRepository.
func (r *taskRepository) ListByAssignee(ctx context.Context, userID string) ([]task.Task, error) {
	return r.list(ctx, `WHERE t.assigned_to = $1`, userID)
}

// ListAll implements task.TaskRepository.
func (r *taskRepository) ListAll(ctx context.Context) ([]task.Task, error) {
	return r.list(ctx, ``)
}

// UpdateStatus implements task.TaskRepository. The userID guard keeps
// employees from touching tasks assigned to someone else.
func (r *taskRepository) UpdateStatus(ctx context.Context, id string, userID string, status task.Status) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE tasks
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND assigned_to = $3
	`, status, id, userID)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to update task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.Task{}, task.ErrTaskNotFound
	}

	return r.GetByID(ctx, id)
}

// CountAll implements task.TaskRepository.
func (r *taskRepository) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	return count, nil
}

// CountByStatus implements task.TaskRepository.
func (r *taskRepository) CountByStatus(ctx context.Context, status task.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks by status: %w", err)
	}

	return count, nil
}
