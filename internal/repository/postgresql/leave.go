package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveJoinedColumns = `l.id, l.user_id, l.type, l.start_date, l.end_date, l.reason,
	l.status, l.approver_id, l.created_at, l.updated_at, u.name, u.email`

func scanLeaveJoined(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.UserID, &l.Type, &l.StartDate, &l.EndDate, &l.Reason,
		&l.Status, &l.ApproverID, &l.CreatedAt, &l.UpdatedAt, &l.UserName, &l.UserEmail,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, user_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	newLeave.ID = uuid.New().String()
	err := q.QueryRow(ctx, query,
		newLeave.ID,
		newLeave.UserID,
		newLeave.Type,
		newLeave.StartDate,
		newLeave.EndDate,
		newLeave.Reason,
		newLeave.Status,
	).Scan(&newLeave.CreatedAt, &newLeave.UpdatedAt)

	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return newLeave, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		WHERE l.id = $1
	`, leaveJoinedColumns)

	l, err := scanLeaveJoined(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) list(ctx context.Context, where string, args ...interface{}) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		%s
		ORDER BY l.start_date DESC
	`, leaveJoinedColumns, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeaveJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.Leave, error) {
	return r.list(ctx, `WHERE l.user_id = $1`, userID)
}

// ListAll implements leave.LeaveRepository.
func (r *leaveRepository) ListAll(ctx context.Context) ([]leave.Leave, error) {
	return r.list(ctx, ``)
}

// ListByUsers implements leave.LeaveRepository.
func (r *leaveRepository) ListByUsers(ctx context.Context, userIDs []string) ([]leave.Leave, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, `WHERE l.user_id = ANY($1)`, userIDs)
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, approverID string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE leave_requests
		SET status = $1, approver_id = $2, updated_at = NOW()
		WHERE id = $3
	`, status, approverID, id)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}

	return r.GetByID(ctx, id)
}

// CountAll implements leave.LeaveRepository.
func (r *leaveRepository) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	return count, nil
}

// CountByStatus implements leave.LeaveRepository.
func (r *leaveRepository) CountByStatus(ctx context.Context, status leave.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leave requests by status: %w", err)
	}

	return count, nil
}
