package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

// Constraint names enforcing the attendance invariants at store level.
const (
	constraintOpenRecordPerUser = "attendance_records_one_open_per_user"
	constraintOneCheckInPerDay  = "attendance_records_user_work_day_key"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, work_day, check_in, check_out, working_hours,
	check_in_timezone, check_out_timezone, server_check_in, server_check_out,
	created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.UserID, &a.WorkDay, &a.CheckIn, &a.CheckOut, &a.WorkingHours,
		&a.CheckInTimezone, &a.CheckOutTimezone, &a.ServerCheckIn, &a.ServerCheckOut,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, user_id, work_day, check_in, check_in_timezone, server_check_in
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	record.ID = uuid.New().String()
	err := q.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.WorkDay,
		record.CheckIn,
		record.CheckInTimezone,
		record.ServerCheckIn,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		// The store is the authority on both uniqueness invariants; a lost
		// race surfaces here instead of producing a second record.
		if isUniqueViolation(err, constraintOpenRecordPerUser) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		if isUniqueViolation(err, constraintOneCheckInPerDay) {
			return attendance.Attendance{}, attendance.ErrDuplicateCheckInForDay
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetOpenByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenByUser(ctx context.Context, userID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendance_records
		WHERE user_id = $1 AND check_out IS NULL
		ORDER BY check_in DESC
		LIMIT 1
	`, attendanceColumns)

	a, err := scanAttendance(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no open record
		}
		return nil, fmt.Errorf("failed to get open attendance record: %w", err)
	}

	return &a, nil
}

// HasCheckInInWindow implements attendance.AttendanceRepository.
func (r *attendanceRepository) HasCheckInInWindow(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM attendance_records
			WHERE user_id = $1 AND check_in >= $2 AND check_in < $3
		)
	`, userID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance window: %w", err)
	}

	return exists, nil
}

// Close implements attendance.AttendanceRepository.
func (r *attendanceRepository) Close(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE attendance_records
		SET check_out = $1,
			working_hours = $2,
			check_out_timezone = $3,
			server_check_out = $4,
			updated_at = NOW()
		WHERE id = $5 AND check_out IS NULL
		RETURNING %s
	`, attendanceColumns)

	closed, err := scanAttendance(q.QueryRow(ctx, query,
		record.CheckOut,
		record.WorkingHours,
		record.CheckOutTimezone,
		record.ServerCheckOut,
		record.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoOpenCheckIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	return closed, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance_records WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM attendance_records
		WHERE user_id = $1
		ORDER BY check_in DESC
		LIMIT $2 OFFSET $3
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	return records, total, rows.Err()
}

// ListInWindow implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListInWindow(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendance_records
		WHERE check_in >= $1 AND check_in < $2
		ORDER BY check_in ASC
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records in window: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

// ListInWindowByUsers implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListInWindowByUsers(ctx context.Context, start, end time.Time, userIDs []string) ([]attendance.Attendance, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendance_records
		WHERE check_in >= $1 AND check_in < $2 AND user_id = ANY($3)
		ORDER BY check_in ASC
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, start, end, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records for users: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

// CountAll implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance_records`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	return count, nil
}

// CountWorked implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountWorked(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance_records WHERE working_hours > 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count worked attendance records: %w", err)
	}

	return count, nil
}
