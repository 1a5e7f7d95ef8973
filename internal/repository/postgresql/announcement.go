package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/announcement"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: db}
}

const announcementJoinedColumns = `a.id, a.title, a.message, a.created_by, a.target_roles,
	a.created_at, a.updated_at, u.name`

func scanAnnouncementJoined(row pgx.Row) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(
		&a.ID, &a.Title, &a.Message, &a.CreatedBy, &a.TargetRoles,
		&a.CreatedAt, &a.UpdatedAt, &a.AuthorName,
	)
	return a, err
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepository) Create(ctx context.Context, newAnnouncement announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (id, title, message, created_by, target_roles)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	newAnnouncement.ID = uuid.New().String()
	if newAnnouncement.TargetRoles == nil {
		newAnnouncement.TargetRoles = []string{}
	}
	err := q.QueryRow(ctx, query,
		newAnnouncement.ID,
		newAnnouncement.Title,
		newAnnouncement.Message,
		newAnnouncement.CreatedBy,
		newAnnouncement.TargetRoles,
	).Scan(&newAnnouncement.CreatedAt, &newAnnouncement.UpdatedAt)

	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return newAnnouncement, nil
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepository) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM announcements a
		JOIN users u ON u.id = a.created_by
		WHERE a.id = $1
	`, announcementJoinedColumns)

	a, err := scanAnnouncementJoined(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, fmt.Errorf("failed to get announcement: %w", err)
	}

	return a, nil
}

// ListForRole implements announcement.AnnouncementRepository.
func (r *announcementRepository) ListForRole(ctx context.Context, role string) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM announcements a
		JOIN users u ON u.id = a.created_by
		WHERE $1 = ANY(a.target_roles) OR cardinality(a.target_roles) = 0
		ORDER BY a.created_at DESC
	`, announcementJoinedColumns)

	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		a, err := scanAnnouncementJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}
