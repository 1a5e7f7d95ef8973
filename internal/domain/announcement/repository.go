package announcement

import (
	"context"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, newAnnouncement Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)
	// ListForRole returns announcements targeting the role plus untargeted
	// ones, newest first.
	ListForRole(ctx context.Context, role string) ([]Announcement, error)
	Delete(ctx context.Context, id string) error
}
