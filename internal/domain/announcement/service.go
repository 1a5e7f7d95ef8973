package announcement

import (
	"context"
)

type AnnouncementService interface {
	// Create persists the announcement and triggers a best-effort push
	// fan-out to the targeted roles' device tokens.
	Create(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	List(ctx context.Context) ([]AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
}
