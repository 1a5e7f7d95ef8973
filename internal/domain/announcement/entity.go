package announcement

import "time"

type Announcement struct {
	ID          string
	Title       string
	Message     string
	CreatedBy   string
	TargetRoles []string // empty means visible to everyone
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	AuthorName *string
}
