package announcement

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateAnnouncementRequest struct {
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	TargetRoles []string `json:"target_roles"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	for _, role := range r.TargetRoles {
		switch user.Role(role) {
		case user.RoleAdmin, user.RoleManager, user.RoleEmployee:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "target_roles",
				Message: "target roles must be Admin, Manager or Employee",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AnnouncementResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	CreatedBy   string   `json:"created_by"`
	AuthorName  *string  `json:"author_name,omitempty"`
	TargetRoles []string `json:"target_roles"`
	CreatedAt   string   `json:"created_at"`
}

func ToResponse(a Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Message:     a.Message,
		CreatedBy:   a.CreatedBy,
		AuthorName:  a.AuthorName,
		TargetRoles: a.TargetRoles,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}
