package task

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type AssignTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	Priority    *string `json:"priority"`
	AssignedTo  string  `json:"assigned_to"`

	DeadlineTime *time.Time `json:"-"`
}

func (r *AssignTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to is required",
		})
	}

	if r.Priority != nil {
		switch Priority(*r.Priority) {
		case PriorityLow, PriorityMedium, PriorityHigh:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "priority",
				Message: "priority must be Low, Medium or High",
			})
		}
	}

	if r.Deadline != nil {
		t, ok := validator.IsValidDateTime(*r.Deadline)
		if !ok {
			var okDate bool
			t, okDate = validator.IsValidDate(*r.Deadline)
			if !okDate {
				errs = append(errs, validator.ValidationError{
					Field:   "deadline",
					Message: "deadline must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
		if len(errs) == 0 {
			r.DeadlineTime = &t
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	switch Status(r.Status) {
	case StatusToDo, StatusInProgress, StatusCompleted:
		return nil
	default:
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be To Do, In Progress or Completed",
		}}
	}
}

type TaskResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Deadline      *string `json:"deadline,omitempty"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	AssignedTo    string  `json:"assigned_to"`
	AssignedBy    *string `json:"assigned_by,omitempty"`
	AssigneeName  *string `json:"assignee_name,omitempty"`
	AssigneeEmail *string `json:"assignee_email,omitempty"`
}

func ToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		AssignedTo:    t.AssignedTo,
		AssignedBy:    t.AssignedBy,
		AssigneeName:  t.AssigneeName,
		AssigneeEmail: t.AssigneeEmail,
	}
	if t.Deadline != nil {
		d := t.Deadline.Format(time.RFC3339)
		resp.Deadline = &d
	}
	return resp
}
