package leave

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type RequestLeaveRequest struct {
	Type      string  `json:"type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *RequestLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	validType := false
	for _, t := range AllTypes() {
		if Type(r.Type) == t {
			validType = true
			break
		}
	}
	if !validType {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be Sick Leave, Casual Leave, Annual Leave or Personal Leave",
		})
	}

	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, ok := validator.IsValidDate(r.EndDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	if start.After(end) {
		return ErrInvalidDateRange
	}

	r.Start = start
	r.End = end
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	switch Status(r.Status) {
	case StatusApproved, StatusRejected:
		return nil
	default:
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be Approved or Rejected",
		}}
	}
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	UserName   *string `json:"user_name,omitempty"`
	UserEmail  *string `json:"user_email,omitempty"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`
	Status     string  `json:"status"`
	ApproverID *string `json:"approver_id,omitempty"`
}

func ToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		UserID:     l.UserID,
		UserName:   l.UserName,
		UserEmail:  l.UserEmail,
		Type:       string(l.Type),
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		Reason:     l.Reason,
		Status:     string(l.Status),
		ApproverID: l.ApproverID,
	}
}
