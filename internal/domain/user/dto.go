package user

import (
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if r.Department != nil && !validator.IsInSlice(*r.Department, AllDepartments()) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of Design, Development, Marketing, Sales, HR",
		})
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
	var errs validator.ValidationErrors

	switch Status(r.Status) {
	case StatusApproved, StatusRejected, StatusPending:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Pending, Approved or Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeviceTokenRequest struct {
	DeviceToken string `json:"device_token"`
}

func (r *UpdateDeviceTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeviceToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_token",
			Message: "device_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		Phone:      u.Phone,
		Department: u.Department,
		Status:     string(u.Status),
		CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
