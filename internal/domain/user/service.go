package user

import (
	"context"
)

type UserService interface {
	GetProfile(ctx context.Context) (UserResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (UserResponse, error)
	GetAllProfiles(ctx context.Context) ([]UserResponse, error)
	GetUsersByDepartment(ctx context.Context, department string) ([]UserResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error
	UpdateDeviceToken(ctx context.Context, req UpdateDeviceTokenRequest) error
	DeleteUser(ctx context.Context, id string) error
}
