package user

import (
	"context"
)

// UserRepository is the user directory consulted, never owned, by the
// attendance subsystem.
type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]User, error)
	ListByDepartmentAndRole(ctx context.Context, department string, role Role) ([]User, error)
	Update(ctx context.Context, req UpdateProfileRequest, id string) (User, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdateDeviceToken(ctx context.Context, id string, token string) error
	Delete(ctx context.Context, id string) error
	ListDeviceTokensByRoles(ctx context.Context, roles []Role) ([]string, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
}
