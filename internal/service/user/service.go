package user

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context) (user.UserResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(u), nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.userRepo.Update(ctx, req, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}

// GetAllProfiles implements user.UserService.
func (s *UserServiceImpl) GetAllProfiles(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return responses, nil
}

// GetUsersByDepartment implements user.UserService.
func (s *UserServiceImpl) GetUsersByDepartment(ctx context.Context, department string) ([]user.UserResponse, error) {
	if !validator.IsInSlice(department, user.AllDepartments()) {
		return nil, user.ErrInvalidDepartment
	}

	users, err := s.userRepo.ListByDepartmentAndRole(ctx, department, user.RoleEmployee)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return responses, nil
}

// UpdateStatus implements user.UserService.
func (s *UserServiceImpl) UpdateStatus(ctx context.Context, id string, req user.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.userRepo.UpdateStatus(ctx, id, user.Status(req.Status))
}

// UpdateDeviceToken implements user.UserService.
func (s *UserServiceImpl) UpdateDeviceToken(ctx context.Context, req user.UpdateDeviceTokenRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.userRepo.UpdateDeviceToken(ctx, userID, req.DeviceToken)
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	callerID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if callerID == id {
		return user.ErrCannotDeleteSelf
	}

	return s.userRepo.Delete(ctx, id)
}
