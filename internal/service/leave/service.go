package leave

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
	userRepo  user.UserRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, userRepo user.UserRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo: leaveRepo,
		userRepo:  userRepo,
	}
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

// RequestLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) RequestLeave(ctx context.Context, req leave.RequestLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	newLeave := leave.Leave{
		UserID:    userID,
		Type:      leave.Type(req.Type),
		StartDate: req.Start,
		EndDate:   req.End,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, newLeave)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// GetMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	leaves, err := s.leaveRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toResponses(leaves), nil
}

// GetAllLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetAllLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return toResponses(leaves), nil
}

// GetLeavesByDepartment implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeavesByDepartment(ctx context.Context, department string) ([]leave.LeaveResponse, error) {
	if !validator.IsInSlice(department, user.AllDepartments()) {
		return nil, user.ErrInvalidDepartment
	}

	members, err := s.userRepo.ListByDepartmentAndRole(ctx, department, user.RoleEmployee)
	if err != nil {
		return nil, err
	}

	memberIDs := make([]string, 0, len(members))
	for _, member := range members {
		memberIDs = append(memberIDs, member.ID)
	}

	leaves, err := s.leaveRepo.ListByUsers(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	return toResponses(leaves), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	approverID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if existing.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyAssessed
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, id, leave.Status(req.Status), approverID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(updated), nil
}

func toResponses(leaves []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToResponse(l))
	}
	return responses
}
