package announcement

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/announcement"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/push"
)

const pushTimeout = 30 * time.Second

type AnnouncementServiceImpl struct {
	announcementRepo announcement.AnnouncementRepository
	userRepo         user.UserRepository
	pushService      push.Service
}

func NewAnnouncementService(
	announcementRepo announcement.AnnouncementRepository,
	userRepo user.UserRepository,
	pushService push.Service,
) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		announcementRepo: announcementRepo,
		userRepo:         userRepo,
		pushService:      pushService,
	}
}

func claimsFromContext(ctx context.Context) (string, string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", "", fmt.Errorf("role claim is missing or invalid")
	}

	return userID, role, nil
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	userID, _, err := claimsFromContext(ctx)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	targetRoles := req.TargetRoles
	if targetRoles == nil {
		targetRoles = []string{}
	}

	created, err := s.announcementRepo.Create(ctx, announcement.Announcement{
		Title:       req.Title,
		Message:     req.Message,
		CreatedBy:   userID,
		TargetRoles: targetRoles,
	})
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	go s.notify(created)

	return announcement.ToResponse(created), nil
}

// notify pushes the announcement to every device token of the targeted
// roles. Runs detached from the request with its own deadline.
func (s *AnnouncementServiceImpl) notify(a announcement.Announcement) {
	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	roles := make([]user.Role, 0, len(a.TargetRoles))
	for _, r := range a.TargetRoles {
		roles = append(roles, user.Role(r))
	}
	if len(roles) == 0 {
		roles = []user.Role{user.RoleAdmin, user.RoleManager, user.RoleEmployee}
	}

	tokens, err := s.userRepo.ListDeviceTokensByRoles(ctx, roles)
	if err != nil || len(tokens) == 0 {
		return
	}

	body := a.Message
	if author, err := s.userRepo.GetByID(ctx, a.CreatedBy); err == nil {
		body = fmt.Sprintf("%s: %s", author.Name, a.Message)
	}

	s.pushService.Send(ctx, tokens, push.Notification{
		Title: a.Title,
		Body:  body,
	}, map[string]string{
		"type":            "announcement",
		"announcement_id": a.ID,
	})
}

// List implements announcement.AnnouncementService. Results are scoped to
// announcements visible to the caller's role.
func (s *AnnouncementServiceImpl) List(ctx context.Context) ([]announcement.AnnouncementResponse, error) {
	_, role, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	announcements, err := s.announcementRepo.ListForRole(ctx, role)
	if err != nil {
		return nil, err
	}

	responses := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		responses = append(responses, announcement.ToResponse(a))
	}
	return responses, nil
}

// Delete implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.announcementRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.announcementRepo.Delete(ctx, id)
}
