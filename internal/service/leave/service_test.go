package leave

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	leaves []leave.Leave
	nextID int
}

func (f *fakeLeaveRepo) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	f.nextID++
	newLeave.ID = fmt.Sprintf("leave-%d", f.nextID)
	f.leaves = append(f.leaves, newLeave)
	return newLeave, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	for _, l := range f.leaves {
		if l.ID == id {
			return l, nil
		}
	}
	return leave.Leave{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) ListByUser(ctx context.Context, userID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range f.leaves {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListAll(ctx context.Context) ([]leave.Leave, error) {
	return f.leaves, nil
}

func (f *fakeLeaveRepo) ListByUsers(ctx context.Context, userIDs []string) ([]leave.Leave, error) {
	allowed := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		allowed[id] = struct{}{}
	}
	var out []leave.Leave
	for _, l := range f.leaves {
		if _, ok := allowed[l.UserID]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status, approverID string) (leave.Leave, error) {
	for i := range f.leaves {
		if f.leaves[i].ID == id {
			f.leaves[i].Status = status
			f.leaves[i].ApproverID = &approverID
			return f.leaves[i], nil
		}
	}
	return leave.Leave{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.leaves)), nil
}

func (f *fakeLeaveRepo) CountByStatus(ctx context.Context, status leave.Status) (int64, error) {
	var n int64
	for _, l := range f.leaves {
		if l.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	user.UserRepository
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    "Manager",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestRequestLeave(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, &fakeUserRepo{})
	ctx := authedContext(t, "user-1")

	resp, err := svc.RequestLeave(ctx, leave.RequestLeaveRequest{
		Type:      string(leave.TypeAnnual),
		StartDate: "2025-04-01",
		EndDate:   "2025-04-03",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, "2025-04-01", resp.StartDate)
}

func TestRequestLeaveInvertedRange(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{}, &fakeUserRepo{})
	ctx := authedContext(t, "user-1")

	_, err := svc.RequestLeave(ctx, leave.RequestLeaveRequest{
		Type:      string(leave.TypeSick),
		StartDate: "2025-04-03",
		EndDate:   "2025-04-01",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestRequestLeaveUnknownType(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{}, &fakeUserRepo{})
	ctx := authedContext(t, "user-1")

	_, err := svc.RequestLeave(ctx, leave.RequestLeaveRequest{
		Type:      "Sabbatical",
		StartDate: "2025-04-01",
		EndDate:   "2025-04-03",
	})
	assert.Error(t, err)
}

func TestUpdateStatusApprove(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, &fakeUserRepo{})

	_, err := svc.RequestLeave(authedContext(t, "user-1"), leave.RequestLeaveRequest{
		Type:      string(leave.TypeCasual),
		StartDate: "2025-04-01",
		EndDate:   "2025-04-02",
	})
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(authedContext(t, "manager-1"), "leave-1", leave.UpdateStatusRequest{
		Status: string(leave.StatusApproved),
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	require.NotNil(t, resp.ApproverID)
	assert.Equal(t, "manager-1", *resp.ApproverID)
}

func TestUpdateStatusAlreadyAssessed(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, &fakeUserRepo{})

	_, err := svc.RequestLeave(authedContext(t, "user-1"), leave.RequestLeaveRequest{
		Type:      string(leave.TypeCasual),
		StartDate: "2025-04-01",
		EndDate:   "2025-04-02",
	})
	require.NoError(t, err)

	managerCtx := authedContext(t, "manager-1")
	_, err = svc.UpdateStatus(managerCtx, "leave-1", leave.UpdateStatusRequest{
		Status: string(leave.StatusRejected),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(managerCtx, "leave-1", leave.UpdateStatusRequest{
		Status: string(leave.StatusApproved),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyAssessed)
}
