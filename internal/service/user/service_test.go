package user

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	user.UserRepository
	users   map[string]user.User
	deleted []string
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	m := make(map[string]user.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, req user.UpdateProfileRequest, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.Department != nil {
		u.Department = req.Department
	}
	f.users[id] = u
	return u, nil
}

func (f *fakeUserRepo) ListByDepartmentAndRole(ctx context.Context, department string, role user.Role) ([]user.User, error) {
	var matched []user.User
	for _, u := range f.users {
		if u.Role == role && u.Department != nil && *u.Department == department {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (f *fakeUserRepo) UpdateStatus(ctx context.Context, id string, status user.Status) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Status = status
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdateDeviceToken(ctx context.Context, id string, token string) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.DeviceToken = &token
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   "test@example.com",
		"role":    "Employee",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func strPtr(s string) *string { return &s }

func TestGetProfileReturnsCaller(t *testing.T) {
	repo := newFakeUserRepo(
		user.User{ID: "user-1", Name: "Alice Johnson", Email: "alice@example.com", Role: user.RoleEmployee, Status: user.StatusApproved},
		user.User{ID: "user-2", Name: "Bob Smith", Email: "bob@example.com", Role: user.RoleEmployee, Status: user.StatusApproved},
	)
	svc := NewUserService(repo)

	profile, err := svc.GetProfile(authedContext(t, "user-1"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.ID)
	assert.Equal(t, "Alice Johnson", profile.Name)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo(
		user.User{ID: "user-1", Name: "Alice Johnson", Role: user.RoleEmployee},
	)
	svc := NewUserService(repo)

	updated, err := svc.UpdateProfile(authedContext(t, "user-1"), user.UpdateProfileRequest{
		Name:       strPtr("Alice J. Carter"),
		Department: strPtr(user.DepartmentMarketing),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice J. Carter", updated.Name)
	require.NotNil(t, updated.Department)
	assert.Equal(t, user.DepartmentMarketing, *updated.Department)
}

func TestUpdateProfileRejectsUnknownDepartment(t *testing.T) {
	repo := newFakeUserRepo(user.User{ID: "user-1", Name: "Alice Johnson"})
	svc := NewUserService(repo)

	_, err := svc.UpdateProfile(authedContext(t, "user-1"), user.UpdateProfileRequest{
		Department: strPtr("Warehouse"),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "department")
}

func TestGetUsersByDepartment(t *testing.T) {
	repo := newFakeUserRepo(
		user.User{ID: "user-1", Name: "Alice Johnson", Role: user.RoleEmployee, Department: strPtr(user.DepartmentDevelopment)},
		user.User{ID: "user-2", Name: "Bob Smith", Role: user.RoleEmployee, Department: strPtr(user.DepartmentSales)},
		user.User{ID: "mgr-1", Name: "Cam Lee", Role: user.RoleManager, Department: strPtr(user.DepartmentDevelopment)},
	)
	svc := NewUserService(repo)

	members, err := svc.GetUsersByDepartment(authedContext(t, "mgr-1"), user.DepartmentDevelopment)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "user-1", members[0].ID)
}

func TestGetUsersByInvalidDepartment(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetUsersByDepartment(authedContext(t, "mgr-1"), "Warehouse")
	assert.ErrorIs(t, err, user.ErrInvalidDepartment)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeUserRepo(
		user.User{ID: "user-1", Name: "Alice Johnson", Status: user.StatusPending},
	)
	svc := NewUserService(repo)

	err := svc.UpdateStatus(authedContext(t, "admin-1"), "user-1", user.UpdateStatusRequest{Status: "Approved"})
	require.NoError(t, err)
	assert.Equal(t, user.StatusApproved, repo.users["user-1"].Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := newFakeUserRepo(user.User{ID: "user-1"})
	svc := NewUserService(repo)

	err := svc.UpdateStatus(authedContext(t, "admin-1"), "user-1", user.UpdateStatusRequest{Status: "Disabled"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "status")
}

func TestUpdateDeviceToken(t *testing.T) {
	repo := newFakeUserRepo(user.User{ID: "user-1", Name: "Alice Johnson"})
	svc := NewUserService(repo)

	err := svc.UpdateDeviceToken(authedContext(t, "user-1"), user.UpdateDeviceTokenRequest{DeviceToken: "fcm-token-abc"})
	require.NoError(t, err)
	require.NotNil(t, repo.users["user-1"].DeviceToken)
	assert.Equal(t, "fcm-token-abc", *repo.users["user-1"].DeviceToken)
}

func TestDeleteUserRejectsSelf(t *testing.T) {
	repo := newFakeUserRepo(user.User{ID: "admin-1", Role: user.RoleAdmin})
	svc := NewUserService(repo)

	err := svc.DeleteUser(authedContext(t, "admin-1"), "admin-1")
	assert.ErrorIs(t, err, user.ErrCannotDeleteSelf)
	assert.Empty(t, repo.deleted)
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepo(
		user.User{ID: "admin-1", Role: user.RoleAdmin},
		user.User{ID: "user-1", Role: user.RoleEmployee},
	)
	svc := NewUserService(repo)

	err := svc.DeleteUser(authedContext(t, "admin-1"), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, repo.deleted)
}
