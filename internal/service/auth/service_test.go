package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users  []user.User
	nextID int
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	for _, u := range f.users {
		if u.Email == newUser.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	f.nextID++
	newUser.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users = append(f.users, newUser)
	return newUser, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) ListByDepartmentAndRole(ctx context.Context, department string, role user.Role) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, req user.UpdateProfileRequest, id string) (user.User, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeUserRepo) UpdateStatus(ctx context.Context, id string, status user.Status) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Status = status
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateDeviceToken(ctx context.Context, id string, token string) error {
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeUserRepo) ListDeviceTokensByRoles(ctx context.Context, roles []user.Role) ([]string, error) {
	return nil, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	return 0, nil
}

func newTestService(repo *fakeUserRepo) auth.AuthService {
	svc, _ := newTestServiceWithJWT(repo)
	return svc
}

func newTestServiceWithJWT(repo *fakeUserRepo) (auth.AuthService, jwt.Service) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtService), jwtService
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, role user.Role, status user.Status) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	department := user.DepartmentDevelopment
	u := user.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
	}
	if role != user.RoleAdmin {
		u.Department = &department
	}

	created, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	return created
}

func registerRequest(email string) auth.RegisterRequest {
	department := user.DepartmentDesign
	return auth.RegisterRequest{
		Name:       "New Person",
		Email:      email,
		Password:   "password123",
		Role:       string(user.RoleEmployee),
		Department: &department,
	}
}

func TestRegisterCreatesPendingAccount(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), registerRequest("new@example.com"))
	require.NoError(t, err)

	assert.Equal(t, string(user.StatusPending), resp.Status)

	created, err := repo.GetByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.StatusPending, created.Status)
	assert.NotEqual(t, "password123", created.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)
	seedUser(t, repo, "taken@example.com", "password123", user.RoleEmployee, user.StatusApproved)

	_, err := svc.Register(context.Background(), registerRequest("taken@example.com"))
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc := newTestService(&fakeUserRepo{})

	req := registerRequest("boss@example.com")
	req.Role = string(user.RoleAdmin)

	_, err := svc.Register(context.Background(), req)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "role")
}

func TestRegisterRequiresDepartment(t *testing.T) {
	svc := newTestService(&fakeUserRepo{})

	req := registerRequest("nodept@example.com")
	req.Department = nil

	_, err := svc.Register(context.Background(), req)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "department")
}

func TestLogin(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)
	seedUser(t, repo, "ok@example.com", "password123", user.RoleEmployee, user.StatusApproved)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ok@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "ok@example.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)
	seedUser(t, repo, "ok@example.com", "password123", user.RoleEmployee, user.StatusApproved)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ok@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(&fakeUserRepo{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginPendingAccountBlocked(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)
	seedUser(t, repo, "pending@example.com", "password123", user.RoleEmployee, user.StatusPending)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "pending@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrAccountNotApproved)
}

func TestLoginAdminBypassesApprovalGate(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)
	seedUser(t, repo, "admin@example.com", "password123", user.RoleAdmin, user.StatusPending)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshToken(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)
	seedUser(t, repo, "ok@example.com", "password123", user.RoleEmployee, user.StatusApproved)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ok@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)
	seedUser(t, repo, "ok@example.com", "password123", user.RoleEmployee, user.StatusApproved)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ok@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.AccessToken,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)
	seedUser(t, repo, "ok@example.com", "password123", user.RoleEmployee, user.StatusApproved)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ok@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	err = svc.Logout(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	}, "")
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestLogoutRevokesAccessToken(t *testing.T) {
	repo := &fakeUserRepo{}
	svc, jwtService := newTestServiceWithJWT(repo)
	seedUser(t, repo, "ok@example.com", "password123", user.RoleEmployee, user.StatusApproved)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ok@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.False(t, jwtService.IsTokenRevoked(login.AccessToken))

	err = svc.Logout(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	}, login.AccessToken)
	require.NoError(t, err)

	assert.True(t, jwtService.IsTokenRevoked(login.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(login.RefreshToken))
}
