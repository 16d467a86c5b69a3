package service

import (
	"context"
	"testing"

	"placereview-backend/internal/domain"
	"placereview-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestTokenManager() security.TokenManager {
	return security.NewTokenManager("test-secret-key-at-least-32-characters", 60)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, newTestTokenManager())

	userRepo.On("GetByUsername", ctx, "alice").Return(nil, domain.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice" && u.Email == "alice@example.com" &&
			u.PasswordHash != "" && u.PasswordHash != "hunter22pass"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 1
	}).Return(nil)

	user, token, err := svc.Signup(ctx, "alice", "alice@example.com", "hunter22pass")

	assert.NoError(t, err)
	assert.Equal(t, int32(1), user.ID)
	assert.NotEmpty(t, token)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Signup_ShortPassword(t *testing.T) {
	svc := NewAuthService(new(MockUserRepo), newTestTokenManager())

	_, _, err := svc.Signup(context.Background(), "alice", "alice@example.com", "short")

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAuthService_Signup_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, newTestTokenManager())

	userRepo.On("GetByUsername", ctx, "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)

	_, _, err := svc.Signup(ctx, "alice", "alice@example.com", "hunter22pass")

	assert.ErrorIs(t, err, ErrUsernameTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, newTestTokenManager())

	hash, err := security.HashPassword("hunter22pass")
	assert.NoError(t, err)
	userRepo.On("GetByUsername", ctx, "alice").
		Return(&domain.User{ID: 1, Username: "alice", PasswordHash: hash}, nil)

	user, token, err := svc.Login(ctx, "alice", "hunter22pass")

	assert.NoError(t, err)
	assert.Equal(t, int32(1), user.ID)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, newTestTokenManager())

	hash, err := security.HashPassword("hunter22pass")
	assert.NoError(t, err)
	userRepo.On("GetByUsername", ctx, "alice").
		Return(&domain.User{ID: 1, Username: "alice", PasswordHash: hash}, nil)

	_, _, err = svc.Login(ctx, "alice", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, newTestTokenManager())

	userRepo.On("GetByUsername", ctx, "nobody").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(ctx, "nobody", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
