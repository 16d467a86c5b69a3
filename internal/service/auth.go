package service

import (
	"context"
	"errors"

	"placereview-backend/internal/domain"
	"placereview-backend/internal/repository"
	"placereview-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already registered")
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	if username == "" || email == "" {
		return nil, "", domain.NewValidationError("username and email are required")
	}
	if len(password) < 8 {
		return nil, "", domain.NewValidationError("password must be at least 8 characters")
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !security.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
