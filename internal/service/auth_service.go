package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"linkfolio/internal/auth"
	apperrors "linkfolio/internal/errors"
	"linkfolio/internal/model"
	"linkfolio/internal/repository"
)

// AuthService implements the caller identity lifecycle: Anonymous ->
// Authenticated on register/login, back to Anonymous on logout or
// session expiry.
type AuthService interface {
	Register(ctx context.Context, username, password, displayName string) (*model.User, string, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   auth.SessionStore
	sessionTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, sessions auth.SessionStore, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates a user with a hashed password and logs them straight
// in: the returned token is a live session. A duplicate username
// surfaces as ErrUsernameTaken from the store's uniqueness constraint,
// leaving the original user untouched.
func (s *authService) Register(ctx context.Context, username, password, displayName string) (*model.User, string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		DisplayName:  displayName,
		Theme:        "default",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil, "", apperrors.ErrUsernameTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.sessions.Create(ctx, user.ID, s.sessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}
	return user, token, nil
}

// Login authenticates by username and password. Unknown usernames and
// wrong passwords produce the identical ErrInvalidCredentials so the
// outcome never reveals which one happened.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID, s.sessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}
	return user, token, nil
}

// Logout destroys the session. Calling it without a live session is a
// no-op, not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// CurrentUser resolves a session token to its user. Absence of a valid
// session returns (nil, nil) so public endpoints can stay optional-auth;
// a session pointing at a since-vanished user is treated the same way.
func (s *authService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, nil
	}

	userID, ok, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
