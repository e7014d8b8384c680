package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"linkfolio/internal/auth"
	apperrors "linkfolio/internal/errors"
	"linkfolio/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uint, fields map[string]interface{}) (*model.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindWithLinks(ctx context.Context, username string) (*model.UserWithLinks, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserWithLinks), args.Error(1)
}

// MockSessionStore is a mock implementation of auth.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	args := m.Called(ctx, userID, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Resolve(ctx context.Context, token string) (uint, bool, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (m *MockSessionStore) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

const testSessionTTL = 30 * 24 * time.Hour

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		displayName   string
		setupMock     func(*MockUserRepository, *MockSessionStore)
		expectedError error
	}{
		{
			name:        "successful registration logs the user in",
			username:    "alice",
			password:    "pw123456",
			displayName: "Alice",
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = 1
				}).Return(nil)
				mSessions.On("Create", mock.Anything, uint(1), testSessionTTL).Return("token-1", nil)
			},
			expectedError: nil,
		},
		{
			name:     "duplicate username",
			username: "alice",
			password: "pw123456",
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(apperrors.ErrUsernameTaken)
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockSessions := new(MockSessionStore)
			tt.setupMock(mockRepo, mockSessions)

			svc := NewAuthService(mockRepo, mockSessions, testSessionTTL)
			user, token, err := svc.Register(context.Background(), tt.username, tt.password, tt.displayName)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.displayName, user.DisplayName)
				assert.Equal(t, "default", user.Theme)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotContains(t, user.PasswordHash, tt.password)
				assert.True(t, auth.VerifyPassword(tt.password, user.PasswordHash))
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("pw123456")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository, *MockSessionStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "pw123456",
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: hash,
				}, nil)
				mSessions.On("Create", mock.Anything, uint(1), testSessionTTL).Return("token-1", nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "pw123456",
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mRepo.On("FindByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong-pass",
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: hash,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockSessions := new(MockSessionStore)
			tt.setupMock(mockRepo, mockSessions)

			svc := NewAuthService(mockRepo, mockSessions, testSessionTTL)
			user, token, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				// Unknown user and wrong password must be the identical
				// failure, down to the error value.
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, "token-1", token)
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockSessions := new(MockSessionStore)
	mockSessions.On("Destroy", mock.Anything, "token-1").Return(nil)

	svc := NewAuthService(mockRepo, mockSessions, testSessionTTL)

	// Destroy is idempotent at the store; a second logout with the same
	// token is still a success.
	assert.NoError(t, svc.Logout(context.Background(), "token-1"))
	assert.NoError(t, svc.Logout(context.Background(), "token-1"))

	mockSessions.AssertNumberOfCalls(t, "Destroy", 2)
}

func TestAuthService_CurrentUser(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		setupMock  func(*MockUserRepository, *MockSessionStore)
		expectUser bool
	}{
		{
			name:  "valid session",
			token: "token-1",
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mSessions.On("Resolve", mock.Anything, "token-1").Return(uint(1), true, nil)
				mRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)
			},
			expectUser: true,
		},
		{
			name:       "no token is anonymous, not an error",
			token:      "",
			setupMock:  func(mRepo *MockUserRepository, mSessions *MockSessionStore) {},
			expectUser: false,
		},
		{
			name:  "expired session",
			token: "stale-token",
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mSessions.On("Resolve", mock.Anything, "stale-token").Return(uint(0), false, nil)
			},
			expectUser: false,
		},
		{
			name:  "session for vanished user",
			token: "orphan-token",
			setupMock: func(mRepo *MockUserRepository, mSessions *MockSessionStore) {
				mSessions.On("Resolve", mock.Anything, "orphan-token").Return(uint(9), true, nil)
				mRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectUser: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockSessions := new(MockSessionStore)
			tt.setupMock(mockRepo, mockSessions)

			svc := NewAuthService(mockRepo, mockSessions, testSessionTTL)
			user, err := svc.CurrentUser(context.Background(), tt.token)

			assert.NoError(t, err)
			if tt.expectUser {
				assert.NotNil(t, user)
			} else {
				assert.Nil(t, user)
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}
