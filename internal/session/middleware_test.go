package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"linkfolio/internal/model"
)

const testCookie = "linkfolio_session"

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password, displayName string) (*model.User, string, error) {
	args := m.Called(ctx, username, password, displayName)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func protectedProbe(c echo.Context) error {
	return c.String(http.StatusOK, User(c).Username)
}

func gatedRequest(t *testing.T, authService *MockAuthService, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user/links", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Loader(authService, testCookie)(RequireAuth(protectedProbe))
	err := h(c)
	assert.NoError(t, err)
	return rec
}

func TestGate_NoCookie(t *testing.T) {
	mockAuth := new(MockAuthService)

	rec := gatedRequest(t, mockAuth, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized","code":"UNAUTHORIZED"}`, rec.Body.String())
	// The loader never hits the session store when no cookie is present.
	mockAuth.AssertNotCalled(t, "CurrentUser", mock.Anything, mock.Anything)
}

func TestGate_ExpiredSession(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("CurrentUser", mock.Anything, "stale-token").Return(nil, nil)

	rec := gatedRequest(t, mockAuth, &http.Cookie{Name: testCookie, Value: "stale-token"})

	// An invalidated token is exactly as unauthorized as no token; the
	// response says nothing about whether any resource exists.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized","code":"UNAUTHORIZED"}`, rec.Body.String())
}

func TestGate_ValidSession(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("CurrentUser", mock.Anything, "live-token").Return(&model.User{ID: 1, Username: "alice"}, nil)

	rec := gatedRequest(t, mockAuth, &http.Cookie{Name: testCookie, Value: "live-token"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}

func TestLoader_AnonymousPassesThroughOptionalRoutes(t *testing.T) {
	mockAuth := new(MockAuthService)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/alice", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Loader(mockAuth, testCookie)(func(c echo.Context) error {
		// Public endpoints stay optional-auth: no user, no error.
		assert.Nil(t, User(c))
		return c.String(http.StatusOK, "public")
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
