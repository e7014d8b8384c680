// Package session carries the access-control gate: it resolves the
// session cookie to a user before handlers run and short-circuits
// unauthenticated calls to protected routes.
package session

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"linkfolio/internal/errors"
	"linkfolio/internal/model"
	"linkfolio/internal/service"
)

const (
	userContextKey  = "session.user"
	tokenContextKey = "session.token"
)

// Loader resolves the session cookie to the current user and stashes
// both on the request context. Requests without a valid session proceed
// anonymously; only a failing session store aborts the request.
func Loader(authService service.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			c.Set(tokenContextKey, cookie.Value)

			user, err := authService.CurrentUser(c.Request().Context(), cookie.Value)
			if err != nil {
				httpErr := errors.MapErrorToHTTP(err)
				return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if user != nil {
				c.Set(userContextKey, user)
			}
			return next(c)
		}
	}
}

// RequireAuth rejects requests that carry no authenticated user with a
// uniform 401. It says nothing about whether any resource exists.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if User(c) == nil {
			return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "Unauthorized",
				Code:  "UNAUTHORIZED",
			})
		}
		return next(c)
	}
}

// User returns the authenticated caller, or nil when anonymous. Behind
// RequireAuth it is never nil.
func User(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

// Token returns the raw session token from the request cookie, valid or
// not. Logout uses it to destroy whatever the client presented.
func Token(c echo.Context) string {
	token, _ := c.Get(tokenContextKey).(string)
	return token
}
