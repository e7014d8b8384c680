package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"linkfolio/internal/errors"
	"linkfolio/internal/session"
	"linkfolio/internal/service"
)

// ProfileHandler handles profile updates and the public profile view.
type ProfileHandler struct {
	userService service.UserService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(userService service.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// UpdateProfileRequest represents a partial profile update. Only
// displayName, bio and theme are mutable; anything else in the body is
// ignored.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,max=255"`
	Bio         *string `json:"bio" validate:"omitempty,max=1024"`
	Theme       *string `json:"theme" validate:"omitempty,max=50"`
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := session.User(c)
	updated, err := h.userService.UpdateProfile(c.Request().Context(), user.ID, service.ProfileUpdate{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Theme:       req.Theme,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// PublicProfile godoc
// @Summary Public profile by username
// @Description Returns the user with their active links sorted by display order. No authentication required.
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} model.UserWithLinks
// @Failure 404 {object} errors.ErrorResponse
// @Router /{username} [get]
func (h *ProfileHandler) PublicProfile(c echo.Context) error {
	profile, err := h.userService.PublicProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}
