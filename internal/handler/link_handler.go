package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"linkfolio/internal/errors"
	"linkfolio/internal/session"
	"linkfolio/internal/service"
)

// LinkHandler handles the authenticated user's own links. The owning
// user id always comes from the session, never from the request body,
// so a caller cannot touch another user's links.
type LinkHandler struct {
	linkService service.LinkService
}

// NewLinkHandler creates a new link handler.
func NewLinkHandler(linkService service.LinkService) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

// CreateLinkRequest represents a link creation request. The URL is
// stored exactly as given.
type CreateLinkRequest struct {
	Title  string `json:"title" validate:"required,max=255"`
	URL    string `json:"url" validate:"required,max=2048"`
	Order  int    `json:"order"`
	Active *bool  `json:"active"`
}

// UpdateLinkRequest represents a partial link update; absent fields are
// left unchanged.
type UpdateLinkRequest struct {
	Title  *string `json:"title" validate:"omitempty,max=255"`
	URL    *string `json:"url" validate:"omitempty,max=2048"`
	Order  *int    `json:"order"`
	Active *bool   `json:"active"`
}

// List godoc
// @Summary List own links
// @Tags links
// @Produce json
// @Success 200 {array} model.UserLink
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/links [get]
func (h *LinkHandler) List(c echo.Context) error {
	user := session.User(c)
	links, err := h.linkService.List(c.Request().Context(), user.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, links)
}

// Create godoc
// @Summary Create a link
// @Tags links
// @Accept json
// @Produce json
// @Param request body CreateLinkRequest true "Link data"
// @Success 201 {object} model.UserLink
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/links [post]
func (h *LinkHandler) Create(c echo.Context) error {
	var req CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	user := session.User(c)
	link, err := h.linkService.Create(c.Request().Context(), user.ID, req.Title, req.URL, req.Order, active)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, link)
}

// Update godoc
// @Summary Update a link
// @Description Applies only the supplied fields. A link id that does not exist under the caller yields 404, whether it is missing or owned by someone else.
// @Tags links
// @Accept json
// @Produce json
// @Param id path int true "Link ID"
// @Param request body UpdateLinkRequest true "Fields to change"
// @Success 200 {object} model.UserLink
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/links/{id} [put]
func (h *LinkHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid link id")
	}

	var req UpdateLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := session.User(c)
	link, err := h.linkService.Update(c.Request().Context(), uint(id), user.ID, service.LinkUpdate{
		Title:  req.Title,
		URL:    req.URL,
		Order:  req.Order,
		Active: req.Active,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, link)
}

// Delete godoc
// @Summary Delete a link
// @Tags links
// @Produce json
// @Param id path int true "Link ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/links/{id} [delete]
func (h *LinkHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid link id")
	}

	user := session.User(c)
	removed, err := h.linkService.Delete(c.Request().Context(), uint(id), user.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !removed {
		return c.JSON(http.StatusNotFound, errors.ErrorResponse{Error: "not found", Code: "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
