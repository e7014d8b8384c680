package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"linkfolio/internal/errors"
	"linkfolio/internal/service"
)

// ContentHandler handles the public content catalog.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new content handler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// List godoc
// @Summary List contents
// @Description Lists all contents with their category, optionally filtered by category slug. An unknown slug yields an empty list.
// @Tags contents
// @Produce json
// @Param category query string false "Category slug"
// @Success 200 {array} model.Content
// @Router /contents [get]
func (h *ContentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.QueryParam("category")

	if slug != "" && slug != "all" {
		contents, err := h.contentService.ListByCategory(ctx, slug)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, contents)
	}

	contents, err := h.contentService.ListAll(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, contents)
}

// Featured godoc
// @Summary List featured contents
// @Tags contents
// @Produce json
// @Success 200 {array} model.Content
// @Router /contents/featured [get]
func (h *ContentHandler) Featured(c echo.Context) error {
	contents, err := h.contentService.ListFeatured(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, contents)
}

// Latest godoc
// @Summary List latest contents
// @Description Returns the eight most recent contents, newest first.
// @Tags contents
// @Produce json
// @Success 200 {array} model.Content
// @Router /contents/latest [get]
func (h *ContentHandler) Latest(c echo.Context) error {
	contents, err := h.contentService.ListLatest(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, contents)
}

// Get godoc
// @Summary Get content by id
// @Tags contents
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} model.Content
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contents/{id} [get]
func (h *ContentHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid content id")
	}

	content, err := h.contentService.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, content)
}
