package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NewsletterHandler accepts newsletter signups. There is no persistence
// behind it yet; the endpoint exists for the client contract.
type NewsletterHandler struct{}

// NewNewsletterHandler creates a new newsletter handler.
func NewNewsletterHandler() *NewsletterHandler {
	return &NewsletterHandler{}
}

// SubscribeRequest represents a newsletter subscription request.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body SubscribeRequest true "Subscriber email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Valid email is required")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Subscription successful"})
}
