package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"linkfolio/internal/config"
	"linkfolio/internal/handler"
	"linkfolio/internal/service"
	"linkfolio/internal/session"
)

// Register wires routes and middleware. The session loader runs on the
// whole /api group so optional-auth endpoints see the caller when one
// exists; RequireAuth gates only the routes that need an identity.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	linkHandler *handler.LinkHandler,
	profileHandler *handler.ProfileHandler,
	categoryHandler *handler.CategoryHandler,
	contentHandler *handler.ContentHandler,
	newsletterHandler *handler.NewsletterHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", session.Loader(authService, cfg.SessionCookie))

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/categories", categoryHandler.List)
	api.GET("/contents", contentHandler.List)
	api.GET("/contents/featured", contentHandler.Featured)
	api.GET("/contents/latest", contentHandler.Latest)
	api.GET("/contents/:id", contentHandler.Get)
	api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)

	// Secured routes (require a live session)
	api.GET("/user", authHandler.Me, session.RequireAuth)
	api.PUT("/user/profile", profileHandler.UpdateProfile, session.RequireAuth)
	api.GET("/user/links", linkHandler.List, session.RequireAuth)
	api.POST("/user/links", linkHandler.Create, session.RequireAuth)
	api.PUT("/user/links/:id", linkHandler.Update, session.RequireAuth)
	api.DELETE("/user/links/:id", linkHandler.Delete, session.RequireAuth)

	// Public profile; static segments above win over the param route.
	api.GET("/:username", profileHandler.PublicProfile)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
