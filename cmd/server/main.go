package main

import (
	"net/http"

	_ "linkfolio/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"linkfolio/internal/auth"
	"linkfolio/internal/cache"
	"linkfolio/internal/config"
	"linkfolio/internal/db"
	"linkfolio/internal/handler"
	"linkfolio/internal/model"
	"linkfolio/internal/repository"
	"linkfolio/internal/router"
	"linkfolio/internal/service"
)

// @title Linkfolio API
// @version 1.0
// @description Link-in-bio profile service with cookie-session authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UserLink{},
		&model.Category{},
		&model.Content{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	cacheClient := cache.New(redisClient)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	linkRepo := repository.NewUserLinkRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	contentRepo := repository.NewContentRepository(gormDB)

	// Initialize session store and services
	sessionStore := auth.NewRedisSessionStore(redisClient)
	authService := service.NewAuthService(userRepo, sessionStore, cfg.SessionTTL)
	userService := service.NewUserService(userRepo)
	linkService := service.NewLinkService(linkRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	contentService := service.NewContentService(contentRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.SessionCookie, cfg.SessionTTL)
	linkHandler := handler.NewLinkHandler(linkService)
	profileHandler := handler.NewProfileHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	contentHandler := handler.NewContentHandler(contentService)
	newsletterHandler := handler.NewNewsletterHandler()

	// Register routes
	router.Register(
		e,
		cfg,
		authService,
		authHandler,
		linkHandler,
		profileHandler,
		categoryHandler,
		contentHandler,
		newsletterHandler,
	)

	log.WithFields(log.Fields{
		"port":        cfg.ServerPort,
		"session_ttl": cfg.SessionTTL,
	}).Info("starting server")

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
