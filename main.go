package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chemical081/nepali-star-buzz-pulse/src/config"
	"github.com/chemical081/nepali-star-buzz-pulse/src/content"
	"github.com/chemical081/nepali-star-buzz-pulse/src/database"
	"github.com/chemical081/nepali-star-buzz-pulse/src/handlers"
	"github.com/chemical081/nepali-star-buzz-pulse/src/logging"
	"github.com/chemical081/nepali-star-buzz-pulse/src/middleware"
	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/repositories/postgres"
	"github.com/chemical081/nepali-star-buzz-pulse/src/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Load post category registry
	categories, err := content.LoadRegistry(cfg.CategoriesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load category registry")
	}
	log.Info().Int("categories", len(categories.Categories)).Msg("category registry loaded")

	// Initialize repositories
	adminRepo := postgres.NewAdminRepository(db.GetPool())
	postRepo := postgres.NewPostRepository(db.GetPool())
	storyRepo := postgres.NewStoryRepository(db.GetPool())

	// Initialize services
	authService, err := services.NewAuthService(adminRepo, cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth service")
	}
	adminService := services.NewAdminService(adminRepo)
	postService := services.NewPostService(postRepo, categories)
	storyService := services.NewStoryService(storyRepo)

	// Auto-seed super admin on first run (if ADMIN_USERNAME and ADMIN_PASSWORD are set)
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		hasAdmins, err := adminService.HasAdmins(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("failed to check for existing admin users")
		} else if !hasAdmins {
			if _, err := adminService.Bootstrap(context.Background(), cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
				log.Error().Err(err).Msg("failed to create initial super admin")
			} else {
				log.Info().Str("username", cfg.AdminUsername).Msg("initial super admin created")
			}
		}
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	// CORS for the public site and the admin dashboard
	corsConfig := cors.Config{
		AllowOriginFunc:  allowOrigin(cfg.AllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Setup routes
	setupRoutes(router, db, cfg, authService, adminService, postService, storyService)

	// Create HTTP server with timeouts (protect from Slowloris)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(
	router *gin.Engine,
	db *database.Database,
	cfg *config.Config,
	authService *services.AuthService,
	adminService *services.AdminService,
	postService *services.PostService,
	storyService *services.StoryService,
) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService)
	postHandler := handlers.NewPostHandler(postService)
	storyHandler := handlers.NewStoryHandler(storyService)

	authRequired := middleware.AdminAuthMiddleware(authService)

	// Health check endpoints
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)
	router.GET("/info", healthHandler.HandleInfo)

	api := router.Group("/api")

	// Authentication
	api.POST("/auth/login",
		middleware.LoginRateLimitMiddleware(middleware.RateLimitConfig{
			RequestsPerMinute: cfg.LoginRatePerMinute,
			Burst:             cfg.LoginBurst,
		}),
		authHandler.HandleLogin)
	api.GET("/auth/verify", authRequired, authHandler.HandleVerify)
	api.POST("/auth/logout", authRequired, authHandler.HandleLogout)

	// Admin identity management (super_admin only via manage_admins)
	admins := api.Group("/admins", authRequired, middleware.RequireCapability(models.CapManageAdmins))
	{
		admins.GET("", adminHandler.HandleList)
		admins.GET("/:id", adminHandler.HandleGet)
		admins.POST("", adminHandler.HandleCreate)
		admins.PUT("/:id", adminHandler.HandleUpdate)
		admins.DELETE("/:id", adminHandler.HandleDelete)
	}
	api.GET("/capabilities", authRequired, adminHandler.HandleCapabilities)

	// Posts: public reads and counters, capability-gated mutations
	api.GET("/posts", postHandler.HandleList)
	api.GET("/posts/:id", postHandler.HandleGet)
	api.POST("/posts/:id/like", postHandler.HandleLike)
	api.POST("/posts/:id/comment", postHandler.HandleComment)
	api.POST("/posts", authRequired, middleware.RequireCapability(models.CapCreatePosts), postHandler.HandleCreate)
	api.PUT("/posts/:id", authRequired, middleware.RequireCapability(models.CapEditPosts), postHandler.HandleUpdate)
	api.DELETE("/posts/:id", authRequired, middleware.RequireCapability(models.CapDeletePosts), postHandler.HandleDelete)

	// Stories: public reads, capability-gated mutations
	api.GET("/stories", storyHandler.HandleList)
	storyGate := middleware.RequireCapability(models.CapManageStories)
	api.POST("/stories", authRequired, storyGate, storyHandler.HandleCreate)
	api.PUT("/stories/:id", authRequired, storyGate, storyHandler.HandleUpdate)
	api.DELETE("/stories/:id", authRequired, storyGate, storyHandler.HandleDelete)
	api.PATCH("/stories/:id/toggle", authRequired, storyGate, storyHandler.HandleToggle)
}

// allowOrigin builds the CORS origin check from the comma-separated
// ALLOWED_ORIGINS list; localhost is always allowed for development.
func allowOrigin(allowed string) func(origin string) bool {
	var origins []string
	for _, o := range strings.Split(allowed, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return func(origin string) bool {
		if strings.HasPrefix(origin, "http://localhost") {
			return true
		}
		for _, o := range origins {
			if origin == o {
				return true
			}
		}
		return false
	}
}
