package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"vacaturebord/internal/auth"
	"vacaturebord/internal/config"
	"vacaturebord/internal/database"
	"vacaturebord/internal/handlers"
	"vacaturebord/internal/logger"
	"vacaturebord/internal/services"
	"vacaturebord/internal/storage"
)

func main() {
	// 1. Logging & Environment
	logger.Init()
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.AdminPassword == "admin123" {
		log.Warn().Msg("ADMIN_PASSWORD is the default value, override it in production")
	}

	// 2. Storage
	db := database.Connect(cfg.DatabasePath)

	uploads, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare upload dir")
	}

	// 3. Core Services
	jobService := services.NewJobService(db, uploads)
	applicationService := services.NewApplicationService(db, uploads)

	// 4. Admin Gate & Handlers
	gate := auth.NewGate(cfg.AdminPassword)
	jobHandler := handlers.NewJobHandler(jobService, applicationService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, uploads)
	adminHandler := handlers.NewAdminHandler(jobService)

	// 5. Router & CORS
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(loggerMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Admin-Password"}
	r.Use(cors.New(corsConfig))

	// 6. Routes
	r.GET("/health", handlers.HealthCheck)

	r.GET("/", jobHandler.ListJobs)
	r.GET("/job/:id", jobHandler.GetJob)
	r.POST("/apply/:id", applicationHandler.Apply)
	r.GET("/uploads/:filename", applicationHandler.ServeCV)

	admin := r.Group("/admin", gate.Middleware())
	{
		admin.GET("", adminHandler.Overview)
		admin.POST("", adminHandler.CreateJob)
		admin.POST("/delete/:id", adminHandler.DeleteJob)
	}

	log.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
