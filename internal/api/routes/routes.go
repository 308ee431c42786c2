package routes

import (
	"league-tracker-backend/internal/api/handlers"
	"league-tracker-backend/internal/api/middleware"
	"league-tracker-backend/internal/auth"
	"league-tracker-backend/internal/certifier"
	"league-tracker-backend/internal/config"
	"league-tracker-backend/internal/forecast"
	"league-tracker-backend/internal/logger"
	"league-tracker-backend/internal/providers"
	"league-tracker-backend/internal/repository"
	"league-tracker-backend/internal/service"
	"league-tracker-backend/internal/snapshot"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	leagueRepo := repository.NewLeagueRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Initialize the verdict and probability engines
	cert := certifier.New(certifier.WithTimeLimit(cfg.SolverTimeLimit()))
	estimator := forecast.NewEstimator(forecast.WithWorkers(cfg.ForecastWorkers))
	composer := snapshot.NewComposer(cert, estimator, logger.New())

	// Team-name aliases for provider sync
	nameMap, err := providers.LoadNameMap(cfg.TeamNameMapPath)
	if err != nil {
		log.Printf("Warning: Failed to load team name map: %v", err)
		nameMap = providers.NewNameMap(nil)
	}

	// Initialize services
	leagueService := service.NewLeagueService(leagueRepo, validator)
	statusService := service.NewStatusService(leagueService, snapshotRepo, composer, cfg)
	syncService := service.NewSyncService(leagueService, leagueRepo, nameMap, cfg)
	publishService := service.NewPublishService(statusService, cfg)

	// Initialize auth middleware for mutating endpoints
	authMiddleware := auth.NewAuthMiddleware(cfg.APITokenSecret)
	requireAuth := authMiddleware.RequireAuth()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	leagueHandler := handlers.NewLeagueHandler(leagueService)
	statusHandler := handlers.NewStatusHandler(statusService)
	syncHandler := handlers.NewSyncHandler(syncService)
	publishHandler := handlers.NewPublishHandler(publishService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes. Reads are open, writes require a bearer token.
	v1 := router.Group("/api/v1")
	{
		leagues := v1.Group("/leagues")
		{
			leagues.GET("", leagueHandler.ListLeagues)
			leagues.POST("", requireAuth, leagueHandler.CreateLeague)
			leagues.GET("/:id", leagueHandler.GetLeague)
			leagues.GET("/by-name/:name", leagueHandler.GetLeagueByName)
			leagues.DELETE("/:id", requireAuth, leagueHandler.DeleteLeague)
			leagues.POST("/:id/results", requireAuth, leagueHandler.SubmitResult)
			leagues.GET("/:id/table", leagueHandler.GetTable)
			leagues.GET("/:id/remaining", leagueHandler.GetRemaining)
			leagues.GET("/:id/status", statusHandler.GetStatus)
			leagues.POST("/:id/sync", requireAuth, syncHandler.Sync)
			leagues.POST("/:id/publish", requireAuth, publishHandler.Publish)
		}
	}

	return router
}
