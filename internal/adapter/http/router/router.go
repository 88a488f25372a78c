package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"textgate/internal/adapter/client"
	"textgate/internal/adapter/http/handler"
	"textgate/internal/adapter/http/middleware"
	"textgate/internal/adapter/repository/postgres"
	"textgate/internal/infrastructure/cache"
	"textgate/internal/infrastructure/config"
	"textgate/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(db *gorm.DB, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(db, redisClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	usageRepo := postgres.NewUsageRepository(db)

	// Session cache is optional; nil when Redis is unavailable
	var sessionCache usecase.SessionCache
	if redisClient != nil {
		sessionCache = cache.NewSessionCache(redisClient)
	}

	// Upstream provider clients
	gateway := client.NewGateway(
		client.NewHuggingFaceClient(cfg.Providers.HuggingFaceURL, cfg.Providers.Timeout()),
		client.NewGoogleNLPClient(cfg.Providers.GoogleNLPURL, cfg.Providers.Timeout()),
		client.NewOpenAIClient(cfg.Providers.OpenAIURL, cfg.Providers.Timeout()),
	)

	// Initialize usecases
	authUC := usecase.NewAuthUsecase(userRepo, sessionRepo, sessionCache, cfg.Auth.SessionTTL())
	dispatchUC := usecase.NewDispatchUsecase(userRepo, usageRepo, gateway)
	profileUC := usecase.NewProfileUsecase(userRepo)
	usageUC := usecase.NewUsageUsecase(usageRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUC)
	processHandler := handler.NewProcessHandler(dispatchUC)
	profileHandler := handler.NewProfileHandler(profileUC, usageUC)

	// API routes
	api := router.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		authorized := api.Group("")
		authorized.Use(middleware.BearerAuth(authUC))
		{
			authorized.POST("/logout", authHandler.Logout)
			authorized.POST("/process", processHandler.Process)
			authorized.GET("/usage", profileHandler.Usage)
			authorized.GET("/profile", profileHandler.Profile)
			authorized.PUT("/update_profile", profileHandler.UpdateProfile)
		}
	}

	return router
}
