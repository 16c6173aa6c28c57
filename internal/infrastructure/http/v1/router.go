// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"nextperm/internal/core/apperror"
	"nextperm/internal/infrastructure/http/v1/handlers"
	"nextperm/internal/infrastructure/http/v1/middleware"
	"nextperm/internal/infrastructure/metrics"
	"nextperm/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Permutation computes next permutations
	Permutation handlers.PermutationService

	// Health backs the /health probes
	Health *handlers.HealthHandler

	// Metrics, if set, instruments requests and serves /metrics
	Metrics *metrics.Metrics
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.ErrorHandler())

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NewNotFound("route").WithDetail("path", c.Request.URL.Path))
		c.Abort()
	})

	// Health endpoints
	health := router.Group("/health")
	{
		health.GET("/live", cfg.Health.Live)
		health.GET("/ready", cfg.Health.Ready)
		health.GET("/info", cfg.Health.Info)
	}

	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		handler := handlers.NewPermutationHandler(handlers.NewBaseHandler(), cfg.Permutation)
		handler.RegisterRoutes(v1.Group("/next-permutation"))
	}

	return router
}
