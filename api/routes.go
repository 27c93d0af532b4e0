package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/jobscout-api/api/health"
	"github.com/killallgit/jobscout-api/api/jobs"
	"github.com/killallgit/jobscout-api/api/types"
	"github.com/killallgit/jobscout-api/api/version"
	_ "github.com/killallgit/jobscout-api/docs/swagger"
	"github.com/killallgit/jobscout-api/internal/metrics"
	"github.com/killallgit/jobscout-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, cfg *config.Config, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.Monitoring.Enabled && cfg.Monitoring.MetricsPath != "" {
		engine.GET(cfg.Monitoring.MetricsPath, gin.WrapH(metrics.Handler()))
	}

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	v1 := engine.Group("/api/v1")

	// Searches reach the provider, so only they are rate limited
	var searchMiddleware []gin.HandlerFunc
	if cfg.RateLimiting.Enabled {
		searchMiddleware = append(searchMiddleware,
			PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, cfg.RateLimiting.SearchRPS, cfg.RateLimiting.SearchBurst))
	}
	jobs.RegisterRoutes(v1.Group("/jobs"), deps, searchMiddleware...)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
