package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/jobscout-api/api/types"
)

// pinger is implemented by caches backed by a remote store
type pinger interface {
	Ping(ctx context.Context) error
}

// Get handles health check requests
// @Summary      Health check
// @Description  Reports the status of the search log database and result cache
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse "Service healthy"
// @Failure      503 {object} types.HealthResponse "A configured dependency is unhealthy"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services := map[string]map[string]string{
			"database": getDatabaseStatus(ctx, deps),
			"cache":    getCacheStatus(ctx, deps),
		}

		status := types.StatusOK
		code := http.StatusOK
		for _, svc := range services {
			if svc["status"] == "unhealthy" {
				status = types.StatusError
				code = http.StatusServiceUnavailable
			}
		}

		c.JSON(code, types.HealthResponse{
			Status:    status,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Services:  services,
		})
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(ctx context.Context, deps *types.Dependencies) map[string]string {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return map[string]string{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(ctx); err != nil {
		return map[string]string{"status": "unhealthy", "error": err.Error()}
	}

	return map[string]string{"status": "healthy"}
}

func getCacheStatus(ctx context.Context, deps *types.Dependencies) map[string]string {
	if deps == nil || deps.Cache == nil {
		return map[string]string{"status": "disabled"}
	}

	p, ok := deps.Cache.(pinger)
	if !ok {
		return map[string]string{"status": "healthy", "backend": "memory"}
	}
	if err := p.Ping(ctx); err != nil {
		return map[string]string{"status": "unhealthy", "backend": "redis", "error": err.Error()}
	}
	return map[string]string{"status": "healthy", "backend": "redis"}
}
