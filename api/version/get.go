package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is set at build time via -ldflags
var Version = "1.0.0"

// Get handles version requests
// @Summary      Service information
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "JobScout API",
			"version":     Version,
			"description": "Aggregated, deduplicated and paginated job search",
			"status":      "running",
		})
	}
}
