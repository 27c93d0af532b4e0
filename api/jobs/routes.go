package jobs

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/jobscout-api/api/types"
)

// RegisterRoutes registers job routes. searchMiddleware wraps only the search
// endpoint, which is the one that reaches the provider.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, searchMiddleware ...gin.HandlerFunc) {
	router.POST("/search", append(searchMiddleware, PostSearch(deps))...)
	router.GET("/searches", GetSearches(deps))
}
