package jobs

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/jobscout-api/api/types"
	apperrors "github.com/killallgit/jobscout-api/pkg/errors"
)

// GetSearches lists recently executed searches
// @Summary      List recent searches
// @Description  Returns metadata about the most recent searches, newest first. No job data is stored.
// @Tags         jobs
// @Produce      json
// @Param        limit query int false "Maximum rows (1-100)" default(20)
// @Success      200 {object} types.SearchLogsResponse "Recent searches"
// @Failure      400 {object} types.ErrorResponse "Invalid limit"
// @Failure      503 {object} types.ErrorResponse "Search log not configured"
// @Router       /api/v1/jobs/searches [get]
func GetSearches(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.SearchLogs == nil {
			types.RespondError(c, apperrors.ServiceDownError("search log"))
			return
		}

		limit := 0
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Error: "limit must be a positive integer",
				})
				return
			}
			limit = parsed
		}

		logs, err := deps.SearchLogs.Recent(c.Request.Context(), limit)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.SearchLogsResponse{
			Success:  true,
			Searches: logs,
			Count:    len(logs),
		})
	}
}
