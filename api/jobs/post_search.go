package jobs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/killallgit/jobscout-api/api/types"
	"github.com/killallgit/jobscout-api/internal/models"
	"github.com/killallgit/jobscout-api/internal/services/jobsearch"
	apperrors "github.com/killallgit/jobscout-api/pkg/errors"
)

// PostSearch handles aggregated job search requests
// @Summary      Search for jobs
// @Description  Fans out one or more queries to the job provider, merges and deduplicates the results, filters them by location and returns one page
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        request body types.JobSearchRequest true "Search parameters"
// @Success      200 {object} types.JobSearchResponse "One page of jobs, or success=false when every provider query failed"
// @Failure      400 {object} types.ErrorResponse "Bad request - empty query or invalid paging"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Failure      503 {object} types.ErrorResponse "Search service not configured"
// @Router       /api/v1/jobs/search [post]
func PostSearch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Searcher == nil {
			types.RespondError(c, apperrors.ServiceDownError("search service"))
			return
		}

		var req types.JobSearchRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		result, err := deps.Searcher.Search(c.Request.Context(), req.ToModel())
		switch {
		case errors.Is(err, jobsearch.ErrAllProvidersFailed):
			c.JSON(http.StatusOK, types.JobSearchResponse{
				Success:    false,
				Jobs:       []models.Job{},
				Pagination: models.Pagination{},
				Enhanced:   result != nil && result.Enhanced,
				Error:      "Unable to fetch jobs right now. Please try again.",
			})
			return
		case err != nil:
			if !jobsearch.IsEmptyQuery(err) {
				log.Error().Err(err).Msg("job search failed")
			}
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.JobSearchResponse{
			Success:    true,
			Jobs:       result.Jobs,
			Pagination: result.Pagination,
			Message:    result.Message,
			Enhanced:   result.Enhanced,
		})
	}
}
