package jobsearch

import "github.com/killallgit/jobscout-api/internal/models"

// Paginate returns the jobs on the requested page and the pagination metadata.
// A page past the end yields an empty slice, not an error. page and pageSize
// must be positive.
func Paginate(jobs []models.Job, page, pageSize int) ([]models.Job, models.Pagination) {
	total := len(jobs)
	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	// (page-1)*pageSize overflows for huge pages, so only in-range pages are multiplied out
	start := total
	if page <= totalPages {
		start = (page - 1) * pageSize
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	pageJobs := make([]models.Job, end-start)
	copy(pageJobs, jobs[start:end])

	pagination := models.Pagination{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalJobs:   total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
	if len(pageJobs) > 0 {
		pagination.StartIndex = start + 1
		pagination.EndIndex = end
	}
	return pageJobs, pagination
}
