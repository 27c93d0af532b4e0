package types

import "github.com/killallgit/jobscout-api/internal/models"

// JobSearchRequest is the body of POST /api/v1/jobs/search
type JobSearchRequest struct {
	Title    string `json:"title,omitempty" example:"software engineer"`
	Location string `json:"location,omitempty" example:"Mumbai"` // Defaults to the configured country
	Keywords string `json:"keywords,omitempty" example:"React"`
	Page     int    `json:"page,omitempty" binding:"omitempty,min=1" example:"1"`
	PageSize int    `json:"pageSize,omitempty" binding:"omitempty,oneof=5 10 20 50 100" example:"10"`
	Enhanced bool   `json:"enhanced,omitempty" example:"false"` // Fan out query variants when pageSize > 10
}

// ToModel converts the request body to the engine's search request
func (r JobSearchRequest) ToModel() models.SearchRequest {
	return models.SearchRequest{
		Title:    r.Title,
		Location: r.Location,
		Keywords: r.Keywords,
		Page:     r.Page,
		PageSize: r.PageSize,
		Enhanced: r.Enhanced,
	}
}
