package models

import "strings"

// Default request values
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// AllowedPageSizes are the page sizes a search may request
var AllowedPageSizes = []int{5, 10, 20, 50, 100}

// SearchRequest is one free-text job search
type SearchRequest struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Keywords string `json:"keywords"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Enhanced bool   `json:"enhanced"`
}

// WithDefaults returns a copy with blank fields filled in and text fields trimmed
func (r SearchRequest) WithDefaults(defaultLocation string) SearchRequest {
	r.Title = strings.TrimSpace(r.Title)
	r.Keywords = strings.TrimSpace(r.Keywords)
	r.Location = strings.TrimSpace(r.Location)
	if r.Location == "" {
		r.Location = defaultLocation
	}
	if r.Page == 0 {
		r.Page = DefaultPage
	}
	if r.PageSize == 0 {
		r.PageSize = DefaultPageSize
	}
	return r
}

// IsAllowedPageSize reports whether size is one of AllowedPageSizes
func IsAllowedPageSize(size int) bool {
	for _, allowed := range AllowedPageSizes {
		if size == allowed {
			return true
		}
	}
	return false
}
