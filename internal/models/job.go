package models

// Job is the canonical, provider-independent job record returned to callers.
// It lives for one request/response cycle and is never persisted.
type Job struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	CompanyLogo    string   `json:"companyLogo,omitempty"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	URL            string   `json:"url"`
	PostedDate     string   `json:"postedDate"`
	Salary         string   `json:"salary"`
	Skills         []string `json:"skills"`
	MatchScore     int      `json:"matchScore"`
	Source         string   `json:"source"`
	Publisher      string   `json:"publisher,omitempty"`
	EmploymentType string   `json:"employmentType,omitempty"`
	IsRemote       bool     `json:"isRemote"`
	CommuteTime    string   `json:"commuteTime"`
	Distance       string   `json:"distance"`
}

// Pagination describes the slice of a result set returned for one page.
// StartIndex and EndIndex are 1-based and inclusive; both are 0 when the page is empty.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalJobs   int  `json:"totalJobs"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
	StartIndex  int  `json:"startIndex"`
	EndIndex    int  `json:"endIndex"`
}
