package jsearch

import "strings"

// Query is one provider call
type Query struct {
	Text     string
	Location string
	Country  string // ISO code, sent lower-case
	Page     int
	PageSize int // requested result page size, used to derive num_pages
}

// SearchResponse mirrors the top-level provider response
type SearchResponse struct {
	Status    string      `json:"status"`
	RequestID string      `json:"request_id"`
	Error     *APIMessage `json:"error,omitempty"`
	Data      []RawRecord `json:"data"`
}

// APIMessage is the provider's error envelope
type APIMessage struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// RawRecord is one provider job listing. Every field is optional; absence is
// represented by a nil pointer rather than a zero value.
type RawRecord struct {
	JobID             *string          `json:"job_id"`
	Title             *string          `json:"job_title"`
	EmployerName      *string          `json:"employer_name"`
	EmployerLogo      *string          `json:"employer_logo"`
	Publisher         *string          `json:"job_publisher"`
	EmploymentType    *string          `json:"job_employment_type"`
	City              *string          `json:"job_city"`
	State             *string          `json:"job_state"`
	Country           *string          `json:"job_country"`
	Description       *string          `json:"job_description"`
	ApplyLink         *string          `json:"job_apply_link"`
	PostedAtUTC       *string          `json:"job_posted_at_datetime_utc"`
	PostedAtTimestamp *int64           `json:"job_posted_at_timestamp"`
	MinSalary         *float64         `json:"job_min_salary"`
	MaxSalary         *float64         `json:"job_max_salary"`
	SalaryCurrency    *string          `json:"job_salary_currency"`
	SalaryPeriod      *string          `json:"job_salary_period"`
	Salary            *string          `json:"job_salary"`
	RequiredSkills    []string         `json:"job_required_skills"`
	IsRemote          *bool            `json:"job_is_remote"`
	EstimatedSalary   *EstimatedSalary `json:"estimated_salary"`
}

// EstimatedSalary is the provider's salary estimate sub-object
type EstimatedSalary struct {
	MinSalary      *float64 `json:"min_salary"`
	MaxSalary      *float64 `json:"max_salary"`
	SalaryCurrency *string  `json:"salary_currency"`
	SalaryPeriod   *string  `json:"salary_period"`
	Range          *string  `json:"range"`
}

// Text returns the trimmed value of an optional string and whether it is non-blank
func Text(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}

// TextOr returns the trimmed value of s, or fallback when absent
func TextOr(s *string, fallback string) string {
	if v, ok := Text(s); ok {
		return v
	}
	return fallback
}

// ID returns the provider-assigned job id
func (r RawRecord) ID() (string, bool) {
	return Text(r.JobID)
}

// WithID returns a copy of the record carrying the given id
func (r RawRecord) WithID(id string) RawRecord {
	r.JobID = &id
	return r
}

// LocationFields returns city, state and country, blank when absent
func (r RawRecord) LocationFields() (city, state, country string) {
	return TextOr(r.City, ""), TextOr(r.State, ""), TextOr(r.Country, "")
}
