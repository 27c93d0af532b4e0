package jobsearch

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/killallgit/jobscout-api/internal/models"
	"github.com/killallgit/jobscout-api/internal/services/jsearch"
)

const salaryNotDisclosed = "Salary not disclosed"

// Normalizer maps raw provider records to canonical jobs
type Normalizer struct {
	country    string
	matchScore int
	source     string
}

// NewNormalizer creates a normalizer. matchScore is stamped on every job as-is;
// no relevance model is applied.
func NewNormalizer(country string, matchScore int, source string) *Normalizer {
	return &Normalizer{country: country, matchScore: matchScore, source: source}
}

// Normalize converts records to jobs, preserving order
func (n *Normalizer) Normalize(records []jsearch.RawRecord) []models.Job {
	jobs := make([]models.Job, 0, len(records))
	for _, record := range records {
		jobs = append(jobs, n.Job(record))
	}
	return jobs
}

// Job converts one record
func (n *Normalizer) Job(r jsearch.RawRecord) models.Job {
	id, _ := r.ID()

	skills := make([]string, 0, len(r.RequiredSkills))
	for _, skill := range r.RequiredSkills {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}

	job := models.Job{
		ID:             id,
		Title:          jsearch.TextOr(r.Title, ""),
		Company:        jsearch.TextOr(r.EmployerName, ""),
		CompanyLogo:    jsearch.TextOr(r.EmployerLogo, ""),
		Location:       n.Location(r),
		Description:    jsearch.TextOr(r.Description, ""),
		URL:            jsearch.TextOr(r.ApplyLink, ""),
		PostedDate:     PostedDate(r),
		Salary:         FormatSalary(r),
		Skills:         skills,
		MatchScore:     n.matchScore,
		Source:         n.source,
		Publisher:      jsearch.TextOr(r.Publisher, ""),
		EmploymentType: jsearch.TextOr(r.EmploymentType, ""),
	}
	if r.IsRemote != nil {
		job.IsRemote = *r.IsRemote
	}
	return job
}

// Location renders "{city}, {state}, {country}", "{city}, {country}" or "{country}"
func (n *Normalizer) Location(r jsearch.RawRecord) string {
	city, state, _ := r.LocationFields()
	switch {
	case city != "" && state != "":
		return city + ", " + state + ", " + n.country
	case city != "":
		return city + ", " + n.country
	default:
		return n.country
	}
}

// PostedDate prefers the provider's UTC datetime and falls back to the unix timestamp
func PostedDate(r jsearch.RawRecord) string {
	if posted, ok := jsearch.Text(r.PostedAtUTC); ok {
		return posted
	}
	if r.PostedAtTimestamp != nil && *r.PostedAtTimestamp > 0 {
		return time.Unix(*r.PostedAtTimestamp, 0).UTC().Format(time.RFC3339)
	}
	return ""
}

// FormatSalary renders the salary display string. The first applicable rule wins:
// preformatted text, min-max range, min only, max only, currency only,
// provider estimate, then "Salary not disclosed".
func FormatSalary(r jsearch.RawRecord) string {
	if salary, ok := jsearch.Text(r.Salary); ok {
		return salary
	}

	currency := jsearch.TextOr(r.SalaryCurrency, "")
	per := ""
	if period, ok := jsearch.Text(r.SalaryPeriod); ok {
		per = " per " + strings.ToLower(period)
	}

	switch {
	case r.MinSalary != nil && r.MaxSalary != nil:
		return prefixed(currency, amount(*r.MinSalary)+" - "+amount(*r.MaxSalary)) + per
	case r.MinSalary != nil:
		return prefixed(currency, amount(*r.MinSalary)) + "+" + per
	case r.MaxSalary != nil:
		return "Up to " + prefixed(currency, amount(*r.MaxSalary)) + per
	case currency != "":
		return currency + " - " + salaryNotDisclosed
	case r.EstimatedSalary != nil:
		return "Est: " + jsearch.TextOr(r.EstimatedSalary.Range, "Contact for details")
	default:
		return salaryNotDisclosed
	}
}

// amount formats a salary bound without float artifacts: 50000 not 5e+04
func amount(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func prefixed(currency, value string) string {
	if currency == "" {
		return value
	}
	return currency + " " + value
}
