package jobsearch

import (
	"strings"

	"github.com/killallgit/jobscout-api/internal/models"
)

// minQueryLength is the length at or below which an expanded query is discarded
const minQueryLength = 3

// QueryBuilder turns a search request into the provider query strings to fan out
type QueryBuilder struct {
	country           string
	maxQueries        int
	enhancedThreshold int
}

// NewQueryBuilder creates a query builder. maxQueries bounds the enhanced
// fan-out; enhancedThreshold is the page size above which enhanced expansion applies.
func NewQueryBuilder(country string, maxQueries, enhancedThreshold int) *QueryBuilder {
	if maxQueries <= 0 {
		maxQueries = 3
	}
	if enhancedThreshold <= 0 {
		enhancedThreshold = 10
	}
	return &QueryBuilder{
		country:           country,
		maxQueries:        maxQueries,
		enhancedThreshold: enhancedThreshold,
	}
}

// BaseQuery joins the non-blank title and keywords
func BaseQuery(req models.SearchRequest) string {
	return collapse(req.Title + " " + req.Keywords)
}

// IsEnhanced reports whether req takes the multi-query path
func (b *QueryBuilder) IsEnhanced(req models.SearchRequest) bool {
	return req.Enhanced && req.PageSize > b.enhancedThreshold
}

// Build returns the ordered, distinct query strings for req. Every query is
// sent with req.Location.
func (b *QueryBuilder) Build(req models.SearchRequest) ([]string, error) {
	base := BaseQuery(req)
	if base == "" {
		return nil, ErrEmptyQuery
	}
	if !b.IsEnhanced(req) {
		return []string{base}, nil
	}

	title := strings.TrimSpace(req.Title)
	keywords := strings.TrimSpace(req.Keywords)
	location := strings.TrimSpace(req.Location)

	candidates := []string{
		base,
		title + " " + location,
		keywords + " jobs " + location,
		title + " developer " + location,
		title + " engineer " + location,
	}
	if !b.isCountry(location) {
		candidates = append(candidates,
			title+" jobs in "+location,
			base+" "+location+" "+b.country,
			keywords+" "+location,
		)
	}

	seen := make(map[string]struct{}, len(candidates))
	queries := make([]string, 0, b.maxQueries)
	for _, candidate := range candidates {
		q := collapse(candidate)
		if len(q) <= minQueryLength {
			continue
		}
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		queries = append(queries, q)
		if len(queries) == b.maxQueries {
			break
		}
	}
	if len(queries) == 0 {
		return []string{base}, nil
	}
	return queries, nil
}

func (b *QueryBuilder) isCountry(location string) bool {
	return strings.EqualFold(location, b.country)
}

// collapse trims s and squeezes internal whitespace runs to a single space
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
