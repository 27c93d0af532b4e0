package jobsearch

import (
	"strings"

	"github.com/killallgit/jobscout-api/internal/services/jsearch"
)

// LocationFilter keeps records located in the target country and, when a
// sub-location was requested, records whose location fields mention it.
//
// Matching is plain case-insensitive substring containment. The two-letter
// country code matches inside unrelated words ("in" appears in "Berlin"), and
// abbreviations such as "BLR" never match "Bengaluru". Both are accepted
// properties of the heuristic.
type LocationFilter struct {
	country     string
	countryCode string
}

// NewLocationFilter creates a filter for the given country name and ISO code
func NewLocationFilter(country, countryCode string) *LocationFilter {
	return &LocationFilter{
		country:     strings.ToLower(strings.TrimSpace(country)),
		countryCode: strings.ToLower(strings.TrimSpace(countryCode)),
	}
}

// Filter returns the records that pass the country gate and, when location
// names something narrower than the country, the sub-location gate.
func (f *LocationFilter) Filter(records []jsearch.RawRecord, location string) []jsearch.RawRecord {
	tokens := f.Tokens(location)

	kept := make([]jsearch.RawRecord, 0, len(records))
	for _, record := range records {
		if !f.InCountry(record) {
			continue
		}
		if len(tokens) > 0 && !matchesAny(record, tokens) {
			continue
		}
		kept = append(kept, record)
	}
	return kept
}

// InCountry reports whether any location field of record names the target country
func (f *LocationFilter) InCountry(record jsearch.RawRecord) bool {
	city, state, country := record.LocationFields()
	if f.countryCode != "" && strings.EqualFold(country, f.countryCode) {
		return true
	}
	for _, field := range []string{city, state, country} {
		field = strings.ToLower(field)
		if field == "" {
			continue
		}
		if f.country != "" && strings.Contains(field, f.country) {
			return true
		}
		if f.countryCode != "" && strings.Contains(field, f.countryCode) {
			return true
		}
	}
	return false
}

// Tokens returns the usable sub-location tokens of a requested location.
// It returns nil when location is the country itself or holds nothing more specific.
func (f *LocationFilter) Tokens(location string) []string {
	location = strings.ToLower(strings.TrimSpace(location))
	if location == "" || location == f.country {
		return nil
	}

	var tokens []string
	for _, token := range strings.FieldsFunc(location, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	}) {
		if len(token) <= 2 || token == f.country || token == f.countryCode {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func matchesAny(record jsearch.RawRecord, tokens []string) bool {
	city, state, country := record.LocationFields()
	combined := strings.ToLower(city + " " + state + " " + country)
	for _, token := range tokens {
		if strings.Contains(combined, token) {
			return true
		}
	}
	return false
}
