package jobsearch

import (
	"errors"

	apperrors "github.com/killallgit/jobscout-api/pkg/errors"
)

var (
	// ErrEmptyQuery is returned when neither title nor keywords carry any text
	ErrEmptyQuery = apperrors.EmptyQueryError()

	// ErrAllProvidersFailed is returned when every fanned-out provider call failed.
	// The accompanying Result is still valid and empty.
	ErrAllProvidersFailed = apperrors.ExternalServiceError("jsearch", errors.New("all job provider queries failed"))
)

// IsEmptyQuery reports whether err is an empty-query rejection
func IsEmptyQuery(err error) bool {
	return apperrors.Is(err, apperrors.ErrCodeEmptyQuery)
}
