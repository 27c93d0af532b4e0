package jsearch

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse indicates the provider body could not be decoded
var ErrMalformedResponse = errors.New("malformed provider response")

// ProviderError is returned when a single provider call fails. It carries the
// query that failed so the caller can log and exclude it.
type ProviderError struct {
	Query      string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("jsearch query %q failed with status %d: %v", e.Query, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("jsearch query %q failed: %v", e.Query, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsProviderError reports whether err is (or wraps) a ProviderError
func IsProviderError(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}
