package catalog

import (
	"fmt"
)

// UpstreamError reports a failed call to the metadata provider. Endpoint never includes the API key.
type UpstreamError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("tmdb %s: status %d: %v", e.Endpoint, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("tmdb %s: status %d", e.Endpoint, e.Status)
	default:
		return fmt.Sprintf("tmdb %s: %v", e.Endpoint, e.Err)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// retryable reports whether the status is worth another attempt.
func (e *UpstreamError) retryable() bool {
	return e.Status == 429 || e.Status >= 500
}
