package catalog

import "fmt"

// UpstreamError is a non-success HTTP status from the catalog service.
// Calls are never retried; the caller decides what to do.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog upstream error: status %d", e.StatusCode)
}

// NotFoundError means the requested game id does not exist upstream.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("game %d not found", e.ID)
}
