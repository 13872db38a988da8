package types

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrNotFound marks an upstream 404 for a documentation path.
	ErrNotFound = errors.New("documentation not found")

	// Search result errors
	ErrMissingTitle     = errors.New("title is required")
	ErrMissingFramework = errors.New("framework is required")
)

// FetchError reports a failed upstream fetch. Resource names the logical
// document (framework name, documentation path, or "technologies"); URL is
// the concrete address that failed.
type FetchError struct {
	Resource string
	URL      string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.Resource, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
