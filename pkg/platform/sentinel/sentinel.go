// Package sentinel holds infrastructure facts that stores return, optionally
// wrapped, and services translate into domain errors.
package sentinel

import "errors"

var (
	// ErrNotFound means the record does not exist in the store or cache.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable means a backing service could not be reached.
	ErrUnavailable = errors.New("unavailable")
)
