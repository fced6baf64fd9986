// Package store persists rider and merchant tax details.
//
// Three implementations share the same method set: InMemoryStore for local
// runs and tests, PostgresStore for production, and RedisCache, which is a
// read-through cache in front of either.
package store

import "bemyrider/pkg/platform/sentinel"

var (
	// ErrNotFound is returned when no record exists for the requested ID.
	ErrNotFound = sentinel.ErrNotFound
	// ErrCacheUnavailable wraps Redis transport failures.
	ErrCacheUnavailable = sentinel.ErrUnavailable
)
