package models

import (
	"time"
)

// EndpointClass groups routes that share a request budget.
type EndpointClass string

const (
	// ClassCompute covers the stateless /fiscal-code endpoints.
	ClassCompute EndpointClass = "compute"
	// ClassRecords covers the rider and merchant tax-details endpoints.
	ClassRecords EndpointClass = "records"
)

func (c EndpointClass) IsValid() bool {
	switch c {
	case ClassCompute, ClassRecords:
		return true
	}
	return false
}

// Limit is the request budget of one class per client.
type Limit struct {
	Requests int
	Window   time.Duration
}

// RateLimitResult is the outcome of a single check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
	// RetryAfter is in whole seconds and only set when Allowed is false.
	RetryAfter int
}

// Key builds the bucket key for a client and class.
func Key(class EndpointClass, client string) string {
	return "ratelimit:" + string(class) + ":" + client
}
