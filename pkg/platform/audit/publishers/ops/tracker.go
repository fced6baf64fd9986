// Package ops queues operational audit events without blocking the request
// path. A worker drains the queue into the audit store.
package ops

import (
	"context"
	"time"

	audit "bemyrider/pkg/platform/audit"
)

const DefaultBufferSize = 1024

// Tracker is fire-and-forget: when the queue is full the event is dropped
// and counted.
type Tracker struct {
	queue   chan audit.Event
	metrics *Metrics
}

type Option func(*Tracker)

func WithMetrics(m *Metrics) Option {
	return func(t *Tracker) {
		t.metrics = m
	}
}

func WithBufferSize(n int) Option {
	return func(t *Tracker) {
		if n > 0 {
			t.queue = make(chan audit.Event, n)
		}
	}
}

func New(opts ...Option) *Tracker {
	t := &Tracker{queue: make(chan audit.Event, DefaultBufferSize)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Track enqueues an event. It never blocks.
func (t *Tracker) Track(_ context.Context, event audit.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.Category = audit.CategoryOperations

	select {
	case t.queue <- event:
		t.metrics.IncTracked()
	default:
		t.metrics.IncDropped()
	}
}

// Events exposes the queue to the draining worker.
func (t *Tracker) Events() <-chan audit.Event {
	return t.queue
}
