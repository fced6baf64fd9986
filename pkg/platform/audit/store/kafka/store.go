package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	audit "bemyrider/pkg/platform/audit"
)

// Publisher is the slice of the Kafka producer the store needs.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

// Store implements audit.Store by publishing JSON events keyed by subject,
// so all events for one rider or merchant land on the same partition.
type Store struct {
	publisher Publisher
}

func New(publisher Publisher) *Store {
	return &Store{publisher: publisher}
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.Category = audit.AuditEvent(event.Action).Category()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	if err := s.publisher.Publish(ctx, []byte(event.Subject), payload); err != nil {
		return fmt.Errorf("publish audit event: %w", err)
	}
	return nil
}
