package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// EventCategory classifies audit events by their retention needs.
type EventCategory string

const (
	// CategoryCompliance covers changes to fiscal records. These are written
	// synchronously and the business operation fails if the write fails.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine activity such as code calculations.
	// These are queued and may be dropped under pressure.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	// Subject identifies the record owner, e.g. "rider:<uuid>".
	Subject string `json:"subject"`
	Action  string `json:"action"`
	Reason  string `json:"reason,omitempty"`
	// SubjectIDHash is a SHA-256 hash of the fiscal identifier involved
	// (codice fiscale or VAT number). The raw value never reaches the log.
	SubjectIDHash string `json:"subject_id_hash,omitempty"`
	RequestID     string `json:"request_id,omitempty"`
}

type AuditEvent string

const (
	EventRiderTaxDetailsSaved    AuditEvent = "rider_tax_details_saved"
	EventMerchantTaxDetailsSaved AuditEvent = "merchant_tax_details_saved"
	EventFiscalCodeCalculated    AuditEvent = "fiscal_code_calculated"
	EventFiscalCodeRejected      AuditEvent = "fiscal_code_rejected"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventRiderTaxDetailsSaved:    CategoryCompliance,
	EventMerchantTaxDetailsSaved: CategoryCompliance,
	EventFiscalCodeCalculated:    CategoryOperations,
	EventFiscalCodeRejected:      CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists audit events. Implementations: in-memory, Postgres, Kafka.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// HashSubjectID returns the hex SHA-256 of an identifier after trimming and
// uppercasing, so the same code always hashes the same way.
func HashSubjectID(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
