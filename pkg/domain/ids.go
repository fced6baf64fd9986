package domain

import (
	"github.com/google/uuid"

	dErrors "bemyrider/pkg/domain-errors"
)

// RiderID identifies a rider profile. Distinct from MerchantID at compile time
// so tax records cannot be stored under the wrong party.
type RiderID uuid.UUID

// MerchantID identifies a merchant (esercente) profile.
type MerchantID uuid.UUID

// ParseRiderID parses a rider ID at a trust boundary.
//
// Errors: returns CodeInvalidInput for empty, malformed, or nil UUIDs.
func ParseRiderID(s string) (RiderID, error) {
	u, err := parseUUID(s, "rider_id")
	if err != nil {
		return RiderID{}, err
	}
	return RiderID(u), nil
}

// ParseMerchantID parses a merchant ID at a trust boundary.
//
// Errors: returns CodeInvalidInput for empty, malformed, or nil UUIDs.
func ParseMerchantID(s string) (MerchantID, error) {
	u, err := parseUUID(s, "merchant_id")
	if err != nil {
		return MerchantID{}, err
	}
	return MerchantID(u), nil
}

func (id RiderID) String() string    { return uuid.UUID(id).String() }
func (id MerchantID) String() string { return uuid.UUID(id).String() }

// IsNil returns true for the zero ID.
func (id RiderID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// IsNil returns true for the zero ID.
func (id MerchantID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText encodes the canonical UUID form so IDs read naturally in JSON.
func (id RiderID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *RiderID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = RiderID(u)
	return nil
}

func (id MerchantID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *MerchantID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = MerchantID(u)
	return nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" cannot be empty")
	}
	// Canonical 36-char form only; uuid.Parse also accepts urn/braced forms.
	if len(s) != 36 {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+field)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+field)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" cannot be nil")
	}
	return u, nil
}
