package fiscalcode

import "errors"

var (
	// ErrMissingField reports an absent or unusable input. The wrapping error
	// names the field.
	ErrMissingField = errors.New("missing field")

	// ErrUnresolvableBirthPlace reports a birth place with no Belfiore code
	// when no fallback code is configured.
	ErrUnresolvableBirthPlace = errors.New("unresolvable birth place")

	// ErrInvalidSex reports a sex value other than M, F or empty.
	ErrInvalidSex = errors.New("invalid sex")

	// ErrMalformedCode reports a code or partial code with the wrong shape.
	ErrMalformedCode = errors.New("malformed fiscal code")
)

// FieldError ties a validation failure to the input field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missing(field string) error {
	return &FieldError{Field: field, Err: ErrMissingField}
}
