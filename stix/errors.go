package stix

import (
	"errors"
	"fmt"
)

// ErrMissingType is returned when a wire object has no "type" field, or the
// field is not a string.
var ErrMissingType = errors.New("missing or invalid `type` field")

// UnknownTypeError is returned when a wire object carries a type discriminant
// that is neither a known STIX type nor a custom ("x-" prefixed) type.
type UnknownTypeError struct {
	// Type is the offending discriminant as it appeared on the wire.
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type: %s", e.Type)
}

// Is matches any UnknownTypeError with the same discriminant, or the bare
// *UnknownTypeError type when the target carries an empty Type.
func (e *UnknownTypeError) Is(target error) bool {
	t, ok := target.(*UnknownTypeError)
	if !ok {
		return false
	}
	return t.Type == "" || t.Type == e.Type
}

// MissingFieldError is returned by object builders when a required field was
// not supplied. It is recoverable: set the field and build again.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Is matches any MissingFieldError with the same field name, or the bare
// *MissingFieldError type when the target carries an empty Field.
func (e *MissingFieldError) Is(target error) bool {
	t, ok := target.(*MissingFieldError)
	if !ok {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}
