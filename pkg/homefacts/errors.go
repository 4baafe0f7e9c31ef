package homefacts

import (
	"errors"
	"fmt"
)

// ErrNoPropertyFound is returned when the provider has no record for the
// requested address.
var ErrNoPropertyFound = errors.New("no property found for address")

// Error wraps a provider failure with the operation that produced it and,
// when available, the HTTP status received.
type Error struct {
	Operation string
	Status    int
	Err       error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("homefacts %s failed (status %d): %v", e.Operation, e.Status, e.Err)
	}
	return fmt.Sprintf("homefacts %s failed: %v", e.Operation, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
