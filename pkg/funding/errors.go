package funding

import (
	"errors"
	"fmt"
)

// ErrSubmissionRejected is returned when the funding network refuses the
// lead outright. Rejections are terminal; retrying does not help.
var ErrSubmissionRejected = errors.New("funding network rejected the submission")

// Error wraps a funding API failure with the operation that produced it
// and, when available, the HTTP status received.
type Error struct {
	Operation string
	Status    int
	Err       error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("funding %s failed (status %d): %v", e.Operation, e.Status, e.Err)
	}
	return fmt.Sprintf("funding %s failed: %v", e.Operation, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
