package cache

import (
	"errors"
	"fmt"
)

// ErrCacheMiss indicates the key was absent. Callers treat it as a normal
// outcome, not a failure.
var ErrCacheMiss = errors.New("cache miss")

// CacheError wraps a failed redis operation with the operation name so the
// error mapper can report cache trouble distinctly from database trouble.
type CacheError struct {
	Operation string
	Err       error
}

func NewCacheError(operation string, err error) *CacheError {
	return &CacheError{Operation: operation, Err: err}
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s: %v", e.Operation, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}
