package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned by every operation of a gateway opened
	// without a connection string or database name
	ErrNotConfigured = errors.New("document store not configured")
)

// Error reports a failed store operation. Connection, timeout, auth and
// query failures are all returned wrapped in an Error so callers can tell
// store unavailability apart from their own failures.
type Error struct {
	Op         string
	Collection string
	Err        error
}

func (e *Error) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Collection, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support
func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err originated in the document store
func IsUnavailable(err error) bool {
	var se *Error
	return errors.As(err, &se)
}

func wrap(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Collection: collection, Err: err}
}
