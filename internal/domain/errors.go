package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound covers the common miss path: unknown hotel id, or a document
// that exists but can no longer be read.
var ErrNotFound = errors.New("hotel not found")

// InvalidFormatError rejects a whole upload batch when any file carries a
// disallowed extension.
type InvalidFormatError struct {
	Rejected []string
	Allowed  []string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid file format(s): %s", strings.Join(e.Rejected, ", "))
}

// PersistenceError wraps a storage failure. The cause is logged server-side;
// callers surface only a generic message.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }
