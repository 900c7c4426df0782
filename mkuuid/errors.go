package mkuuid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBuffer is returned when the destination buffer is nil or
	// shorter than [Size].
	ErrInvalidBuffer = errors.New("buffer must hold at least 37 bytes")

	// ErrMalformedUUID is returned when the platform facility produced a
	// value that is not a canonical UUID.
	ErrMalformedUUID = errors.New("malformed UUID")

	// ErrLibraryNotFound is returned by the mkuuid_dlstub variant when the
	// shared library cannot be opened from any search directory.
	ErrLibraryNotFound = errors.New("shared library not found")
)

// MalformedError records the value a platform facility produced when it
// was not a canonical UUID.
type MalformedError struct {
	Value string
}

// Error returns a human-readable description of the malformed value.
func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v: %q", ErrMalformedUUID, e.Value)
}

// Unwrap returns [ErrMalformedUUID].
func (e *MalformedError) Unwrap() error {
	return ErrMalformedUUID
}
