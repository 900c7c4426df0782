package distprobe

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [Parse], [Verify] and the [Harness].
var (
	// ErrMalformedLine is returned when a line is not of the form
	// "<namespace>.<check> = <value>".
	ErrMalformedLine = errors.New("malformed diagnostic line")

	// ErrBadValue is returned when a diagnostic value is not 0 or 1.
	ErrBadValue = errors.New("diagnostic value must be 0 or 1")

	// ErrDuplicateKey is returned when a fixture emits the same key twice.
	ErrDuplicateKey = errors.New("duplicate diagnostic key")

	// ErrNoDiagnostics is recorded when a fixture printed no lines at all.
	ErrNoDiagnostics = errors.New("no diagnostic lines emitted")

	// ErrMissingKey is recorded when an expected key was not emitted.
	ErrMissingKey = errors.New("expected key not emitted")

	// ErrUnexpectedKey is recorded when a fixture emits a key that is not
	// part of its expectation.
	ErrUnexpectedKey = errors.New("unexpected key emitted")

	// ErrCheckFailed is recorded when a check printed 0.
	ErrCheckFailed = errors.New("check reported 0")

	// ErrNotIdempotent is returned when two runs of the same fixture
	// produced different output.
	ErrNotIdempotent = errors.New("fixture output differs between runs")

	// ErrInvalidUUID is returned when a UUID fixture printed something other
	// than a single canonical UUID.
	ErrInvalidUUID = errors.New("output is not a canonical UUID")

	// ErrUUIDMismatch is returned when a UUID fixture was expected to print a
	// fixed literal and printed something else.
	ErrUUIDMismatch = errors.New("UUID does not match expected literal")

	// ErrInvalidManifest is returned when a manifest fails validation.
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrUnknownFixture is returned when a fixture name is not in the manifest.
	ErrUnknownFixture = errors.New("unknown fixture")
)

// CommandError records a failed fixture execution.
// Use [errors.As] to extract the command name from wrapped errors.
type CommandError struct {
	Command string // executable path, e.g. "vendor/bin/e1"
	Err     error  // underlying error from exec
}

// Error returns a human-readable description of the command failure.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ParseError records a failure while parsing fixture output.
type ParseError struct {
	Line int    // 1-based line number, 0 when parsing a single line
	Text string // offending text
	Err  error  // underlying error
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
	}

	return fmt.Sprintf("%q: %v", e.Text, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// CheckError records a verification failure for a specific key.
// These errors are joined by [Verify] and can be inspected with [errors.As].
type CheckError struct {
	Key string // fully qualified key, e.g. "e2e.dist.exe-install-to-bin"
	Err error  // one of ErrMissingKey, ErrUnexpectedKey, ErrCheckFailed
}

// Error returns a human-readable description of the check failure.
func (e *CheckError) Error() string {
	return fmt.Sprintf("key %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *CheckError) Unwrap() error {
	return e.Err
}
