// Package mkuuid writes a freshly generated UUID into a caller-supplied
// buffer using the facility native to the target platform.
//
// The platform implementation is chosen at build time:
//
//   - windows: the OLE/RPC GUID generator
//   - darwin: uuidgen, backed by CoreFoundation's CFUUID
//   - linux: a random (version 4) UUID, formatted like libuuid's
//     uuid_unparse_lower
//
// Other platforms fail to compile.
//
// Building on linux with the mkuuid_dlstub tag selects a test-only variant
// that only proves libuuid can be opened and then returns [StubUUID]. It
// exists to verify that linker configuration for an optional shared library
// takes effect and must never be used to produce real identifiers.
package mkuuid

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/slashdevops/distprobe"
)

// Size is the minimum buffer capacity: 36 visible characters plus a NUL.
const Size = 37

// Status values returned by [Generate].
const (
	StatusOK     = 0
	StatusFailed = -1
)

// StubUUID is the literal returned by the mkuuid_dlstub variant.
const StubUUID = "7DC75063-2639-40F9-AF00-0B2DDCD3CB62"

// defaultTimeout bounds external commands such as uuidgen.
const defaultTimeout = 3 * time.Second

// Generator writes a canonical UUID string into buf.
type Generator interface {
	Generate(ctx context.Context, buf []byte) error
}

// Provider is the platform [Generator].
type Provider struct {
	commandExecutor distprobe.CommandExecutor
	logger          *slog.Logger
}

var _ Generator = (*Provider)(nil)

// New creates a Provider that uses the native facility of the platform.
func New() *Provider {
	return &Provider{
		commandExecutor: distprobe.NewCommandExecutor(defaultTimeout),
	}
}

// WithExecutor sets a custom [distprobe.CommandExecutor] for platforms that
// shell out to a system tool.
func (p *Provider) WithExecutor(executor distprobe.CommandExecutor) *Provider {
	p.commandExecutor = executor

	return p
}

// WithLogger sets an optional [*slog.Logger]. A nil logger (the default)
// disables all logging.
func (p *Provider) WithLogger(logger *slog.Logger) *Provider {
	p.logger = logger

	return p
}

// Generate writes a new UUID followed by a NUL byte into buf. buf must be
// non-nil and hold at least [Size] bytes; otherwise [ErrInvalidBuffer] is
// returned and buf is left untouched.
func (p *Provider) Generate(ctx context.Context, buf []byte) error {
	if len(buf) < Size {
		p.logDebug("rejecting buffer", "len", len(buf))

		return ErrInvalidBuffer
	}

	s, err := platformUUID(ctx, p)
	if err != nil {
		return err
	}

	if !isCanonical(s) {
		return &MalformedError{Value: s}
	}

	n := copy(buf, s)
	buf[n] = 0

	p.logDebug("uuid generated", "uuid", s)

	return nil
}

// String returns a new UUID as a 36-character string.
func (p *Provider) String(ctx context.Context) (string, error) {
	buf := make([]byte, Size)
	if err := p.Generate(ctx, buf); err != nil {
		return "", err
	}

	return CString(buf), nil
}

// Generate writes a UUID into buf with the default provider and reports the
// outcome as [StatusOK] or [StatusFailed].
func Generate(buf []byte) int {
	if err := New().Generate(context.Background(), buf); err != nil {
		return StatusFailed
	}

	return StatusOK
}

// CString returns the contents of buf up to the first NUL byte.
func CString(buf []byte) string {
	s := string(buf)
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}

	return s
}

// isCanonical reports whether s has the 8-4-4-4-12 hexadecimal layout.
func isCanonical(s string) bool {
	return distprobe.CanonicalUUID(s) == nil
}

// logDebug logs at debug level if a logger is configured.
func (p *Provider) logDebug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
