package distprobe

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Result holds what a fixture printed and how it was judged.
type Result struct {
	Fixture Fixture
	Lines   []Line // diagnostic lines, KindChecks only
	UUID    string // printed UUID, KindUUID only
	Err     error  // verification error, nil when the fixture passed
}

// Passed reports whether the fixture satisfied its expectation.
func (r *Result) Passed() bool {
	return r.Err == nil
}

// Harness executes installed fixtures and judges their output.
// A Harness is safe for concurrent use once configured.
type Harness struct {
	commandExecutor CommandExecutor // nil selects the process executor
	logger          *slog.Logger
	timeout         time.Duration
}

// NewHarness creates a Harness that executes real processes.
func NewHarness() *Harness {
	return &Harness{
		timeout: defaultTimeout,
	}
}

// WithExecutor sets a custom [CommandExecutor], enabling deterministic testing
// without real fixture binaries.
func (h *Harness) WithExecutor(executor CommandExecutor) *Harness {
	h.commandExecutor = executor

	return h
}

// WithTimeout bounds each fixture execution by the default executor. It has
// no effect on an executor set with [Harness.WithExecutor].
func (h *Harness) WithTimeout(timeout time.Duration) *Harness {
	h.timeout = timeout

	return h
}

// executor returns the injected executor, or a process executor bounded by
// the configured timeout.
func (h *Harness) executor() CommandExecutor {
	if h.commandExecutor != nil {
		return h.commandExecutor
	}

	return &defaultCommandExecutor{Timeout: h.timeout}
}

// WithLogger sets an optional [*slog.Logger]. A nil logger (the default)
// disables all logging.
func (h *Harness) WithLogger(logger *slog.Logger) *Harness {
	h.logger = logger

	return h
}

// output runs the fixture at path without arguments and returns its stdout.
// A non-zero exit is tolerated as long as the fixture printed something:
// checks are judged on content, not exit status.
func (h *Harness) output(ctx context.Context, path string) (string, error) {
	start := time.Now()
	out, err := h.executor().Execute(ctx, path)
	h.logDebug("fixture executed", "path", path, "duration", time.Since(start))

	if err != nil {
		if out == "" {
			return "", err
		}
		h.logWarn("fixture exited with error, judging output anyway", "path", path, "error", err)
	}

	return out, nil
}

// Run executes the fixture at path and parses its diagnostic lines.
func (h *Harness) Run(ctx context.Context, path string) ([]Line, error) {
	out, err := h.output(ctx, path)
	if err != nil {
		return nil, err
	}

	lines, err := Parse(strings.NewReader(out))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing output of %s", path)
	}

	return lines, nil
}

// Check runs f and verifies its output against the fixture's expectation.
// The returned error is non-nil only when the fixture could not be run or
// its output could not be parsed; verification failures are recorded in
// [Result.Err].
func (h *Harness) Check(ctx context.Context, f Fixture) (*Result, error) {
	h.logInfo("checking fixture", "fixture", f.Name, "kind", f.Kind, "path", f.Path)

	out, err := h.output(ctx, f.Path)
	if err != nil {
		return nil, err
	}

	res := &Result{Fixture: f}

	switch f.Kind {
	case KindUUID:
		res.UUID = out
		res.Err = ValidateUUID(out, f.Literal)
	default:
		lines, parseErr := Parse(strings.NewReader(out))
		if parseErr != nil {
			return nil, errors.Wrapf(parseErr, "parsing output of %s", f.Name)
		}
		res.Lines = lines
		res.Err = Verify(lines, f.Expect)
	}

	if res.Err == nil && f.Idempotent {
		again, err := h.output(ctx, f.Path)
		if err != nil {
			return nil, err
		}
		if again != out {
			res.Err = errors.Wrapf(ErrNotIdempotent, "fixture %s", f.Name)
		}
	}

	if res.Err != nil {
		h.logWarn("fixture failed", "fixture", f.Name, "error", res.Err)
	} else {
		h.logInfo("fixture passed", "fixture", f.Name)
	}

	return res, nil
}

// CheckAll runs every fixture in order. A fixture that cannot be executed
// or whose output cannot be parsed is recorded as a failed [Result] and the
// run continues. Only cancellation of ctx stops it early.
func (h *Harness) CheckAll(ctx context.Context, fixtures []Fixture) ([]*Result, error) {
	results := make([]*Result, 0, len(fixtures))

	for _, f := range fixtures {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := h.Check(ctx, f)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return results, ctxErr
			}
			h.logWarn("fixture could not be checked", "fixture", f.Name, "error", err)
			res = &Result{Fixture: f, Err: err}
		}
		results = append(results, res)
	}

	return results, nil
}

// CanonicalUUID checks that s is a 36-character 8-4-4-4-12 hexadecimal
// UUID. Braced, URN and undashed forms are rejected.
func CanonicalUUID(s string) error {
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return errors.Wrapf(ErrInvalidUUID, "%q", s)
	}

	if _, err := uuid.Parse(s); err != nil {
		return errors.Wrapf(ErrInvalidUUID, "%q: %v", s, err)
	}

	return nil
}

// ValidateUUID checks that s is a canonical UUID (see [CanonicalUUID]).
// When literal is non-empty, s must also equal it, ignoring case.
func ValidateUUID(s, literal string) error {
	if err := CanonicalUUID(s); err != nil {
		return err
	}

	if literal != "" && !strings.EqualFold(s, literal) {
		return errors.Wrapf(ErrUUIDMismatch, "got %q, want %q", s, literal)
	}

	return nil
}

// logDebug logs at debug level if a logger is configured.
func (h *Harness) logDebug(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Debug(msg, args...)
	}
}

// logInfo logs at info level if a logger is configured.
func (h *Harness) logInfo(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Info(msg, args...)
	}
}

// logWarn logs at warn level if a logger is configured.
func (h *Harness) logWarn(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Warn(msg, args...)
	}
}
