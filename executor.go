package distprobe

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// defaultTimeout bounds a single fixture execution.
const defaultTimeout = 10 * time.Second

// CommandExecutor is an interface for executing fixture programs, allowing
// for dependency injection and testing.
//
// Execute returns the trimmed standard output of the command. When the
// command ran but exited non-zero, implementations should return whatever
// was written to standard output together with the error.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

// defaultCommandExecutor implements CommandExecutor using actual process execution.
type defaultCommandExecutor struct {
	Timeout time.Duration
}

// Execute runs a command with a timeout and returns its standard output.
// It uses context.WithTimeout to prevent fixtures from hanging indefinitely.
func (e *defaultCommandExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(timeoutCtx, name, args...)
	output, err := cmd.Output()
	if err != nil {
		return strings.TrimSpace(string(output)), &CommandError{Command: name, Err: err}
	}

	return strings.TrimSpace(string(output)), nil
}

// NewCommandExecutor returns a [CommandExecutor] that runs real processes,
// each bounded by timeout. A non-positive timeout selects the default.
func NewCommandExecutor(timeout time.Duration) CommandExecutor {
	return &defaultCommandExecutor{Timeout: timeout}
}
