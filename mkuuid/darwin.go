//go:build darwin

package mkuuid

import (
	"context"
	"fmt"

	"github.com/slashdevops/distprobe"
)

// platformUUID asks uuidgen, which wraps CFUUIDCreate, for a new UUID.
func platformUUID(ctx context.Context, p *Provider) (string, error) {
	executor := p.commandExecutor
	if executor == nil {
		executor = distprobe.NewCommandExecutor(defaultTimeout)
	}

	output, err := executor.Execute(ctx, "uuidgen")
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID: %w", err)
	}

	return parseUUIDGen(output)
}
