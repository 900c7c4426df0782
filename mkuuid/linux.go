//go:build linux && !mkuuid_dlstub

package mkuuid

import (
	"context"

	"github.com/google/uuid"
)

// platformUUID generates a random (version 4) UUID in lowercase.
func platformUUID(_ context.Context, p *Provider) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		p.logDebug("random source failed", "error", err)

		return "", err
	}

	return id.String(), nil
}
