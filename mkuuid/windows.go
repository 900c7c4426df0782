//go:build windows

package mkuuid

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"
)

// platformUUID creates a GUID with the system generator.
func platformUUID(_ context.Context, _ *Provider) (string, error) {
	guid, err := windows.GenerateGUID()
	if err != nil {
		return "", fmt.Errorf("failed to create GUID: %w", err)
	}

	return formatGUID(guid.Data1, guid.Data2, guid.Data3, guid.Data4), nil
}
