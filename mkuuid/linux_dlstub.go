//go:build linux && mkuuid_dlstub

package mkuuid

import (
	"context"
)

// platformUUID proves libuuid can be opened and released through the
// dynamic loader, then returns [StubUUID] instead of generating a value.
func platformUUID(_ context.Context, p *Provider) (string, error) {
	if err := loadLibrary(libuuidName); err != nil {
		return "", err
	}

	p.logDebug("shared library loaded and released", "library", libuuidName)

	return StubUUID, nil
}
