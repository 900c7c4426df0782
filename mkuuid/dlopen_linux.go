//go:build linux

package mkuuid

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// libuuidName is the soname of the util-linux UUID library. It is resolved
// by the dynamic loader, so LD_LIBRARY_PATH and ld.so.conf apply.
var libuuidName = "libuuid.so.1"

// loadLibrary opens name through the dynamic loader and closes the handle
// again. No handle outlives the call.
func loadLibrary(name string) error {
	handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLibraryNotFound, name, err)
	}

	if err := purego.Dlclose(handle); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}

	return nil
}
