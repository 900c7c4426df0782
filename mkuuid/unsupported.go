//go:build !linux && !darwin && !windows

package mkuuid

// Platform not supported: there is no native UUID facility to bind to.
var _ = platformNotSupported
