//go:build !nosecret

// Package private holds definitions that are visible to fixtures in this
// module but are never part of its importable surface.
package private

// SecretFound reports whether the private definitions were compiled in.
const SecretFound = true
