// Package one is resolved by an explicit package name.
package one

// One returns 1.
func One() int {
	return 1
}
