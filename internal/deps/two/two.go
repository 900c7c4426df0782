// Package two is resolved through an explicit library target.
package two

// Two returns 2.
func Two() int {
	return 2
}
