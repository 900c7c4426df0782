// Package zero is resolved by its implicit package name.
package zero

// Zero is the value the dist fixture expects to link against.
const Zero = 0
