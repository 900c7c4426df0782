// Package hello is resolved as a component of a larger package.
package hello

// Hello returns the string "hello".
func Hello() string {
	return "hello"
}
