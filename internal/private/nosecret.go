//go:build nosecret

package private

// SecretFound reports whether the private definitions were compiled in.
const SecretFound = false
