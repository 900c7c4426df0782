// Package gen holds sources produced by a code-generation step.
package gen

//go:generate go run ../../tools/gen12 -o gen12_gen.go -pkg gen -func Gen12 -value 12
