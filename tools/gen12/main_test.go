package main

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	src, err := render(params{Package: "gen", Func: "Gen12", Value: 12})
	if err != nil {
		t.Fatalf("render() error: %v", err)
	}

	got := string(src)
	for _, want := range []string{
		"// Code generated by gen12; DO NOT EDIT.",
		"package gen",
		"func Gen12() int {",
		"return 12",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("render() output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderInvalidIdentifier(t *testing.T) {
	if _, err := render(params{Package: "gen", Func: "not valid", Value: 1}); err == nil {
		t.Error("Expected gofmt error for invalid function name")
	}
}
