// Command gen12 writes a Go source file declaring a function that returns a
// fixed integer. It stands in for a code-generation step whose output must
// be shipped with the installed fixtures.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"text/template"
)

var source = template.Must(template.New("gen").Parse(`// Code generated by gen12; DO NOT EDIT.

package {{.Package}}

// {{.Func}} returns {{.Value}}.
func {{.Func}}() int {
	return {{.Value}}
}
`))

type params struct {
	Package string
	Func    string
	Value   int
}

func main() {
	out := flag.String("o", "", "Output file (default stdout)")
	pkg := flag.String("pkg", "gen", "Package name of the generated file")
	fn := flag.String("func", "Gen12", "Name of the generated function")
	value := flag.Int("value", 12, "Value returned by the generated function")
	flag.Parse()

	src, err := render(params{Package: *pkg, Func: *fn, Value: *value})
	if err != nil {
		slog.Error("failed to render source", "error", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Print(string(src))
		return
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		slog.Error("failed to write generated file", "path", *out, "error", err)
		os.Exit(1)
	}
}

// render executes the template and gofmt's the result.
func render(p params) ([]byte, error) {
	var buf bytes.Buffer
	if err := source.Execute(&buf, p); err != nil {
		return nil, err
	}

	return format.Source(buf.Bytes())
}
