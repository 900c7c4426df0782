package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/slashdevops/distprobe/internal/version"
	"github.com/slashdevops/distprobe/mkuuid"
)

const applicationName = "mkuuid"

func main() {
	jsonOutput := flag.Bool("json", false, "Output result as JSON")
	versionFlag := flag.Bool("version", false, "Show version information")
	versionLongFlag := flag.Bool("version.long", false, "Show detailed version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mkuuid - Print a UUID generated by the platform's native facility\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  mkuuid [flags]\n\nFlags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *versionFlag {
		fmt.Println(version.Short(applicationName))
		os.Exit(0)
	}

	if *versionLongFlag {
		fmt.Println(version.Long(applicationName))
		os.Exit(0)
	}

	id, err := generate(context.Background(), mkuuid.New())
	if err != nil {
		slog.Error("failed to generate UUID", "error", err)
		os.Exit(1)
	}

	if *jsonOutput {
		printJSON(map[string]any{
			"uuid":   id,
			"length": len(id),
		})
		return
	}

	fmt.Println(id)
}

// generate fills a fixed buffer the way a C caller would and returns the
// string it holds.
func generate(ctx context.Context, g mkuuid.Generator) (string, error) {
	buf := make([]byte, mkuuid.Size)
	if err := g.Generate(ctx, buf); err != nil {
		return "", err
	}

	return mkuuid.CString(buf), nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Error("failed to encode JSON", "error", err)
		os.Exit(1)
	}
}
