// Command distprobe runs installed fixtures and judges the diagnostic lines
// they print.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
