// Package main is the entry point for the nava-ops CLI.
package main

import (
	"os"

	"nava-ops/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
