// Package main is the entry point for the tutoring-sim CLI.
package main

import (
	"os"

	"tutoring-sim/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
