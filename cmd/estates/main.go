// Package main provides the entry point for the estates CLI.
package main

import (
	"os"

	"github.com/estateworks/estates-go/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Print error (SilenceErrors suppresses Cobra output)
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
