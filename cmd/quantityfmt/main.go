// Package main is the entry point for the quantityfmt CLI.
package main

import (
	"os"

	"github.com/govalues/quantity/cmd/quantityfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
