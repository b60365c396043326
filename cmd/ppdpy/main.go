// Package main provides the CLI for the ppdpy text preprocessor.
package main

import (
	"fmt"
	"os"

	"github.com/ericvoid/ppdpy/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
