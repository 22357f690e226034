// Package main provides the lintwire CLI.
package main

import (
	"fmt"
	"os"

	"github.com/lintwire-labs/lintwire/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
