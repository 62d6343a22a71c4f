// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package main is the entry point for the docforge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/docforge/docforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
