// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/pkg/types"
)

var (
	initParser string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new docforge configuration file",
	Long: `Initialize a new docforge configuration file in the current directory.

This command creates a docforge.yaml file with sensible defaults
that you can customize for your project.

Example:
  docforge init                    # Create config with defaults
  docforge init --parser jsdoc     # Set the default parser
  docforge init --force            # Overwrite existing config`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initParser, "parser", "", "default parser type")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := "docforge.yaml"

	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", configFile)
	}

	cfg := config.Default()
	if initParser != "" {
		if !types.IsKnownType(initParser) {
			return fmt.Errorf("unsupported parser %q", initParser)
		}
		cfg.Parser = initParser
	}
	if format != "" {
		cfg.Format = format
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	printInfo("Created %s", configFile)
	printVerbose("  Parser: %s", cfg.Parser)
	printVerbose("  Format: %s", cfg.Format)
	return nil
}
