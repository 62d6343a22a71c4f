// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package cli provides the command-line interface for docforge.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/config"
)

// Global flags
var (
	cfgFile string
	output  string
	format  string
	verbose bool
	quiet   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "docforge",
	Short: "Multi-format API documentation parser",
	Long: `docforge extracts API documentation from several source formats
(OpenAPI/Swagger, JSDoc comments, Python docstrings, Go doc comments,
GraphQL schemas) and produces a standardized intermediate representation
for downstream documentation generators.

Example:
  docforge parse -t openapi api.yaml        # Parse an OpenAPI document
  docforge parse -t jsdoc -s directory src  # Parse JSDoc from a source tree
  docforge extract -t graphql schema.graphql --extract-type endpoints
  docforge validate -t openapi api.yaml     # Lint the parsed AST
  docforge watch -t go-doc ./internal       # Re-parse on change`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: docforge.yaml)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output file path (default: stdout)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: yaml, json (default: yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(parsersCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadConfig loads configuration and applies global flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if output != "" {
		cfg.Output = output
	}
	if format != "" {
		cfg.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the slog logger used by the parser service. Verbose
// lowers the level to debug; quiet raises it to error.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// printInfo prints a message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format+"\n", args...)
	}
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format+"\n", args...)
	}
}

// printError prints an error message.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
