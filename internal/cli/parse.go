// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/config"
	outputpkg "github.com/docforge/docforge/internal/output"
	"github.com/docforge/docforge/internal/service"
	"github.com/docforge/docforge/pkg/types"
)

var (
	parseType      string
	parseSource    string
	parseRecursive bool
	parseInclude   []string
	parseExclude   []string
	parseNoValid   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [path]",
	Short: "Parse an API description into the standardized AST",
	Long: `Parse an API description and print the standardized AST.

The parser is selected with --type; the source kind defaults to file
or directory depending on what the path points at.

Example:
  docforge parse -t openapi api.yaml            # Parse one document
  docforge parse -t jsdoc -s directory ./src    # Parse a source tree
  docforge parse -t graphql schema.graphql -f json
  docforge parse -t openapi -s url https://example.com/openapi.json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	addRequestFlags(parseCmd)
}

// addRequestFlags registers the parse-request flags shared by the
// parse, extract, validate, and watch commands.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&parseType, "type", "t", "", "parser type: "+strings.Join(types.KnownTypes, ", "))
	cmd.Flags().StringVarP(&parseSource, "source", "s", "", "source kind: "+strings.Join(types.KnownSources, ", "))
	cmd.Flags().BoolVarP(&parseRecursive, "recursive", "r", true, "scan directories recursively")
	cmd.Flags().StringSliceVar(&parseInclude, "include", nil, "glob patterns to include when scanning")
	cmd.Flags().StringSliceVar(&parseExclude, "exclude", nil, "glob patterns to exclude when scanning")
	cmd.Flags().BoolVar(&parseNoValid, "no-validate", false, "skip structural validation of the input document")
}

// buildRequest assembles a ParseRequest from flags, config, and the
// positional path argument.
func buildRequest(cfg *config.Config, path string) *types.ParseRequest {
	typ := parseType
	if typ == "" {
		typ = cfg.Parser
	}

	source := parseSource
	if source == "" {
		source = inferSource(path)
	}

	include := parseInclude
	if len(include) == 0 {
		include = cfg.Source.Include
	}
	exclude := parseExclude
	if len(exclude) == 0 {
		exclude = cfg.Source.Exclude
	}

	validate := !parseNoValid && cfg.Parse.ValidateSchema
	resolve := cfg.Parse.ResolveRefs

	return &types.ParseRequest{
		Type:   typ,
		Source: source,
		Path:   path,
		Options: &types.ParseOptions{
			ValidateSchema: &validate,
			ResolveRefs:    &resolve,
			Recursive:      parseRecursive,
			Include:        include,
			Exclude:        exclude,
		},
	}
}

// inferSource guesses the source kind from the path: URLs by scheme,
// directories by stat, files otherwise.
func inferSource(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return types.SourceURL
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return types.SourceDirectory
	}
	return types.SourceFile
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc := service.New(service.WithLogger(newLogger(cfg)))
	req := buildRequest(cfg, args[0])

	printVerbose("Parse configuration:")
	printVerbose("  Type: %s", req.Type)
	printVerbose("  Source: %s", req.Source)
	printVerbose("  Path: %s", req.Path)

	resp := svc.Parse(cmd.Context(), req)

	if err := writeResult(cfg, resp); err != nil {
		return err
	}

	printVerbose("Cache entries: %d", svc.CacheSize())

	if resp.Status == types.StatusFailed {
		return fmt.Errorf("parse failed: %s", firstIssue(resp.Errors))
	}
	return nil
}

// writeResult renders v to the configured output file or stdout.
func writeResult(cfg *config.Config, v any) error {
	w := outputpkg.NewWriter()
	if cfg.Output != "" {
		if err := w.WriteFile(v, cfg.Output, cfg.Format); err != nil {
			return err
		}
		printInfo("Wrote %s", cfg.Output)
		return nil
	}
	return w.Write(v, os.Stdout, cfg.Format)
}

// firstIssue summarizes the first error entry of a failed response.
func firstIssue(issues []types.Issue) string {
	if len(issues) == 0 {
		return "unknown error"
	}
	return fmt.Sprintf("%s: %s", issues[0].Code, issues[0].Message)
}
