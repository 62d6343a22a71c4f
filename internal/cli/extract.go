// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/service"
	"github.com/docforge/docforge/pkg/types"
)

var (
	extractSection string
	extractMethods []string
	extractPaths   []string
	extractTags    []string
)

var extractCmd = &cobra.Command{
	Use:   "extract [path]",
	Short: "Parse and extract one section of the AST",
	Long: `Parse an API description and extract a filtered view of one AST
section: endpoints, schemas, components, or metadata.

Endpoint extraction supports method, path-substring, and tag filters;
all present filters must match.

Example:
  docforge extract -t openapi api.yaml --extract-type endpoints
  docforge extract -t openapi api.yaml --extract-type endpoints --methods GET,POST
  docforge extract -t jsdoc -s directory src --extract-type schemas
  docforge extract -t graphql schema.graphql --extract-type components`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	addRequestFlags(extractCmd)
	extractCmd.Flags().StringVar(&extractSection, "extract-type", types.ExtractEndpoints,
		"AST section: endpoints, schemas, components, metadata")
	extractCmd.Flags().StringSliceVar(&extractMethods, "methods", nil, "keep endpoints with these methods")
	extractCmd.Flags().StringSliceVar(&extractPaths, "paths", nil, "keep endpoints whose path contains any substring")
	extractCmd.Flags().StringSliceVar(&extractTags, "tags", nil, "keep endpoints carrying any of these tags")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc := service.New(service.WithLogger(newLogger(cfg)))
	req := buildRequest(cfg, args[0])

	resp := svc.Parse(cmd.Context(), req)
	if resp.Status == types.StatusFailed {
		return fmt.Errorf("parse failed: %s", firstIssue(resp.Errors))
	}

	var filters *types.ExtractFilters
	if len(extractMethods)+len(extractPaths)+len(extractTags) > 0 {
		filters = &types.ExtractFilters{
			Methods: extractMethods,
			Paths:   extractPaths,
			Tags:    extractTags,
		}
	}

	result, err := svc.Extract(&types.ExtractRequest{
		ParseID:     resp.ParseID,
		ExtractType: extractSection,
		Filters:     filters,
	})
	if err != nil {
		return err
	}

	printVerbose("Extracted %d item(s) from %s", result.Count, extractSection)
	return writeResult(cfg, result)
}
