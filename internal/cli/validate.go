// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/service"
	"github.com/docforge/docforge/pkg/types"
)

var validateRules []string

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Parse and lint the resulting AST",
	Long: `Parse an API description and run validation rules against the
resulting AST. Parsers with format-specific rules run those; the rest
get generic structural checks.

Only error-severity violations make the result invalid; warnings and
info-level findings are reported but do not fail the command.

Example:
  docforge validate -t openapi api.yaml
  docforge validate -t openapi api.yaml --rules unique-endpoint-ids,path-format
  docforge validate -t graphql schema.graphql`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	addRequestFlags(validateCmd)
	validateCmd.Flags().StringSliceVar(&validateRules, "rules", nil, "validation rules to run (default: all)")
}

func runValidate(cmd *cobra.Command, args []string) error {
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

	result, err := svc.Validate(&types.ValidationRequest{
		ParseID: resp.ParseID,
		Rules:   validateRules,
	})
	if err != nil {
		return err
	}

	if err := writeResult(cfg, result); err != nil {
		return err
	}

	if !result.Valid {
		return fmt.Errorf("validation failed with %d violation(s)", len(result.Violations))
	}
	printInfo("Valid: %d violation(s), none at error severity", len(result.Violations))
	return nil
}
