// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package graphql

import (
	"fmt"
	"strings"

	"github.com/docforge/docforge/pkg/types"
)

// Validation rule names known to the GraphQL parser.
const (
	RuleUniqueIDs     = "unique-endpoint-ids"
	RuleOperationPath = "operation-path"
	RuleHasReturnType = "has-return-type"
)

var allRules = []string{
	RuleUniqueIDs,
	RuleOperationPath,
	RuleHasReturnType,
}

// Validate runs the named rules against an already-parsed AST. An
// empty rules list runs everything. Only error-severity violations
// flip Valid to false.
func (p *Parser) Validate(ast *types.AST, rules []string) *types.ValidationResponse {
	if len(rules) == 0 {
		rules = allRules
	}

	var violations []types.Violation
	for _, rule := range rules {
		violations = append(violations, p.runRule(rule, ast)...)
	}

	valid := true
	for _, v := range violations {
		if v.Severity == types.SeverityError {
			valid = false
			break
		}
	}

	return &types.ValidationResponse{Valid: valid, Violations: violations}
}

func (p *Parser) runRule(rule string, ast *types.AST) []types.Violation {
	if ast == nil {
		return []types.Violation{{
			Rule:     rule,
			Severity: types.SeverityError,
			Message:  "no AST to validate",
		}}
	}

	switch rule {
	case RuleUniqueIDs:
		return checkUniqueIDs(ast)
	case RuleOperationPath:
		return checkOperationPaths(ast)
	case RuleHasReturnType:
		return checkReturnTypes(ast)
	default:
		return []types.Violation{{
			Rule:     rule,
			Severity: types.SeverityInfo,
			Message:  fmt.Sprintf("unknown rule %q skipped", rule),
		}}
	}
}

func checkUniqueIDs(ast *types.AST) []types.Violation {
	var violations []types.Violation
	seen := make(map[string]int)
	for i, ep := range ast.Endpoints {
		if first, ok := seen[ep.ID]; ok {
			violations = append(violations, types.Violation{
				Rule:     RuleUniqueIDs,
				Severity: types.SeverityError,
				Message:  fmt.Sprintf("endpoint id %q duplicates endpoints[%d]", ep.ID, first),
				Path:     fmt.Sprintf("endpoints[%d].id", i),
			})
			continue
		}
		seen[ep.ID] = i
	}
	return violations
}

func checkOperationPaths(ast *types.AST) []types.Violation {
	var violations []types.Violation
	for i, ep := range ast.Endpoints {
		if !strings.HasPrefix(ep.Path, "/graphql/") {
			violations = append(violations, types.Violation{
				Rule:     RuleOperationPath,
				Severity: types.SeverityError,
				Message:  fmt.Sprintf("path %q is not under /graphql/", ep.Path),
				Path:     fmt.Sprintf("endpoints[%d].path", i),
			})
		}
	}
	return violations
}

func checkReturnTypes(ast *types.AST) []types.Violation {
	var violations []types.Violation
	for i, ep := range ast.Endpoints {
		if len(ep.Responses) == 0 || ep.Responses[0].Schema == nil {
			violations = append(violations, types.Violation{
				Rule:     RuleHasReturnType,
				Severity: types.SeverityWarning,
				Message:  fmt.Sprintf("operation %s documents no return type", ep.Path),
				Path:     fmt.Sprintf("endpoints[%d].responses", i),
			})
		}
	}
	return violations
}
