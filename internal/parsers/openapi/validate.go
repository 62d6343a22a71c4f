// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"fmt"

	"github.com/docforge/docforge/pkg/types"
)

// Validation rule names known to the OpenAPI parser.
const (
	RuleUniqueIDs       = "unique-endpoint-ids"
	RulePathFormat      = "path-format"
	RuleCanonicalMethod = "canonical-method"
	RuleHasResponses    = "has-responses"
	RuleHasDescription  = "has-description"
)

// allRules lists every rule, in execution order.
var allRules = []string{
	RuleUniqueIDs,
	RulePathFormat,
	RuleCanonicalMethod,
	RuleHasResponses,
	RuleHasDescription,
}

// Validate runs the named structural rules against an already-parsed
// AST. An empty rules list runs everything. Only error-severity
// violations flip Valid to false.
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

// runRule executes a single rule by name. Unknown names produce an
// info-level violation rather than an error.
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
	case RulePathFormat:
		return checkPathFormat(ast)
	case RuleCanonicalMethod:
		return checkCanonicalMethods(ast)
	case RuleHasResponses:
		return checkResponses(ast)
	case RuleHasDescription:
		return checkDescriptions(ast)
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

func checkPathFormat(ast *types.AST) []types.Violation {
	var violations []types.Violation
	for i, ep := range ast.Endpoints {
		if len(ep.Path) == 0 || ep.Path[0] != '/' {
			violations = append(violations, types.Violation{
				Rule:     RulePathFormat,
				Severity: types.SeverityError,
				Message:  fmt.Sprintf("path %q must begin with /", ep.Path),
				Path:     fmt.Sprintf("endpoints[%d].path", i),
			})
		}
	}
	return violations
}

func checkCanonicalMethods(ast *types.AST) []types.Violation {
	var violations []types.Violation
	for i, ep := range ast.Endpoints {
		if !types.IsCanonicalMethod(ep.Method) {
			violations = append(violations, types.Violation{
				Rule:     RuleCanonicalMethod,
				Severity: types.SeverityError,
				Message:  fmt.Sprintf("method %q is not a canonical HTTP verb", ep.Method),
				Path:     fmt.Sprintf("endpoints[%d].method", i),
			})
		}
	}
	return violations
}

func checkResponses(ast *types.AST) []types.Violation {
	var violations []types.Violation
	for i, ep := range ast.Endpoints {
		if len(ep.Responses) == 0 {
			violations = append(violations, types.Violation{
				Rule:     RuleHasResponses,
				Severity: types.SeverityWarning,
				Message:  fmt.Sprintf("%s %s documents no responses", ep.Method, ep.Path),
				Path:     fmt.Sprintf("endpoints[%d].responses", i),
			})
		}
	}
	return violations
}

func checkDescriptions(ast *types.AST) []types.Violation {
	var violations []types.Violation
	for i, ep := range ast.Endpoints {
		if ep.Summary == "" && ep.Description == "" {
			violations = append(violations, types.Violation{
				Rule:     RuleHasDescription,
				Severity: types.SeverityInfo,
				Message:  fmt.Sprintf("%s %s has neither summary nor description", ep.Method, ep.Path),
				Path:     fmt.Sprintf("endpoints[%d]", i),
			})
		}
	}
	return violations
}
