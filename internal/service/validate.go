// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package service

import (
	"fmt"

	"github.com/docforge/docforge/internal/parsers"
	"github.com/docforge/docforge/pkg/types"
)

// Validate lints a previously cached AST. Parsers implementing the
// Validator capability run their own rules; the rest get the generic
// structural checks. The returned error, when non-nil, is a *ParseError.
func (s *Service) Validate(req *types.ValidationRequest) (*types.ValidationResponse, error) {
	if req == nil || req.ParseID == "" {
		return nil, parsers.NewParseError(parsers.CodeParseNotFound, "validate requires a parseId")
	}

	cached, perr := s.lookup(req.ParseID)
	if perr != nil {
		return nil, perr
	}

	s.ensureInit()
	if p := s.registry.Get(cached.Metadata.SourceType); p != nil {
		if v, ok := p.(parsers.Validator); ok {
			return v.Validate(cached.AST, req.Rules), nil
		}
	}

	return genericValidate(cached.AST), nil
}

// genericValidate runs the structural checks shared by all formats:
// paths begin with /, methods are canonical, ids are unique.
func genericValidate(ast *types.AST) *types.ValidationResponse {
	var violations []types.Violation

	seen := make(map[string]int)
	for i, ep := range ast.Endpoints {
		if len(ep.Path) == 0 || ep.Path[0] != '/' {
			violations = append(violations, types.Violation{
				Rule:     "path-format",
				Severity: types.SeverityError,
				Message:  fmt.Sprintf("path %q must begin with /", ep.Path),
				Path:     fmt.Sprintf("endpoints[%d].path", i),
			})
		}
		if !types.IsCanonicalMethod(ep.Method) {
			violations = append(violations, types.Violation{
				Rule:     "canonical-method",
				Severity: types.SeverityError,
				Message:  fmt.Sprintf("method %q is not a canonical HTTP verb", ep.Method),
				Path:     fmt.Sprintf("endpoints[%d].method", i),
			})
		}
		if first, ok := seen[ep.ID]; ok {
			violations = append(violations, types.Violation{
				Rule:     "unique-endpoint-ids",
				Severity: types.SeverityError,
				Message:  fmt.Sprintf("endpoint id %q duplicates endpoints[%d]", ep.ID, first),
				Path:     fmt.Sprintf("endpoints[%d].id", i),
			})
		} else {
			seen[ep.ID] = i
		}
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
