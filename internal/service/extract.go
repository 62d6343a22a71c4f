// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/docforge/docforge/internal/parsers"
	"github.com/docforge/docforge/pkg/types"
)

// Extract returns a filtered view of one section of a previously
// cached AST. The returned error, when non-nil, is a *ParseError.
func (s *Service) Extract(req *types.ExtractRequest) (*types.ExtractResponse, error) {
	if req == nil || req.ParseID == "" {
		return nil, parsers.NewParseError(parsers.CodeParseNotFound, "extract requires a parseId")
	}

	cached, perr := s.lookup(req.ParseID)
	if perr != nil {
		return nil, perr
	}
	ast := cached.AST

	resp := &types.ExtractResponse{ExtractID: extractID(req)}

	switch req.ExtractType {
	case types.ExtractEndpoints:
		endpoints := filterEndpoints(ast.Endpoints, req.Filters)
		resp.Data = endpoints
		resp.Count = len(endpoints)
	case types.ExtractSchemas:
		resp.Data = ast.Schemas
		resp.Count = len(ast.Schemas)
	case types.ExtractComponents:
		resp.Data = ast.Components
		resp.Count = len(ast.Components)
	case types.ExtractMetadata:
		resp.Data = ast.Metadata
		resp.Count = 1
	default:
		return nil, parsers.NewParseError(parsers.CodeParseError,
			fmt.Sprintf("unknown extract type %q", req.ExtractType))
	}

	return resp, nil
}

// filterEndpoints applies the methods, paths, and tags filters. All
// present filters must match; an absent filter matches everything.
func filterEndpoints(endpoints []types.Endpoint, filters *types.ExtractFilters) []types.Endpoint {
	if filters == nil {
		return endpoints
	}

	result := make([]types.Endpoint, 0, len(endpoints))
	for _, ep := range endpoints {
		if !matchesMethod(ep, filters.Methods) {
			continue
		}
		if !matchesPath(ep, filters.Paths) {
			continue
		}
		if !matchesTags(ep, filters.Tags) {
			continue
		}
		result = append(result, ep)
	}
	return result
}

func matchesMethod(ep types.Endpoint, methods []string) bool {
	if len(methods) == 0 {
		return true
	}
	for _, m := range methods {
		if strings.EqualFold(m, ep.Method) {
			return true
		}
	}
	return false
}

func matchesPath(ep types.Endpoint, paths []string) bool {
	if len(paths) == 0 {
		return true
	}
	for _, p := range paths {
		if strings.Contains(ep.Path, p) {
			return true
		}
	}
	return false
}

func matchesTags(ep types.Endpoint, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, want := range tags {
		for _, have := range ep.Tags {
			if want == have {
				return true
			}
		}
	}
	return false
}

// extractID derives a stable identifier from the extract request.
func extractID(req *types.ExtractRequest) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}
