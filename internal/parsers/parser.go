// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package parsers provides the parser contract, the parser registry, and
// the shared ParseError type of the docforge parser subsystem.
package parsers

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/docforge/docforge/pkg/types"
)

// Parser is the contract every format parser implements. The five
// implementations are unrelated types sharing only this capability set;
// there is no common base.
type Parser interface {
	// Type returns the registry key (openapi, jsdoc, ...).
	Type() string

	// Extensions returns the file extensions this parser handles.
	// The list is advisory; it feeds CanParse but does not gate
	// registry lookup by itself.
	Extensions() []string

	// CanParse reports whether this parser accepts the request. It
	// requires a matching Type and, for file sources, a recognized
	// file extension.
	CanParse(req *types.ParseRequest) bool

	// Parse runs format-specific extraction and returns a response.
	// It never returns an error: all failures are converted into a
	// failed response carrying coded error entries.
	Parse(ctx context.Context, req *types.ParseRequest) *types.ParseResponse
}

// Validator is an optional capability: rule-based structural linting of
// an already-parsed AST. When rules is empty, all rules known to the
// parser run.
type Validator interface {
	Validate(ast *types.AST, rules []string) *types.ValidationResponse
}

// ExtensionMatches reports whether path carries one of the given file
// extensions (case-insensitive).
func ExtensionMatches(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// CanParseDefault is the default CanParse behavior shared by parsers:
// the request type must match, and file sources must carry a recognized
// extension. Directory, URL, and content sources are accepted on type
// alone, since their payloads are discovered or supplied later.
func CanParseDefault(p Parser, req *types.ParseRequest) bool {
	if req == nil || req.Type != p.Type() {
		return false
	}
	if req.Source == types.SourceFile {
		return ExtensionMatches(req.Path, p.Extensions())
	}
	return true
}
