// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package graphql extracts API documentation from GraphQL SDL: object
// and input types, custom scalars, and the root operation types whose
// fields become endpoints.
package graphql

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/docforge/docforge/internal/loader"
	"github.com/docforge/docforge/internal/parsers"
	"github.com/docforge/docforge/internal/util"
	"github.com/docforge/docforge/pkg/types"
)

// rootTypes maps the three SDL root types to the HTTP verb their
// operations are documented under. Subscriptions map to GET; the
// endpoint model has no verb for long-lived streams.
var rootTypes = map[string]string{
	"Query":        "GET",
	"Mutation":     "POST",
	"Subscription": "GET",
}

var (
	// blockRegex matches a type or input definition with its body and
	// any contiguous leading # comment lines.
	blockRegex = regexp.MustCompile(`(?m)((?:^[ \t]*#[^\n]*\n)+)?^[ \t]*(type|input)\s+(\w+)[^{\n]*\{([^}]*)\}`)

	// scalarRegex matches a scalar declaration with leading comments.
	scalarRegex = regexp.MustCompile(`(?m)((?:^[ \t]*#[^\n]*\n)+)?^[ \t]*scalar\s+(\w+)`)

	// fieldRegex matches one field after argument lists are joined onto
	// a single line: name, optional (args), return type, inline comment.
	fieldRegex = regexp.MustCompile(`^(\w+)\s*(?:\((.*)\))?\s*:\s*([\[\]\w!\s]+?)\s*(?:#\s*(.*))?$`)

	// argRegex matches one argument inside a field's parameter list.
	argRegex = regexp.MustCompile(`(\w+)\s*:\s*([\[\]\w!]+)(?:\s*=\s*("[^"]*"|[\w\[\]\.\-]+))?`)
)

// Parser extracts endpoints, schemas, and scalar components from SDL.
type Parser struct {
	loader *loader.Loader
}

// New creates a GraphQL SDL parser.
func New() *Parser {
	return &Parser{loader: loader.New()}
}

// Type returns the registry key.
func (p *Parser) Type() string {
	return types.TypeGraphQL
}

// Extensions returns the file extensions this parser handles.
func (p *Parser) Extensions() []string {
	return []string{".graphql", ".graphqls", ".gql"}
}

// CanParse reports whether this parser accepts the request. URL
// sources are rejected here; Parse reports them as NOT_IMPLEMENTED.
func (p *Parser) CanParse(req *types.ParseRequest) bool {
	return parsers.CanParseDefault(p, req)
}

// Parse extracts endpoints and schemas from all matched SDL files.
func (p *Parser) Parse(ctx context.Context, req *types.ParseRequest) *types.ParseResponse {
	if req.Source == types.SourceURL {
		return parsers.FailedResponse(p.Type(), parsers.NewParseError(
			parsers.CodeNotImplemented, "fetching GraphQL schemas over HTTP is not implemented"))
	}

	files, err := p.loader.Load(ctx, req, p.Extensions())
	if err != nil {
		return parsers.FailedResponse(p.Type(), err)
	}
	if len(files) == 0 {
		return parsers.FailedResponse(p.Type(), parsers.NewParseError(
			parsers.CodeFileReadError, fmt.Sprintf("no GraphQL schemas found at %s", req.Path)))
	}

	ast := &types.AST{
		Endpoints:  []types.Endpoint{},
		Schemas:    []types.NamedSchema{},
		Components: []types.Component{},
		Metadata:   map[string]any{},
	}
	typeCount := 0
	inputCount := 0
	operationCount := 0

	for _, file := range files {
		content := string(file.Content)
		sourceFile := file.Path
		if sourceFile == loader.ContentPath {
			sourceFile = ""
		}

		for _, m := range blockRegex.FindAllStringSubmatchIndex(content, -1) {
			description := joinComments(slice(content, m, 1))
			keyword := slice(content, m, 2)
			name := slice(content, m, 3)
			body := slice(content, m, 4)
			line := 1 + strings.Count(content[:m[0]], "\n")

			if verb, ok := rootTypes[name]; ok && keyword == "type" {
				operationCount += p.buildOperations(name, verb, body, sourceFile, line, ast)
				continue
			}

			if keyword == "input" {
				inputCount++
			} else {
				typeCount++
			}
			p.buildSchema(name, description, body, ast)
		}

		for _, m := range scalarRegex.FindAllStringSubmatchIndex(content, -1) {
			name := slice(content, m, 2)
			ast.Components = append(ast.Components, types.Component{
				Name:   name,
				Type:   "scalar",
				Source: p.Type(),
				Definition: map[string]any{
					"description": joinComments(slice(content, m, 1)),
				},
			})
		}
	}

	ast.Metadata["typeCount"] = typeCount
	ast.Metadata["inputCount"] = inputCount
	ast.Metadata["scalarCount"] = len(ast.Components)
	ast.Metadata["operationCount"] = operationCount

	return &types.ParseResponse{
		Status: types.StatusSuccess,
		AST:    ast,
		Metadata: types.ParseMetadata{
			SourceType:    p.Type(),
			EndpointCount: len(ast.Endpoints),
			SchemaCount:   len(ast.Schemas),
			FileSize:      loader.TotalSize(files),
		},
	}
}

// field is one parsed SDL field with its accumulated description.
type field struct {
	name        string
	args        string
	returnType  string
	description string
}

// parseFields scans a type body line by line. Multi-line argument
// lists are joined until parentheses balance; contiguous # lines
// above a field form its description, and an inline trailing comment
// wins over leading comments.
func parseFields(body string) []field {
	var fields []field
	var comments []string
	var pending string

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			comments = nil
			continue
		}
		if strings.HasPrefix(trimmed, "#") && pending == "" {
			comments = append(comments, strings.TrimSpace(strings.TrimPrefix(trimmed, "#")))
			continue
		}

		if pending != "" {
			pending += " " + trimmed
		} else {
			pending = trimmed
		}
		if strings.Count(pending, "(") > strings.Count(pending, ")") {
			continue
		}

		m := fieldRegex.FindStringSubmatch(pending)
		pending = ""
		if m == nil {
			comments = nil
			continue
		}

		description := strings.TrimSpace(m[4])
		if description == "" {
			description = strings.Join(comments, " ")
		}
		comments = nil

		fields = append(fields, field{
			name:        m[1],
			args:        m[2],
			returnType:  m[3],
			description: description,
		})
	}

	return fields
}

// buildOperations turns each field of a root type into an endpoint
// with a synthetic /graphql path. Returns the number of operations.
func (p *Parser) buildOperations(rootName, verb, body, sourceFile string, line int, ast *types.AST) int {
	opType := strings.ToLower(rootName)
	fields := parseFields(body)

	for _, f := range fields {
		path := "/graphql/" + opType + "/" + f.name

		ep := types.Endpoint{
			ID:          util.EndpointID(verb, path),
			Path:        path,
			Method:      verb,
			Summary:     f.description,
			Description: f.description,
			Tags:        []string{opType},
			SourceFile:  sourceFile,
			SourceLine:  line,
		}

		for _, am := range argRegex.FindAllStringSubmatch(f.args, -1) {
			ref := parseTypeRef(am[2])
			param := types.Parameter{
				Name:     am[1],
				In:       "query",
				Required: ref.isNonNull(),
				Schema:   ref.toSchema(),
			}
			if am[3] != "" {
				param.Default = strings.Trim(am[3], `"`)
			}
			ep.Parameters = append(ep.Parameters, param)
		}

		// Standard GraphQL response envelope
		ep.Responses = []types.Response{{
			StatusCode:  "200",
			Description: "Success",
			Schema: &types.Schema{
				Type: "object",
				Properties: map[string]*types.Schema{
					"data":   parseTypeRef(f.returnType).toSchema(),
					"errors": {Type: "array", Items: &types.Schema{Type: "object"}},
				},
			},
		}}

		ast.Endpoints = append(ast.Endpoints, ep)
	}

	return len(fields)
}

// buildSchema turns a type or input block into a named object schema.
func (p *Parser) buildSchema(name, description, body string, ast *types.AST) {
	schema := &types.Schema{
		Type:       "object",
		Title:      name,
		Properties: make(map[string]*types.Schema),
	}
	if description != "" {
		schema.Description = description
	}

	for _, f := range parseFields(body) {
		ref := parseTypeRef(f.returnType)
		prop := ref.toSchema()
		if prop == nil {
			continue
		}
		if f.description != "" && prop.Ref == "" {
			prop.Description = f.description
		}
		schema.Properties[f.name] = prop
		if ref.isNonNull() {
			schema.Required = append(schema.Required, f.name)
		}
	}

	ast.Schemas = append(ast.Schemas, types.NamedSchema{
		Name:        name,
		Schema:      schema,
		Description: description,
	})
}

// joinComments strips # markers from a leading comment block and joins
// the lines with spaces.
func joinComments(block string) string {
	if block == "" {
		return ""
	}
	var parts []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "#"))
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// slice returns capture group n from a submatch index slice, or ""
// when the group did not participate.
func slice(content string, m []int, n int) string {
	if 2*n+1 >= len(m) || m[2*n] < 0 {
		return ""
	}
	return content[m[2*n] : m[2*n+1]]
}
