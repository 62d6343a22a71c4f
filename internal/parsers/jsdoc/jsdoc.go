// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package jsdoc extracts API documentation from JSDoc block comments in
// JavaScript and TypeScript sources.
package jsdoc

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/docforge/docforge/internal/loader"
	"github.com/docforge/docforge/internal/parsers"
	"github.com/docforge/docforge/internal/scanner"
	"github.com/docforge/docforge/internal/util"
	"github.com/docforge/docforge/pkg/types"
)

var (
	// blockRegex matches /** ... */ comment blocks, non-nesting.
	blockRegex = regexp.MustCompile(`(?s)/\*\*(.*?)\*/`)

	// tagLineRegex matches a line introducing a @tag.
	tagLineRegex = regexp.MustCompile(`^@(\w+)\s*(.*)$`)

	// bracedRegex matches a leading {Token} group in a tag value.
	bracedRegex = regexp.MustCompile(`^\{([^}]*)\}\s*(.*)$`)

	// nameRegex matches a parameter or property name, optionally
	// bracketed to mark it optional.
	nameRegex = regexp.MustCompile(`^(\[[\w.$]+\]|[\w.$]+)\s*(.*)$`)

	// routeRegex matches "METHOD /path" in a @route tag value.
	routeRegex = regexp.MustCompile(`^([A-Za-z]+)\s+(\S+)`)

	// typedefRegex matches the {Type} Name form of a @typedef value.
	typedefRegex = regexp.MustCompile(`^\{([^}]*)\}\s+(\w+)`)
)

// Parser extracts endpoints and schemas from JSDoc comment blocks.
type Parser struct {
	loader *loader.Loader
}

// New creates a JSDoc parser.
func New() *Parser {
	return &Parser{loader: loader.New()}
}

// Type returns the registry key.
func (p *Parser) Type() string {
	return types.TypeJSDoc
}

// Extensions returns the file extensions this parser handles.
func (p *Parser) Extensions() []string {
	return []string{".js", ".jsx", ".ts", ".tsx", ".mjs"}
}

// CanParse reports whether this parser accepts the request.
func (p *Parser) CanParse(req *types.ParseRequest) bool {
	return parsers.CanParseDefault(p, req)
}

// comment is one tokenized JSDoc block.
type comment struct {
	description string
	tags        []tag
	file        string
	line        int
}

// tag is a single @tag entry with its accumulated value.
type tag struct {
	name  string
	value string
}

// Parse extracts endpoints and schemas from all matched source files.
func (p *Parser) Parse(ctx context.Context, req *types.ParseRequest) *types.ParseResponse {
	files, err := p.loader.Load(ctx, req, p.Extensions())
	if err != nil {
		return parsers.FailedResponse(p.Type(), err)
	}
	if len(files) == 0 {
		return parsers.FailedResponse(p.Type(), parsers.NewParseError(
			parsers.CodeFileReadError, fmt.Sprintf("no JavaScript/TypeScript sources found at %s", req.Path)))
	}

	ast := &types.AST{
		Endpoints:  []types.Endpoint{},
		Schemas:    []types.NamedSchema{},
		Components: []types.Component{},
		Metadata:   map[string]any{},
	}
	var warnings []types.Issue
	commentCount := 0

	for _, file := range files {
		comments := extractComments(file)
		commentCount += len(comments)
		for _, c := range comments {
			if w := p.buildFromComment(c, ast); w != nil {
				warnings = append(warnings, *w)
			}
		}
	}

	ast.Metadata["commentCount"] = commentCount
	ast.Metadata["fileCount"] = len(files)

	return &types.ParseResponse{
		Status: types.StatusSuccess,
		AST:    ast,
		Metadata: types.ParseMetadata{
			SourceType:    p.Type(),
			EndpointCount: len(ast.Endpoints),
			SchemaCount:   len(ast.Schemas),
			FileSize:      loader.TotalSize(files),
		},
		Warnings: warnings,
	}
}

// extractComments finds and tokenizes every /** ... */ block in a file.
func extractComments(file scanner.SourceFile) []comment {
	var comments []comment

	content := string(file.Content)
	matches := blockRegex.FindAllStringSubmatchIndex(content, -1)
	for _, m := range matches {
		raw := content[m[2]:m[3]]
		line := 1 + strings.Count(content[:m[0]], "\n")
		c := tokenize(raw)
		c.file = file.Path
		if c.file == loader.ContentPath {
			c.file = ""
		}
		c.line = line
		comments = append(comments, c)
	}

	return comments
}

// tokenize splits a cleaned comment body into a free-text description
// and a sequence of @tag entries. A tag's value continues across
// non-@ lines until the next tag or the end of the comment.
func tokenize(raw string) comment {
	var c comment
	var descLines []string
	var current *tag

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimPrefix(line, " ")

		if m := tagLineRegex.FindStringSubmatch(line); m != nil {
			if current != nil {
				c.tags = append(c.tags, *current)
			}
			current = &tag{name: strings.ToLower(m[1]), value: m[2]}
			continue
		}

		if current != nil {
			if line != "" {
				current.value = strings.TrimSpace(current.value + " " + line)
			}
			continue
		}
		descLines = append(descLines, line)
	}
	if current != nil {
		c.tags = append(c.tags, *current)
	}

	c.description = strings.TrimSpace(strings.Join(descLines, "\n"))
	return c
}

// findTag returns the first tag with one of the given names.
func (c *comment) findTag(names ...string) *tag {
	for i := range c.tags {
		for _, name := range names {
			if c.tags[i].name == name {
				return &c.tags[i]
			}
		}
	}
	return nil
}

// buildFromComment turns one comment block into an endpoint and/or a
// typedef schema. A block without @route contributes no endpoint.
func (p *Parser) buildFromComment(c comment, ast *types.AST) *types.Issue {
	if td := c.findTag("typedef"); td != nil {
		if schema := buildTypedef(c, td); schema != nil {
			ast.Schemas = append(ast.Schemas, *schema)
		}
	}

	route := c.findTag("route")
	if route == nil {
		return nil
	}

	m := routeRegex.FindStringSubmatch(route.value)
	if m == nil {
		return &types.Issue{
			Code:    parsers.CodeParseError,
			Message: fmt.Sprintf("malformed @route tag %q", route.value),
			Location: &types.Location{
				File: c.file,
				Line: c.line,
			},
		}
	}

	method := strings.ToUpper(m[1])
	if !types.IsCanonicalMethod(method) {
		return &types.Issue{
			Code:    parsers.CodeParseError,
			Message: fmt.Sprintf("@route method %q is not a canonical HTTP verb", m[1]),
			Location: &types.Location{
				File: c.file,
				Line: c.line,
			},
		}
	}
	path := util.EnsureLeadingSlash(m[2])

	ep := types.Endpoint{
		ID:          util.EndpointID(method, path),
		Path:        path,
		Method:      method,
		Summary:     util.FirstLine(c.description),
		Description: c.description,
		Tags:        util.InferTags(path),
		Deprecated:  c.findTag("deprecated") != nil,
		SourceFile:  c.file,
		SourceLine:  c.line,
	}

	for _, t := range c.tags {
		if t.name == "param" {
			if param := parseParam(t.value); param != nil {
				ep.Parameters = append(ep.Parameters, *param)
			}
		}
	}

	ep.Responses = buildResponses(c)

	ast.Endpoints = append(ast.Endpoints, ep)
	return nil
}

// parseParam parses a "@param {Type} name description" value.
func parseParam(value string) *types.Parameter {
	var typeName string
	rest := value
	if m := bracedRegex.FindStringSubmatch(value); m != nil {
		typeName = m[1]
		rest = m[2]
	}

	m := nameRegex.FindStringSubmatch(rest)
	if m == nil {
		return nil
	}

	name := m[1]
	required := true
	if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") {
		name = strings.Trim(name, "[]")
		required = false
	}

	return &types.Parameter{
		Name:        displayName(name),
		In:          inferLocation(name),
		Description: strings.TrimSpace(m[2]),
		Required:    required,
		Schema:      mapType(typeName),
	}
}

// inferLocation infers the parameter location from substrings of its
// name. This heuristic is the only binding between JSDoc parameter
// names and parameter locations.
func inferLocation(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "req.params"), strings.Contains(lower, "id"):
		return "path"
	case strings.Contains(lower, "req.query"):
		return "query"
	case strings.Contains(lower, "req.body"):
		return "body"
	case strings.Contains(lower, "req.headers"):
		return "header"
	default:
		return "query"
	}
}

// displayName strips the req.* prefix from a parameter name.
func displayName(name string) string {
	for _, prefix := range []string{"req.params.", "req.query.", "req.body.", "req.headers."} {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}

// buildResponses assembles responses from @returns (always 200) and one
// entry per @throws/@exception (status defaults to 500 when the
// bracketed token is absent).
func buildResponses(c comment) []types.Response {
	var responses []types.Response

	if ret := c.findTag("returns", "return"); ret != nil {
		resp := types.Response{StatusCode: "200"}
		if m := bracedRegex.FindStringSubmatch(ret.value); m != nil {
			resp.Schema = mapType(m[1])
			resp.Description = strings.TrimSpace(m[2])
		} else {
			resp.Description = strings.TrimSpace(ret.value)
		}
		responses = append(responses, resp)
	}

	for _, t := range c.tags {
		if t.name != "throws" && t.name != "exception" {
			continue
		}
		resp := types.Response{StatusCode: "500"}
		if m := bracedRegex.FindStringSubmatch(t.value); m != nil {
			// The braced token is a status code, not a type
			if m[1] != "" {
				resp.StatusCode = m[1]
			}
			resp.Description = strings.TrimSpace(m[2])
		} else {
			resp.Description = strings.TrimSpace(t.value)
		}
		responses = append(responses, resp)
	}

	return responses
}

// buildTypedef builds a named object schema from a @typedef block and
// its sibling @property/@prop tags.
func buildTypedef(c comment, td *tag) *types.NamedSchema {
	m := typedefRegex.FindStringSubmatch(td.value)
	if m == nil {
		return nil
	}

	name := m[2]
	schema := &types.Schema{
		Type:       "object",
		Title:      name,
		Properties: make(map[string]*types.Schema),
	}
	if c.description != "" {
		schema.Description = c.description
	}

	for _, t := range c.tags {
		if t.name != "property" && t.name != "prop" {
			continue
		}

		var typeName string
		rest := t.value
		if bm := bracedRegex.FindStringSubmatch(t.value); bm != nil {
			typeName = bm[1]
			rest = bm[2]
		}
		nm := nameRegex.FindStringSubmatch(rest)
		if nm == nil {
			continue
		}

		propName := nm[1]
		required := true
		if strings.HasPrefix(propName, "[") && strings.HasSuffix(propName, "]") {
			propName = strings.Trim(propName, "[]")
			required = false
		}

		prop := mapType(typeName)
		if prop == nil {
			prop = &types.Schema{Type: "object"}
		}
		prop.Description = strings.TrimSpace(nm[2])
		schema.Properties[propName] = prop
		if required {
			schema.Required = append(schema.Required, propName)
		}
	}

	return &types.NamedSchema{
		Name:        name,
		Schema:      schema,
		Description: c.description,
	}
}

// mapType maps a JSDoc type expression onto a JSON schema. Primitive
// names pass through lower-cased, array markers map to array,
// Promise<T> unwraps to T, everything else defaults to object.
func mapType(typeName string) *types.Schema {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return nil
	}

	if strings.HasPrefix(typeName, "Promise<") || strings.HasPrefix(typeName, "Promise[") {
		return mapType(util.ExtractInnerType(typeName))
	}

	if strings.Contains(typeName, "[]") {
		inner := mapType(util.ExtractInnerType(typeName))
		return &types.Schema{Type: "array", Items: inner}
	}

	switch strings.ToLower(typeName) {
	case "string", "number", "integer", "boolean", "object", "array":
		return &types.Schema{Type: strings.ToLower(typeName)}
	default:
		return &types.Schema{Type: "object", Title: typeName}
	}
}
