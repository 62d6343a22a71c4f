// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package pydoc extracts API documentation from Python docstrings. It
// handles Google, NumPy, and Sphinx docstring dialects plus a simple
// summary/description fallback.
package pydoc

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
	// moduleDocRegex matches a docstring at the very start of a file.
	moduleDocRegex = regexp.MustCompile(`^\s*(?:"""([\s\S]*?)"""|'''([\s\S]*?)''')`)

	// funcDocRegex matches a function definition followed by its docstring.
	funcDocRegex = regexp.MustCompile(`(?m)^[ \t]*def\s+(\w+)\s*\(([^)]*)\)\s*(?:->[^:\n]*)?:[ \t]*\n\s*(?:"""([\s\S]*?)"""|'''([\s\S]*?)''')`)

	// classDocRegex matches a class definition followed by its docstring.
	classDocRegex = regexp.MustCompile(`(?m)^[ \t]*class\s+(\w+)\s*(?:\([^)]*\))?\s*:[ \t]*\n\s*(?:"""([\s\S]*?)"""|'''([\s\S]*?)''')`)

	// routeLineRegex matches explicit route declarations inside a
	// docstring: "Route: GET /users", "@route GET /users", or a bare
	// "GET /users" line.
	routeLineRegex = regexp.MustCompile(`(?m)^\s*(?:Route:\s*|@route\s+)?(GET|POST|PUT|PATCH|DELETE|HEAD|OPTIONS|TRACE)\s+(/\S*)\s*$`)
)

// methodPrefixes maps function-name prefixes to HTTP methods for
// convention-based route inference.
var methodPrefixes = []struct {
	prefix string
	method string
}{
	{"get_", "GET"},
	{"create_", "POST"},
	{"update_", "PUT"},
	{"delete_", "DELETE"},
}

// exceptionStatus maps documented exception names to HTTP status codes.
// Unknown exceptions default to 500.
var exceptionStatus = map[string]string{
	"ValueError":          "400",
	"ValidationError":     "400",
	"DuplicateEmailError": "409",
	"DatabaseError":       "500",
	"NotFoundError":       "404",
	"UnauthorizedError":   "401",
	"ForbiddenError":      "403",
}

// Parser extracts endpoints and schemas from Python docstrings.
type Parser struct {
	loader *loader.Loader
}

// New creates a Python docstring parser.
func New() *Parser {
	return &Parser{loader: loader.New()}
}

// Type returns the registry key.
func (p *Parser) Type() string {
	return types.TypePythonDocstring
}

// Extensions returns the file extensions this parser handles.
func (p *Parser) Extensions() []string {
	return []string{".py", ".pyw"}
}

// CanParse reports whether this parser accepts the request.
func (p *Parser) CanParse(req *types.ParseRequest) bool {
	return parsers.CanParseDefault(p, req)
}

// Parse extracts endpoints and schemas from all matched source files.
func (p *Parser) Parse(ctx context.Context, req *types.ParseRequest) *types.ParseResponse {
	files, err := p.loader.Load(ctx, req, p.Extensions())
	if err != nil {
		return parsers.FailedResponse(p.Type(), err)
	}
	if len(files) == 0 {
		return parsers.FailedResponse(p.Type(), parsers.NewParseError(
			parsers.CodeFileReadError, fmt.Sprintf("no Python sources found at %s", req.Path)))
	}

	ast := &types.AST{
		Endpoints:  []types.Endpoint{},
		Schemas:    []types.NamedSchema{},
		Components: []types.Component{},
		Metadata:   map[string]any{},
	}

	docstringCount := 0
	functionCount := 0
	classCount := 0
	styleCounts := map[string]int{}

	for _, file := range files {
		content := string(file.Content)

		if m := moduleDocRegex.FindStringSubmatch(content); m != nil {
			docstringCount++
			doc := parseDocstring(firstGroup(m[1], m[2]))
			styleCounts[doc.style]++
			if _, ok := ast.Metadata["module"]; !ok && doc.summary != "" {
				ast.Metadata["module"] = doc.summary
			}
		}

		for _, m := range funcDocRegex.FindAllStringSubmatchIndex(content, -1) {
			functionCount++
			docstringCount++
			name := content[m[2]:m[3]]
			raw := groupAt(content, m, 3)
			if raw == "" {
				raw = groupAt(content, m, 4)
			}
			doc := parseDocstring(raw)
			styleCounts[doc.style]++

			line := 1 + strings.Count(content[:m[0]], "\n")
			p.buildEndpoint(name, doc, file, line, ast)
		}

		for _, m := range classDocRegex.FindAllStringSubmatchIndex(content, -1) {
			classCount++
			docstringCount++
			name := content[m[2]:m[3]]
			raw := groupAt(content, m, 2)
			if raw == "" {
				raw = groupAt(content, m, 3)
			}
			doc := parseDocstring(raw)
			styleCounts[doc.style]++
			p.buildSchema(name, doc, ast)
		}
	}

	ast.Metadata["docstringCount"] = docstringCount
	ast.Metadata["functionCount"] = functionCount
	ast.Metadata["classCount"] = classCount
	ast.Metadata["styles"] = styleCounts

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

// buildEndpoint turns a documented function into an endpoint when route
// information can be found. Functions matching neither an explicit
// route nor the naming convention produce no endpoint.
func (p *Parser) buildEndpoint(name string, doc *docstring, file scanner.SourceFile, line int, ast *types.AST) {
	method, path := inferRoute(name, doc)
	if method == "" {
		return
	}

	sourceFile := file.Path
	if sourceFile == loader.ContentPath {
		sourceFile = ""
	}

	summary := doc.summary
	if summary == "" {
		// Undocumented convention routes still get a readable summary
		// derived from the function name
		summary = util.TitleWords(strings.ReplaceAll(name, "_", " "))
	}

	ep := types.Endpoint{
		ID:          util.EndpointID(method, path),
		Path:        path,
		Method:      method,
		Summary:     summary,
		Description: strings.TrimSpace(routeLineRegex.ReplaceAllString(doc.description, "")),
		Tags:        util.InferTags(path),
		SourceFile:  sourceFile,
		SourceLine:  line,
	}

	for _, param := range doc.params {
		in := "query"
		if strings.Contains(path, "{"+param.name+"}") {
			in = "path"
		}
		ep.Parameters = append(ep.Parameters, types.Parameter{
			Name:        param.name,
			In:          in,
			Description: param.description,
			Required:    param.required || in == "path",
			Schema:      mapPythonType(param.typeName),
		})
	}

	success := types.Response{StatusCode: "200", Description: "Success"}
	if doc.returns != nil {
		success.Description = doc.returns.description
		success.Schema = mapPythonType(doc.returns.typeName)
	}
	ep.Responses = append(ep.Responses, success)

	for _, r := range doc.raises {
		status, ok := exceptionStatus[r.exception]
		if !ok {
			status = "500"
		}
		ep.Responses = append(ep.Responses, types.Response{
			StatusCode:  status,
			Description: r.description,
		})
	}

	ast.Endpoints = append(ast.Endpoints, ep)
}

// buildSchema turns a documented class with an Attributes section into
// a named object schema.
func (p *Parser) buildSchema(name string, doc *docstring, ast *types.AST) {
	if len(doc.attributes) == 0 {
		return
	}

	schema := &types.Schema{
		Type:       "object",
		Title:      name,
		Properties: make(map[string]*types.Schema),
	}
	if doc.summary != "" {
		schema.Description = doc.summary
	}

	for _, attr := range doc.attributes {
		prop := mapPythonType(attr.typeName)
		if prop == nil {
			prop = &types.Schema{Type: "object"}
		}
		prop.Description = attr.description
		schema.Properties[attr.name] = prop
		if attr.required {
			schema.Required = append(schema.Required, attr.name)
		}
	}

	ast.Schemas = append(ast.Schemas, types.NamedSchema{
		Name:        name,
		Schema:      schema,
		Description: doc.summary,
	})
}

// inferRoute finds route information for a function: an explicit route
// line in the docstring, or the function-name convention with the path
// synthesized from the prefix-stripped name.
func inferRoute(name string, doc *docstring) (method, path string) {
	text := doc.description
	if text == "" {
		text = doc.summary
	}
	if m := routeLineRegex.FindStringSubmatch(text); m != nil {
		return m[1], util.EnsureLeadingSlash(m[2])
	}

	for _, mp := range methodPrefixes {
		if strings.HasPrefix(name, mp.prefix) {
			rest := strings.TrimPrefix(name, mp.prefix)
			if rest == "" {
				return "", ""
			}
			return mp.method, "/api/" + strings.ReplaceAll(rest, "_", "/")
		}
	}

	return "", ""
}

// mapPythonType normalizes a Python type annotation to a JSON schema.
// Generic parameters are stripped to their base (List[int] maps to a
// plain array).
func mapPythonType(typeName string) *types.Schema {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return nil
	}

	switch util.GenericBase(typeName) {
	case "str":
		return &types.Schema{Type: "string"}
	case "int":
		return &types.Schema{Type: "integer"}
	case "float":
		return &types.Schema{Type: "number"}
	case "bool":
		return &types.Schema{Type: "boolean"}
	case "list", "List", "tuple", "Tuple", "set", "Set":
		return &types.Schema{Type: "array"}
	case "dict", "Dict":
		return &types.Schema{Type: "object"}
	case "Optional", "Union", "Any":
		return &types.Schema{Type: "string"}
	case "datetime", "date":
		return &types.Schema{Type: "string", Format: "date-time"}
	case "None", "NoneType":
		return &types.Schema{Type: "string", Nullable: true}
	default:
		return &types.Schema{Type: "object", Title: typeName}
	}
}

// firstGroup returns the first non-empty capture.
func firstGroup(groups ...string) string {
	for _, g := range groups {
		if g != "" {
			return g
		}
	}
	return ""
}

// groupAt returns capture group n from a submatch index slice, or ""
// when the group did not participate.
func groupAt(content string, m []int, n int) string {
	if 2*n+1 >= len(m) || m[2*n] < 0 {
		return ""
	}
	return content[m[2*n]:m[2*n+1]]
}
