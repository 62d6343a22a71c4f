// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package godoc extracts API documentation from Go doc comments: the
// contiguous // blocks preceding function and struct declarations.
package godoc

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

var (
	// funcDocRegex matches a // comment block directly above a
	// function declaration (plain or method).
	funcDocRegex = regexp.MustCompile(`(?m)((?:^[ \t]*//[^\n]*\n)+)[ \t]*func\s+(?:\([^)]*\)\s*)?(\w+)\s*\(`)

	// structDocRegex matches a // comment block directly above a
	// struct type declaration, capturing the struct body up to the
	// first closing brace.
	structDocRegex = regexp.MustCompile(`(?m)((?:^[ \t]*//[^\n]*\n)+)[ \t]*type\s+(\w+)\s+struct\s*\{([^}]*)\}`)

	// routeLineRegex matches "Route: METHOD /path" or a bare
	// "METHOD /path" line inside a comment block.
	routeLineRegex = regexp.MustCompile(`(?m)^\s*(?:Route:\s*)?(GET|POST|PUT|PATCH|DELETE|HEAD|OPTIONS|TRACE)\s+(/\S*)\s*$`)

	// paramLineRegex matches "name type - description" entries in a
	// Parameters section.
	paramLineRegex = regexp.MustCompile(`^\s*(\w+)\s+([\w\[\]\*\.]+)(?:\s+-\s+(.*))?$`)

	// responseLineRegex matches "code: description" entries in a
	// Responses section.
	responseLineRegex = regexp.MustCompile(`^\s*(\d{3}|default)\s*:\s*(.*)$`)

	// fieldRegex matches one struct field with an optional json tag
	// and trailing comment.
	fieldRegex = regexp.MustCompile(`(?m)^\s*(\w+)\s+([\w\[\]\*\.{}]+)(?:\s+` + "`" + `[^` + "`" + `]*` + "`" + `)?[ \t]*(?://\s*(.*))?$`)

	// jsonTagRegex pulls the json name out of a struct tag.
	jsonTagRegex = regexp.MustCompile(`json:"([^",]+)`)
)

// methodPrefixes maps function-name prefixes to HTTP methods for
// convention-based route inference.
var methodPrefixes = []struct {
	prefix string
	method string
}{
	{"Get", "GET"},
	{"List", "GET"},
	{"Create", "POST"},
	{"Add", "POST"},
	{"Update", "PUT"},
	{"Set", "PUT"},
	{"Delete", "DELETE"},
	{"Remove", "DELETE"},
}

// Parser extracts endpoints and schemas from Go doc comments.
type Parser struct {
	loader *loader.Loader
}

// New creates a Go doc-comment parser.
func New() *Parser {
	return &Parser{loader: loader.New()}
}

// Type returns the registry key.
func (p *Parser) Type() string {
	return types.TypeGoDoc
}

// Extensions returns the file extensions this parser handles.
func (p *Parser) Extensions() []string {
	return []string{".go"}
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
			parsers.CodeFileReadError, fmt.Sprintf("no Go sources found at %s", req.Path)))
	}

	ast := &types.AST{
		Endpoints:  []types.Endpoint{},
		Schemas:    []types.NamedSchema{},
		Components: []types.Component{},
		Metadata:   map[string]any{},
	}
	funcCount := 0
	structCount := 0

	for _, file := range files {
		content := string(file.Content)
		sourceFile := file.Path
		if sourceFile == loader.ContentPath {
			sourceFile = ""
		}

		for _, m := range funcDocRegex.FindAllStringSubmatchIndex(content, -1) {
			funcCount++
			block := content[m[2]:m[3]]
			name := content[m[4]:m[5]]
			line := 1 + strings.Count(content[:m[0]], "\n")
			p.buildEndpoint(name, cleanBlock(block), sourceFile, line, ast)
		}

		for _, m := range structDocRegex.FindAllStringSubmatchIndex(content, -1) {
			structCount++
			block := content[m[2]:m[3]]
			name := content[m[4]:m[5]]
			body := content[m[6]:m[7]]
			p.buildSchema(name, cleanBlock(block), body, ast)
		}
	}

	ast.Metadata["documentedFuncs"] = funcCount
	ast.Metadata["documentedStructs"] = structCount

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

// cleanBlock strips the // markers from a comment block.
func cleanBlock(block string) string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimPrefix(line, " ")
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// docSections is a godoc comment split into its typed sections.
type docSections struct {
	description string
	params      []types.Parameter
	responses   []types.Response
	deprecated  bool
}

// splitSections walks the comment line by line, buffering Parameters
// and Responses blocks and collecting the rest as free text.
func splitSections(text string, path string) docSections {
	var d docSections
	var freeText []string
	section := ""

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "Parameters:":
			section = "parameters"
			continue
		case trimmed == "Responses:":
			section = "responses"
			continue
		case strings.HasPrefix(trimmed, "Deprecated:"):
			d.deprecated = true
			section = ""
			continue
		case trimmed == "":
			section = ""
			freeText = append(freeText, line)
			continue
		}

		switch section {
		case "parameters":
			if m := paramLineRegex.FindStringSubmatch(trimmed); m != nil {
				name := m[1]
				in := "query"
				if strings.Contains(path, "{"+name+"}") {
					in = "path"
				}
				desc := strings.TrimSpace(m[3])
				d.params = append(d.params, types.Parameter{
					Name:        name,
					In:          in,
					Description: desc,
					Required:    in == "path" || !strings.Contains(strings.ToLower(desc), "optional"),
					Schema:      mapGoType(m[2]),
				})
			}
		case "responses":
			if m := responseLineRegex.FindStringSubmatch(trimmed); m != nil {
				d.responses = append(d.responses, types.Response{
					StatusCode:  m[1],
					Description: strings.TrimSpace(m[2]),
				})
			}
		default:
			freeText = append(freeText, line)
		}
	}

	d.description = strings.TrimSpace(strings.Join(freeText, "\n"))
	return d
}

// buildEndpoint turns one documented function into an endpoint when
// route information can be found.
func (p *Parser) buildEndpoint(name, text, sourceFile string, line int, ast *types.AST) {
	method, path := inferRoute(name, text)
	if method == "" {
		return
	}

	sections := splitSections(routeLineRegex.ReplaceAllString(text, ""), path)

	summary := util.FirstLine(sections.description)
	if summary == "" {
		// Undocumented convention routes still get a readable summary
		// derived from the function name
		summary = util.TitleWords(strings.Join(util.SplitCamel(name), " "))
	}

	ep := types.Endpoint{
		ID:          util.EndpointID(method, path),
		Path:        path,
		Method:      method,
		Summary:     summary,
		Description: sections.description,
		Tags:        util.InferTags(path),
		Parameters:  sections.params,
		Responses:   sections.responses,
		Deprecated:  sections.deprecated,
		SourceFile:  sourceFile,
		SourceLine:  line,
	}

	if len(ep.Responses) == 0 {
		ep.Responses = []types.Response{{StatusCode: "200", Description: "Success"}}
	}

	ast.Endpoints = append(ast.Endpoints, ep)
}

// buildSchema turns one documented struct into a named object schema.
func (p *Parser) buildSchema(name, text, body string, ast *types.AST) {
	schema := &types.Schema{
		Type:       "object",
		Title:      name,
		Properties: make(map[string]*types.Schema),
	}
	if text != "" {
		schema.Description = text
	}

	for _, line := range strings.Split(body, "\n") {
		m := fieldRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		fieldName := m[1]
		if tag := jsonTagRegex.FindStringSubmatch(line); tag != nil {
			if tag[1] == "-" {
				continue
			}
			fieldName = tag[1]
		}

		prop := mapGoType(m[2])
		if prop == nil {
			continue
		}
		prop.Description = strings.TrimSpace(m[3])
		schema.Properties[fieldName] = prop

		// Pointer fields and omitempty tags are treated as optional
		if !strings.HasPrefix(m[2], "*") && !strings.Contains(line, "omitempty") {
			schema.Required = append(schema.Required, fieldName)
		}
	}

	if len(schema.Properties) == 0 {
		return
	}

	ast.Schemas = append(ast.Schemas, types.NamedSchema{
		Name:        name,
		Schema:      schema,
		Description: util.FirstLine(text),
	})
}

// inferRoute finds route information for a function: an explicit
// Route line in the doc comment, or the exported-name convention with
// the path synthesized from the prefix-stripped camel segments.
func inferRoute(name, text string) (method, path string) {
	if m := routeLineRegex.FindStringSubmatch(text); m != nil {
		return m[1], util.EnsureLeadingSlash(m[2])
	}

	for _, mp := range methodPrefixes {
		rest := strings.TrimPrefix(name, mp.prefix)
		if rest == name || rest == "" {
			continue
		}
		// The remainder must start a new camel word, so GetterFunc
		// does not become a GET route
		if rest[0] < 'A' || rest[0] > 'Z' {
			continue
		}
		return mp.method, "/api/" + strings.Join(util.SplitCamel(rest), "/")
	}

	return "", ""
}

// mapGoType normalizes a Go type expression to a JSON schema.
func mapGoType(typeName string) *types.Schema {
	typeName = strings.TrimSpace(strings.TrimPrefix(typeName, "*"))
	if typeName == "" {
		return nil
	}

	if strings.HasPrefix(typeName, "[]") {
		return &types.Schema{Type: "array", Items: mapGoType(strings.TrimPrefix(typeName, "[]"))}
	}
	if strings.HasPrefix(typeName, "map[") {
		return &types.Schema{Type: "object"}
	}

	switch typeName {
	case "string":
		return &types.Schema{Type: "string"}
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "byte", "rune":
		return &types.Schema{Type: "integer"}
	case "float32", "float64":
		return &types.Schema{Type: "number"}
	case "bool":
		return &types.Schema{Type: "boolean"}
	case "time.Time":
		return &types.Schema{Type: "string", Format: "date-time"}
	case "interface{}", "any":
		return &types.Schema{Type: "object"}
	default:
		return &types.Schema{Type: "object", Title: typeName}
	}
}
