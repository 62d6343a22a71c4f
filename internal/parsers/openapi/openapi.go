// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package openapi parses OpenAPI 3.x and Swagger 2.0 documents into the
// standardized AST.
package openapi

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"encoding/json"

	"github.com/docforge/docforge/internal/loader"
	"github.com/docforge/docforge/internal/parsers"
	"github.com/docforge/docforge/internal/scanner"
	"github.com/docforge/docforge/internal/util"
	"github.com/docforge/docforge/pkg/types"
)

// methodOrder is the canonical verb ordering used when walking path items.
var methodOrder = []string{"get", "post", "put", "patch", "delete", "head", "options", "trace"}

// componentSections are the OpenAPI 3.x component sections copied into
// the AST components list, tagged with their section name.
var componentSections = []string{
	"schemas", "responses", "parameters", "examples",
	"requestBodies", "headers", "securitySchemes", "links", "callbacks",
}

// pathHints are substrings that make a file path acceptable even
// without a recognized extension.
var pathHints = []string{"openapi", "swagger", "api"}

// Parser extracts endpoints, schemas, and components from OpenAPI and
// Swagger documents.
type Parser struct {
	loader *loader.Loader
}

// New creates an OpenAPI parser.
func New() *Parser {
	return &Parser{loader: loader.New()}
}

// Type returns the registry key.
func (p *Parser) Type() string {
	return types.TypeOpenAPI
}

// Extensions returns the file extensions this parser handles.
func (p *Parser) Extensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// CanParse accepts matching-type requests. File sources need a
// recognized extension, or a path mentioning openapi/swagger/api,
// which covers extensionless spec files in the wild.
func (p *Parser) CanParse(req *types.ParseRequest) bool {
	if req == nil || req.Type != p.Type() {
		return false
	}
	if req.Source != types.SourceFile {
		return true
	}
	if parsers.ExtensionMatches(req.Path, p.Extensions()) {
		return true
	}
	lower := strings.ToLower(req.Path)
	for _, hint := range pathHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// Parse loads the document and runs extraction. All failures are
// converted into a failed response.
func (p *Parser) Parse(ctx context.Context, req *types.ParseRequest) *types.ParseResponse {
	files, err := p.loader.Load(ctx, req, p.Extensions())
	if err != nil {
		return parsers.FailedResponse(p.Type(), err)
	}
	if len(files) == 0 {
		return parsers.FailedResponse(p.Type(), parsers.NewParseError(
			parsers.CodeFileReadError, fmt.Sprintf("no OpenAPI documents found at %s", req.Path)))
	}

	ast := &types.AST{
		Endpoints:  []types.Endpoint{},
		Schemas:    []types.NamedSchema{},
		Components: []types.Component{},
		Metadata:   map[string]any{},
	}
	var warnings []types.Issue
	var version string
	parsed := 0

	for _, file := range files {
		doc, err := p.decodeDocument(file, req)
		if err != nil {
			if len(files) == 1 {
				return parsers.FailedResponse(p.Type(), err)
			}
			warnings = append(warnings, parsers.AsParseError(err).Issue())
			continue
		}

		if req.Options.ValidateSchemaEnabled() {
			if err := p.validateDocument(doc); err != nil {
				if len(files) == 1 {
					return parsers.FailedResponse(p.Type(), err)
				}
				warnings = append(warnings, parsers.AsParseError(err).Issue())
				continue
			}
		}

		if v := documentVersion(doc); version == "" {
			version = v
		}
		p.extractEndpoints(doc, file.Path, ast)
		p.extractComponents(doc, ast)
		parsed++
	}

	if parsed == 0 {
		return &types.ParseResponse{
			Status:   types.StatusFailed,
			Metadata: types.ParseMetadata{SourceType: p.Type()},
			Errors:   warnings,
		}
	}

	if req.Options.ResolveRefsEnabled() {
		p.resolveReferences(ast)
	}

	ast.Metadata["specVersion"] = version
	ast.Metadata["documentCount"] = parsed

	status := types.StatusSuccess
	if len(warnings) > 0 {
		status = types.StatusPartial
	}

	return &types.ParseResponse{
		Status: status,
		AST:    ast,
		Metadata: types.ParseMetadata{
			SourceType:    p.Type(),
			Version:       version,
			EndpointCount: len(ast.Endpoints),
			SchemaCount:   len(ast.Schemas),
			FileSize:      loader.TotalSize(files),
		},
		Warnings: warnings,
	}
}

// decodeDocument unmarshals one document into a generic map. Content
// sources accept JSON only: YAML text raises NOT_IMPLEMENTED so the
// caller sees a clean failure instead of a crash.
func (p *Parser) decodeDocument(file scanner.SourceFile, req *types.ParseRequest) (map[string]any, error) {
	data := bytes.TrimSpace(file.Content)
	if len(data) == 0 {
		return nil, parsers.NewParseError(parsers.CodeInvalidDocument,
			fmt.Sprintf("empty document: %s", file.Path))
	}

	if req.Source == types.SourceContent {
		if data[0] != '{' {
			return nil, parsers.NewParseError(parsers.CodeNotImplemented,
				"YAML content parsing is not implemented; supply JSON content or a file source")
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, parsers.NewParseError(parsers.CodeInvalidDocument,
				fmt.Sprintf("invalid JSON content: %v", err))
		}
		return doc, nil
	}

	var doc map[string]any
	switch file.Language {
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, parsers.NewParseError(parsers.CodeInvalidDocument,
				fmt.Sprintf("invalid YAML in %s: %v", file.Path, err))
		}
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, parsers.NewParseError(parsers.CodeInvalidDocument,
				fmt.Sprintf("invalid JSON in %s: %v", file.Path, err))
		}
	default:
		// Unknown extension: try YAML, which also accepts JSON
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, parsers.NewParseError(parsers.CodeInvalidDocument,
				fmt.Sprintf("failed to parse %s as YAML or JSON: %v", file.Path, err))
		}
	}
	return doc, nil
}

// validateDocument runs the structural checks required of every
// document: a version field, a populated info object, and a paths object.
func (p *Parser) validateDocument(doc map[string]any) error {
	if documentVersion(doc) == "" {
		return parsers.NewParseError(parsers.CodeInvalidDocument,
			"document is missing an openapi or swagger version field")
	}

	info, ok := doc["info"].(map[string]any)
	if !ok {
		return parsers.NewParseError(parsers.CodeMissingInfo,
			"document is missing the info object")
	}

	title, _ := info["title"].(string)
	version, _ := info["version"].(string)
	if title == "" || version == "" {
		return parsers.NewParseError(parsers.CodeMissingInfoFields,
			"info object requires non-empty title and version")
	}

	if _, ok := doc["paths"].(map[string]any); !ok {
		return parsers.NewParseError(parsers.CodeMissingPaths,
			"document is missing the paths object")
	}

	return nil
}

// documentVersion returns the openapi or swagger version field value.
func documentVersion(doc map[string]any) string {
	if v, ok := doc["openapi"].(string); ok && v != "" {
		return v
	}
	if v, ok := doc["swagger"].(string); ok && v != "" {
		return v
	}
	return ""
}

// extractEndpoints walks every path item and every canonical verb
// present as a key. Path-level parameters are merged ahead of
// operation-level ones without de-duplication.
func (p *Parser) extractEndpoints(doc map[string]any, sourceFile string, ast *types.AST) {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return
	}

	pathKeys := make([]string, 0, len(paths))
	for k := range paths {
		pathKeys = append(pathKeys, k)
	}
	sort.Strings(pathKeys)

	for _, path := range pathKeys {
		item, ok := paths[path].(map[string]any)
		if !ok {
			continue
		}

		pathParams := decodeParameters(item["parameters"])

		for _, method := range methodOrder {
			op, ok := item[method].(map[string]any)
			if !ok {
				continue
			}

			upper := strings.ToUpper(method)
			normalized := util.EnsureLeadingSlash(path)
			ep := types.Endpoint{
				ID:         util.EndpointID(upper, normalized),
				Path:       normalized,
				Method:     upper,
				SourceFile: sourceFile,
			}
			if sourceFile == loader.ContentPath {
				ep.SourceFile = ""
			}

			ep.Summary, _ = op["summary"].(string)
			ep.Description, _ = op["description"].(string)
			ep.Deprecated, _ = op["deprecated"].(bool)
			ep.Tags = decodeStringSlice(op["tags"])

			// Operation params append after path params; duplicates
			// by name+in are legal and left to the consumer.
			ep.Parameters = append(append([]types.Parameter{}, pathParams...),
				decodeParameters(op["parameters"])...)

			ep.RequestBody = decodeRequestBody(op["requestBody"])
			ep.Responses = decodeResponses(op["responses"])
			ep.Security = decodeSecurity(op["security"])

			ast.Endpoints = append(ast.Endpoints, ep)
		}
	}
}

// extractComponents copies component sections into the AST, and named
// schemas additionally into the schemas list. Swagger 2.0 definitions
// and securityDefinitions are mapped onto their 3.x equivalents.
func (p *Parser) extractComponents(doc map[string]any, ast *types.AST) {
	if components, ok := doc["components"].(map[string]any); ok {
		for _, section := range componentSections {
			entries, ok := components[section].(map[string]any)
			if !ok {
				continue
			}
			p.copySection(section, entries, ast)
		}
	}

	// Swagger 2.0
	if defs, ok := doc["definitions"].(map[string]any); ok {
		p.copySection("schemas", defs, ast)
	}
	if defs, ok := doc["securityDefinitions"].(map[string]any); ok {
		p.copySection("securitySchemes", defs, ast)
	}
}

// copySection copies one named-definition section into the components
// list, mirroring schemas into the schemas list as typed entries.
func (p *Parser) copySection(section string, entries map[string]any, ast *types.AST) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def, _ := entries[name].(map[string]any)
		ast.Components = append(ast.Components, types.Component{
			Name:       name,
			Type:       section,
			Source:     types.TypeOpenAPI,
			Definition: def,
		})

		if section == "schemas" {
			schema := decodeSchema(entries[name])
			if schema == nil {
				continue
			}
			ast.Schemas = append(ast.Schemas, types.NamedSchema{
				Name:        name,
				Schema:      schema,
				Description: schema.Description,
			})
		}
	}
}

// resolveReferences is a pass-through: $ref values are carried
// unresolved. The flag exists so enabling it is always safe.
func (p *Parser) resolveReferences(_ *types.AST) {}

// --- Decoding helpers ---

// decodeSchema decodes a loose schema map into a typed Schema.
func decodeSchema(v any) *types.Schema {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	var schema types.Schema
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &schema,
	})
	if err != nil {
		return nil
	}
	if err := decoder.Decode(m); err != nil {
		return nil
	}
	return &schema
}

// decodeParameters decodes a parameters array.
func decodeParameters(v any) []types.Parameter {
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	var params []types.Parameter
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		param := types.Parameter{}
		param.Name, _ = m["name"].(string)
		param.In, _ = m["in"].(string)
		param.Description, _ = m["description"].(string)
		param.Required, _ = m["required"].(bool)
		param.Schema = decodeSchema(m["schema"])
		// Swagger 2.0 puts the type inline on the parameter
		if param.Schema == nil {
			if t, ok := m["type"].(string); ok {
				param.Schema = &types.Schema{Type: t}
			}
		}
		params = append(params, param)
	}
	return params
}

// decodeRequestBody decodes an OpenAPI 3.x requestBody object, keeping
// the application/json schema when present, else the first media type.
func decodeRequestBody(v any) *types.RequestBody {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	body := &types.RequestBody{}
	body.Description, _ = m["description"].(string)
	body.Required, _ = m["required"].(bool)
	body.ContentType, body.Schema = pickContent(m["content"])
	return body
}

// decodeResponses decodes a responses map into the ordered response list.
func decodeResponses(v any) []types.Response {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var responses []types.Response
	for _, code := range codes {
		entry, ok := m[code].(map[string]any)
		if !ok {
			continue
		}
		resp := types.Response{StatusCode: code}
		resp.Description, _ = entry["description"].(string)
		if _, schema := pickContent(entry["content"]); schema != nil {
			resp.Schema = schema
		} else if s := decodeSchema(entry["schema"]); s != nil {
			// Swagger 2.0 inlines the schema on the response
			resp.Schema = s
		}
		responses = append(responses, resp)
	}
	return responses
}

// pickContent selects a media-type schema from a content map,
// preferring application/json.
func pickContent(v any) (string, *types.Schema) {
	content, ok := v.(map[string]any)
	if !ok || len(content) == 0 {
		return "", nil
	}

	if entry, ok := content["application/json"].(map[string]any); ok {
		return "application/json", decodeSchema(entry["schema"])
	}

	keys := make([]string, 0, len(content))
	for k := range content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if entry, ok := content[keys[0]].(map[string]any); ok {
		return keys[0], decodeSchema(entry["schema"])
	}
	return "", nil
}

// decodeSecurity decodes an operation security requirement list.
func decodeSecurity(v any) []map[string][]string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	var security []map[string][]string
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		requirement := make(map[string][]string, len(m))
		for name, scopes := range m {
			requirement[name] = decodeStringSlice(scopes)
		}
		security = append(security, requirement)
	}
	return security
}

// decodeStringSlice decodes a []any of strings.
func decodeStringSlice(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, entry := range list {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
