// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package types provides the core data structures of the docforge parser subsystem:
// parse request/response envelopes and the standardized AST that every format
// parser produces.
package types

// Parser type identifiers. Each registered parser owns exactly one of these.
const (
	TypeOpenAPI         = "openapi"
	TypeJSDoc           = "jsdoc"
	TypePythonDocstring = "python-docstring"
	TypeGoDoc           = "go-doc"
	TypeGraphQL         = "graphql"
)

// Source kinds describing how ParseRequest.Path is interpreted.
const (
	SourceFile      = "file"
	SourceDirectory = "directory"
	SourceURL       = "url"
	SourceContent   = "content"
)

// Parse statuses.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusFailed  = "failed"
)

// KnownTypes lists the parser types this module ships with.
var KnownTypes = []string{
	TypeOpenAPI,
	TypeJSDoc,
	TypePythonDocstring,
	TypeGoDoc,
	TypeGraphQL,
}

// KnownSources lists the valid source kinds.
var KnownSources = []string{
	SourceFile,
	SourceDirectory,
	SourceURL,
	SourceContent,
}

// IsKnownType reports whether t is a registered parser type identifier.
func IsKnownType(t string) bool {
	for _, k := range KnownTypes {
		if k == t {
			return true
		}
	}
	return false
}

// IsKnownSource reports whether s is a valid source kind.
func IsKnownSource(s string) bool {
	for _, k := range KnownSources {
		if k == s {
			return true
		}
	}
	return false
}

// ParseRequest describes a single parse invocation.
type ParseRequest struct {
	// Type selects the parser (openapi, jsdoc, python-docstring, go-doc, graphql)
	Type string `json:"type" yaml:"type"`

	// Source describes how Path is interpreted (file, directory, url, content)
	Source string `json:"source" yaml:"source"`

	// Path is a filesystem path, URL, or (for content sources) the raw text itself
	Path string `json:"path" yaml:"path"`

	// Options holds optional parse behavior switches
	Options *ParseOptions `json:"options,omitempty" yaml:"options,omitempty"`
}

// ParseOptions holds optional switches for a parse invocation.
type ParseOptions struct {
	// ValidateSchema enables structural validation of the input document.
	// Nil means enabled.
	ValidateSchema *bool `json:"validateSchema,omitempty" yaml:"validateSchema,omitempty"`

	// ResolveRefs enables reference resolution. Nil means enabled.
	// The baseline implementation passes $ref values through unresolved.
	ResolveRefs *bool `json:"resolveRefs,omitempty" yaml:"resolveRefs,omitempty"`

	// Recursive enables recursive directory scanning
	Recursive bool `json:"recursive,omitempty" yaml:"recursive,omitempty"`

	// Include is a list of glob patterns to include when scanning directories
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`

	// Exclude is a list of glob patterns to exclude when scanning directories
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`

	// ParserSpecific carries free-form per-parser options
	ParserSpecific map[string]any `json:"parserSpecific,omitempty" yaml:"parserSpecific,omitempty"`
}

// ValidateSchemaEnabled reports whether structural validation is requested.
// The option defaults to enabled when unset.
func (o *ParseOptions) ValidateSchemaEnabled() bool {
	if o == nil || o.ValidateSchema == nil {
		return true
	}
	return *o.ValidateSchema
}

// ResolveRefsEnabled reports whether reference resolution is requested.
// The option defaults to enabled when unset.
func (o *ParseOptions) ResolveRefsEnabled() bool {
	if o == nil || o.ResolveRefs == nil {
		return true
	}
	return *o.ResolveRefs
}

// ParseResponse is the output envelope of a parse invocation.
type ParseResponse struct {
	// Status is success, partial, or failed
	Status string `json:"status" yaml:"status"`

	// ParseID uniquely identifies this parse for later extract/validate calls
	ParseID string `json:"parseId" yaml:"parseId"`

	// AST is the standardized parse result, present unless Status is failed
	AST *AST `json:"ast,omitempty" yaml:"ast,omitempty"`

	// Metadata carries parse statistics
	Metadata ParseMetadata `json:"metadata" yaml:"metadata"`

	// Warnings are non-fatal issues encountered while parsing
	Warnings []Issue `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Errors are fatal issues, present only when Status is failed
	Errors []Issue `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ParseMetadata carries statistics about one parse invocation.
type ParseMetadata struct {
	// SourceType is the parser type that produced the result
	SourceType string `json:"sourceType" yaml:"sourceType"`

	// Version is the detected format version, when the format declares one
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// EndpointCount is the number of endpoints in the AST
	EndpointCount int `json:"endpointCount" yaml:"endpointCount"`

	// SchemaCount is the number of named schemas in the AST
	SchemaCount int `json:"schemaCount" yaml:"schemaCount"`

	// ParseTime is the wall-clock parse duration in seconds
	ParseTime float64 `json:"parseTime" yaml:"parseTime"`

	// FileSize is the total size of the parsed input in bytes
	FileSize int64 `json:"fileSize" yaml:"fileSize"`
}

// Issue is a single warning or error attached to a parse response.
type Issue struct {
	// Code is a machine-readable issue code
	Code string `json:"code" yaml:"code"`

	// Message is a human-readable description
	Message string `json:"message" yaml:"message"`

	// Location points at the offending input, when known
	Location *Location `json:"location,omitempty" yaml:"location,omitempty"`
}

// Location identifies a position in an input source.
type Location struct {
	// File is the source file path
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Line is the 1-based line number
	Line int `json:"line,omitempty" yaml:"line,omitempty"`

	// Column is the 1-based column number
	Column int `json:"column,omitempty" yaml:"column,omitempty"`
}

// Extract section names accepted by ExtractRequest.ExtractType.
const (
	ExtractEndpoints  = "endpoints"
	ExtractSchemas    = "schemas"
	ExtractComponents = "components"
	ExtractMetadata   = "metadata"
)

// ExtractRequest asks for a filtered view over a previously parsed AST.
type ExtractRequest struct {
	// ParseID identifies the cached parse result to read from
	ParseID string `json:"parseId" yaml:"parseId"`

	// ExtractType selects the AST section (endpoints, schemas, components, metadata)
	ExtractType string `json:"extractType" yaml:"extractType"`

	// Filters narrows the extracted data; all present filters are ANDed
	Filters *ExtractFilters `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// ExtractFilters narrows endpoint extraction.
type ExtractFilters struct {
	// Methods keeps endpoints whose method is in the list
	Methods []string `json:"methods,omitempty" yaml:"methods,omitempty"`

	// Paths keeps endpoints whose path contains any of the substrings
	Paths []string `json:"paths,omitempty" yaml:"paths,omitempty"`

	// Tags keeps endpoints carrying any of the tags
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ExtractResponse is the result of an extract call.
type ExtractResponse struct {
	// ExtractID uniquely identifies this extraction
	ExtractID string `json:"extractId" yaml:"extractId"`

	// Data is the filtered AST section
	Data any `json:"data" yaml:"data"`

	// Count is the number of extracted items (1 for metadata)
	Count int `json:"count" yaml:"count"`
}

// ValidationRequest asks for rule-based linting of a previously parsed AST.
type ValidationRequest struct {
	// ParseID identifies the cached parse result to validate
	ParseID string `json:"parseId" yaml:"parseId"`

	// Rules names the rules to run; empty means all known rules
	Rules []string `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Violation severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// ValidationResponse is the result of a validate call.
type ValidationResponse struct {
	// Valid is true iff no violation has severity error
	Valid bool `json:"valid" yaml:"valid"`

	// Violations lists the rule violations found
	Violations []Violation `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// Violation is a single validation rule failure.
type Violation struct {
	// Rule is the name of the violated rule
	Rule string `json:"rule" yaml:"rule"`

	// Severity is error, warning, or info
	Severity string `json:"severity" yaml:"severity"`

	// Message describes the violation
	Message string `json:"message" yaml:"message"`

	// Path locates the violating AST element (e.g. "endpoints[3].path")
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}
