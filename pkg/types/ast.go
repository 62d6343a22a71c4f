// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// Canonical HTTP methods an endpoint may carry. GraphQL operations are
// mapped onto these verbs (queries and subscriptions to GET, mutations
// to POST).
var CanonicalMethods = []string{
	"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS", "TRACE",
}

// IsCanonicalMethod reports whether m is one of the eight canonical HTTP verbs.
func IsCanonicalMethod(m string) bool {
	for _, c := range CanonicalMethods {
		if c == m {
			return true
		}
	}
	return false
}

// AST is the standardized parse result every format parser converges on.
// It is constructed fresh on each parse and never mutated afterwards.
type AST struct {
	// Endpoints is the ordered list of extracted API operations
	Endpoints []Endpoint `json:"endpoints" yaml:"endpoints"`

	// Schemas is the list of named data-model definitions
	Schemas []NamedSchema `json:"schemas" yaml:"schemas"`

	// Components is the list of auxiliary named definitions
	Components []Component `json:"components" yaml:"components"`

	// Metadata carries free-form per-format extraction metadata,
	// used for diagnostics only
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Endpoint represents one API operation extracted from a source document.
type Endpoint struct {
	// ID is a stable identifier derived from method and path,
	// unique within one AST
	ID string `json:"id" yaml:"id"`

	// Path is the URL path, always beginning with "/"
	Path string `json:"path" yaml:"path"`

	// Method is a canonical uppercase HTTP verb
	Method string `json:"method" yaml:"method"`

	// Summary is a brief description of the operation
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Description is a detailed description of the operation
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Tags group related endpoints
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Parameters are the operation parameters (path, query, header, body)
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// RequestBody describes the request payload, when present
	RequestBody *RequestBody `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`

	// Responses lists the documented responses
	Responses []Response `json:"responses,omitempty" yaml:"responses,omitempty"`

	// Security lists security requirements for this operation
	Security []map[string][]string `json:"security,omitempty" yaml:"security,omitempty"`

	// Deprecated marks the operation as deprecated
	Deprecated bool `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	// SourceFile is the file this endpoint was extracted from
	SourceFile string `json:"sourceFile,omitempty" yaml:"sourceFile,omitempty"`

	// SourceLine is the line the extraction anchored on
	SourceLine int `json:"sourceLine,omitempty" yaml:"sourceLine,omitempty"`
}

// Parameter represents an operation parameter.
type Parameter struct {
	// Name is the parameter name
	Name string `json:"name" yaml:"name"`

	// In is the parameter location (path, query, header, body)
	In string `json:"in" yaml:"in"`

	// Description is a brief description of the parameter
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Required indicates if the parameter must be supplied
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Schema defines the parameter type
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`

	// Default is the documented default value, when present
	Default any `json:"default,omitempty" yaml:"default,omitempty"`
}

// RequestBody represents an operation request payload.
type RequestBody struct {
	// Description is a brief description of the payload
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Required indicates if the payload must be supplied
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Schema defines the payload structure
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`

	// ContentType is the payload media type (defaults to application/json)
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty"`
}

// Response represents one documented operation response.
type Response struct {
	// StatusCode is the HTTP status code as a string ("200", "default")
	StatusCode string `json:"statusCode" yaml:"statusCode"`

	// Description is a brief description of the response
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Schema defines the response body structure, when documented
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// NamedSchema is a named data-model definition.
type NamedSchema struct {
	// Name is the schema name
	Name string `json:"name" yaml:"name"`

	// Schema is the JSON-Schema-like definition
	Schema *Schema `json:"schema" yaml:"schema"`

	// Description is a brief description of the model
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Component is an auxiliary named definition (security scheme, GraphQL
// scalar, reusable response, and so on).
type Component struct {
	// Name is the component name
	Name string `json:"name" yaml:"name"`

	// Type classifies the component (securityScheme, scalar, response, ...)
	Type string `json:"type" yaml:"type"`

	// Source names the format the component came from
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Definition is the raw component definition
	Definition map[string]any `json:"definition,omitempty" yaml:"definition,omitempty"`
}
