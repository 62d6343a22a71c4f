// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// Schema represents a JSON-Schema-like type definition.
// It is the common denominator the five source type systems are
// normalized into.
type Schema struct {
	// Ref is a reference to another schema ($ref)
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	// Type is the data type (string, number, integer, boolean, array, object)
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Format is the data format (date-time, email, uuid, etc.)
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Title is a short title for the schema
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Description is a detailed description of the schema
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Default is the default value
	Default any `json:"default,omitempty" yaml:"default,omitempty"`

	// Example is an example value
	Example any `json:"example,omitempty" yaml:"example,omitempty"`

	// Enum is a list of allowed values
	Enum []any `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Nullable indicates if the value can be null
	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	// Deprecated indicates the schema is deprecated
	Deprecated bool `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	// Items is the schema for array items
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Properties maps property names to their schemas
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`

	// Required is a list of required property names
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`

	// AdditionalProperties defines the schema for additional properties
	AdditionalProperties *Schema `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// AllOf is a list of schemas that must all be valid
	AllOf []*Schema `json:"allOf,omitempty" yaml:"allOf,omitempty"`

	// OneOf is a list of schemas where exactly one must be valid
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`

	// AnyOf is a list of schemas where at least one must be valid
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`

	// Pattern is a regex pattern for string validation
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Minimum is the minimum numeric value
	Minimum *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`

	// Maximum is the maximum numeric value
	Maximum *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`

	// MinLength is the minimum string length
	MinLength *int `json:"minLength,omitempty" yaml:"minLength,omitempty"`

	// MaxLength is the maximum string length
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
}
