// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package graphql

import (
	"strings"

	"github.com/docforge/docforge/pkg/types"
)

// Type reference kinds, mirroring the GraphQL introspection model.
const (
	kindScalar  = "SCALAR"
	kindObject  = "OBJECT"
	kindList    = "LIST"
	kindNonNull = "NON_NULL"
)

// builtinScalars is the fixed scalar set; any other base name is an
// object reference.
var builtinScalars = map[string]bool{
	"String":       true,
	"Int":          true,
	"Float":        true,
	"Boolean":      true,
	"ID":           true,
	"DateTime":     true,
	"EmailAddress": true,
}

// typeRef is one parsed SDL type expression. NON_NULL and LIST
// wrappers nest via ofType; SCALAR and OBJECT terminate the chain.
type typeRef struct {
	kind   string
	name   string
	ofType *typeRef
}

// parseTypeRef parses an SDL type string such as "[String!]!" into its
// wrapper chain.
func parseTypeRef(s string) *typeRef {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if strings.HasSuffix(s, "!") {
		return &typeRef{kind: kindNonNull, ofType: parseTypeRef(strings.TrimSuffix(s, "!"))}
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return &typeRef{kind: kindList, ofType: parseTypeRef(s[1 : len(s)-1])}
	}

	if builtinScalars[s] {
		return &typeRef{kind: kindScalar, name: s}
	}
	return &typeRef{kind: kindObject, name: s}
}

// isNonNull reports whether the outermost wrapper is NON_NULL.
func (t *typeRef) isNonNull() bool {
	return t != nil && t.kind == kindNonNull
}

// unwrap strips NON_NULL wrappers.
func (t *typeRef) unwrap() *typeRef {
	for t != nil && t.kind == kindNonNull {
		t = t.ofType
	}
	return t
}

// baseName returns the named type at the bottom of the wrapper chain.
func (t *typeRef) baseName() string {
	for t != nil {
		if t.name != "" {
			return t.name
		}
		t = t.ofType
	}
	return ""
}

// toSchema converts the reference into a JSON schema. Object types
// become component references so consumers can resolve them against
// the extracted type definitions.
func (t *typeRef) toSchema() *types.Schema {
	t = t.unwrap()
	if t == nil {
		return nil
	}

	switch t.kind {
	case kindList:
		return &types.Schema{Type: "array", Items: t.ofType.toSchema()}
	case kindObject:
		return &types.Schema{Ref: "#/components/schemas/" + t.name}
	}

	switch t.name {
	case "Int":
		return &types.Schema{Type: "integer"}
	case "Float":
		return &types.Schema{Type: "number"}
	case "Boolean":
		return &types.Schema{Type: "boolean"}
	case "DateTime":
		return &types.Schema{Type: "string", Format: "date-time"}
	case "EmailAddress":
		return &types.Schema{Type: "string", Format: "email"}
	default: // String, ID
		return &types.Schema{Type: "string"}
	}
}
