// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package jsdoc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/docforge/pkg/types"
)

// parseContent runs the parser over inline source text.
func parseContent(t *testing.T, source string) *types.ParseResponse {
	t.Helper()
	return New().Parse(context.Background(), &types.ParseRequest{
		Type:   types.TypeJSDoc,
		Source: types.SourceContent,
		Path:   source,
	})
}

func TestParser_Parse_Route(t *testing.T) {
	resp := parseContent(t, `
/**
 * Get a single user.
 *
 * @route GET /users/{id}
 * @param {string} req.params.id The user id
 * @param {number} [req.query.limit] Optional page size
 * @returns {User} The user record
 * @throws {404} User not found
 */
function getUser(req, res) {}
`)

	require.Equal(t, types.StatusSuccess, resp.Status)
	require.Len(t, resp.AST.Endpoints, 1)

	ep := resp.AST.Endpoints[0]
	assert.Equal(t, "GET", ep.Method)
	assert.Equal(t, "/users/{id}", ep.Path)
	assert.Equal(t, "Get a single user.", ep.Summary)
	assert.Equal(t, []string{"users"}, ep.Tags)

	require.Len(t, ep.Parameters, 2)
	assert.Equal(t, "id", ep.Parameters[0].Name)
	assert.Equal(t, "path", ep.Parameters[0].In)
	assert.True(t, ep.Parameters[0].Required)
	assert.Equal(t, "limit", ep.Parameters[1].Name)
	assert.Equal(t, "query", ep.Parameters[1].In)
	assert.False(t, ep.Parameters[1].Required)

	require.Len(t, ep.Responses, 2)
	assert.Equal(t, "200", ep.Responses[0].StatusCode)
	assert.Equal(t, "User", ep.Responses[0].Schema.Title)
	assert.Equal(t, "404", ep.Responses[1].StatusCode)
	assert.Equal(t, "User not found", ep.Responses[1].Description)
}

func TestParser_Parse_NoRouteTag(t *testing.T) {
	resp := parseContent(t, `
/**
 * A helper with documentation but no route.
 * @param {string} name The name
 */
function helper(name) {}
`)

	require.Equal(t, types.StatusSuccess, resp.Status)
	assert.Empty(t, resp.AST.Endpoints)
	assert.Empty(t, resp.AST.Schemas)
	assert.Equal(t, 1, resp.AST.Metadata["commentCount"])
}

func TestParser_Parse_TypedefWithoutRoute(t *testing.T) {
	resp := parseContent(t, `
/**
 * A user record.
 * @typedef {Object} User
 * @property {string} id The identifier
 * @property {string} [nickname] Optional display name
 * @property {number} age
 */
`)

	require.Equal(t, types.StatusSuccess, resp.Status)
	assert.Empty(t, resp.AST.Endpoints)
	require.Len(t, resp.AST.Schemas, 1)

	schema := resp.AST.Schemas[0]
	assert.Equal(t, "User", schema.Name)
	assert.Equal(t, "object", schema.Schema.Type)
	assert.Equal(t, "string", schema.Schema.Properties["id"].Type)
	assert.Equal(t, "number", schema.Schema.Properties["age"].Type)
	assert.ElementsMatch(t, []string{"id", "age"}, schema.Schema.Required)
	assert.NotContains(t, schema.Schema.Required, "nickname")
}

func TestParser_Parse_MalformedRoute(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			name:   "missing path",
			source: "/**\n * @route\n */",
		},
		{
			name:   "non-canonical verb",
			source: "/**\n * @route FETCH /users\n */",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := parseContent(t, tt.source)

			require.Equal(t, types.StatusSuccess, resp.Status)
			assert.Empty(t, resp.AST.Endpoints)
			require.Len(t, resp.Warnings, 1)
			assert.Equal(t, "PARSE_ERROR", resp.Warnings[0].Code)
		})
	}
}

func TestParser_Parse_Deprecated(t *testing.T) {
	resp := parseContent(t, `
/**
 * @route DELETE /legacy/{id}
 * @deprecated Use /v2 instead
 */
`)

	require.Len(t, resp.AST.Endpoints, 1)
	assert.True(t, resp.AST.Endpoints[0].Deprecated)
}

func TestInferLocation(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"req.params.userId", "path"},
		{"req.query.limit", "query"},
		{"req.body.email", "body"},
		{"req.headers.authorization", "header"},
		{"plain", "query"},
		// "id" substring outranks the query prefix; documented behavior
		{"req.query.id", "path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferLocation(tt.name))
		})
	}
}

func TestMapType(t *testing.T) {
	tests := []struct {
		input     string
		wantType  string
		wantTitle string
	}{
		{"string", "string", ""},
		{"Number", "number", ""},
		{"User", "object", "User"},
		{"User[]", "array", ""},
		{"Promise<string>", "string", ""},
		{"Promise<User[]>", "array", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			schema := mapType(tt.input)
			require.NotNil(t, schema)
			assert.Equal(t, tt.wantType, schema.Type)
			assert.Equal(t, tt.wantTitle, schema.Title)
		})
	}

	assert.Nil(t, mapType(""))
}

func TestTokenize_TagContinuation(t *testing.T) {
	c := tokenize(`
 * Summary line.
 *
 * @param {string} name a description
 *   that continues on the next line
 * @returns {string} done
`)

	assert.Equal(t, "Summary line.", c.description)
	require.Len(t, c.tags, 2)
	assert.Equal(t, "param", c.tags[0].name)
	assert.Contains(t, c.tags[0].value, "continues on the next line")
}
