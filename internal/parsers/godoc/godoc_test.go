// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package godoc

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
		Type:   types.TypeGoDoc,
		Source: types.SourceContent,
		Path:   source,
	})
}

func TestParser_Parse_ExplicitRoute(t *testing.T) {
	resp := parseContent(t, `package api

// HandleUserLookup returns a single user by id.
//
// Route: GET /users/{id}
//
// Parameters:
//   id string - the user identifier
//   verbose bool - optional detail flag
//
// Responses:
//   200: the user record
//   404: user not found
func HandleUserLookup(w http.ResponseWriter, r *http.Request) {}
`)

	require.Equal(t, types.StatusSuccess, resp.Status)
	require.Len(t, resp.AST.Endpoints, 1)

	ep := resp.AST.Endpoints[0]
	assert.Equal(t, "GET", ep.Method)
	assert.Equal(t, "/users/{id}", ep.Path)
	assert.Equal(t, "HandleUserLookup returns a single user by id.", ep.Summary)
	assert.Equal(t, []string{"users"}, ep.Tags)

	require.Len(t, ep.Parameters, 2)
	assert.Equal(t, "id", ep.Parameters[0].Name)
	assert.Equal(t, "path", ep.Parameters[0].In)
	assert.True(t, ep.Parameters[0].Required)
	assert.Equal(t, "string", ep.Parameters[0].Schema.Type)
	assert.Equal(t, "verbose", ep.Parameters[1].Name)
	assert.Equal(t, "query", ep.Parameters[1].In)
	assert.False(t, ep.Parameters[1].Required)

	require.Len(t, ep.Responses, 2)
	assert.Equal(t, "200", ep.Responses[0].StatusCode)
	assert.Equal(t, "404", ep.Responses[1].StatusCode)
}

func TestParser_Parse_ConventionRoutes(t *testing.T) {
	tests := []struct {
		source     string
		wantMethod string
		wantPath   string
	}{
		{"// GetUsers lists users.\nfunc GetUsers() {}\n", "GET", "/api/users"},
		{"// ListOrders lists orders.\nfunc ListOrders() {}\n", "GET", "/api/orders"},
		{"// CreateUser makes a user.\nfunc CreateUser() {}\n", "POST", "/api/user"},
		{"// UpdateUserProfile edits a profile.\nfunc UpdateUserProfile() {}\n", "PUT", "/api/user/profile"},
		{"// DeleteSession removes a session.\nfunc DeleteSession() {}\n", "DELETE", "/api/session"},
	}

	for _, tt := range tests {
		t.Run(tt.wantPath, func(t *testing.T) {
			resp := parseContent(t, tt.source)

			require.Len(t, resp.AST.Endpoints, 1)
			assert.Equal(t, tt.wantMethod, resp.AST.Endpoints[0].Method)
			assert.Equal(t, tt.wantPath, resp.AST.Endpoints[0].Path)
		})
	}
}

func TestParser_Parse_NoRoute(t *testing.T) {
	resp := parseContent(t, `
// helper does internal work.
func helper() {}

// GetterFunc is not a route despite the prefix.
func GetterFunc() {}
`)

	require.Equal(t, types.StatusSuccess, resp.Status)
	assert.Empty(t, resp.AST.Endpoints)
	assert.Equal(t, 2, resp.AST.Metadata["documentedFuncs"])
}

func TestParser_Parse_Deprecated(t *testing.T) {
	resp := parseContent(t, `
// GetLegacy serves the old payload.
//
// Deprecated: use GetUsers instead.
func GetLegacy() {}
`)

	require.Len(t, resp.AST.Endpoints, 1)
	assert.True(t, resp.AST.Endpoints[0].Deprecated)
	assert.NotContains(t, resp.AST.Endpoints[0].Description, "Deprecated:")
}

func TestParser_Parse_StructSchema(t *testing.T) {
	resp := parseContent(t, `
// User is a stored account record.
type User struct {
	ID        string    `+"`json:\"id\"`"+`
	Email     string    `+"`json:\"email\"`"+`   // contact address
	Age       int       `+"`json:\"age,omitempty\"`"+`
	CreatedAt time.Time `+"`json:\"createdAt\"`"+`
	Internal  string    `+"`json:\"-\"`"+`
	Labels    []string  `+"`json:\"labels\"`"+`
}
`)

	require.Equal(t, types.StatusSuccess, resp.Status)
	require.Len(t, resp.AST.Schemas, 1)

	schema := resp.AST.Schemas[0]
	assert.Equal(t, "User", schema.Name)
	assert.Equal(t, "User is a stored account record.", schema.Description)

	props := schema.Schema.Properties
	assert.Equal(t, "string", props["id"].Type)
	assert.Equal(t, "contact address", props["email"].Description)
	assert.Equal(t, "integer", props["age"].Type)
	assert.Equal(t, "date-time", props["createdAt"].Format)
	assert.Equal(t, "array", props["labels"].Type)
	assert.NotContains(t, props, "Internal")

	assert.Contains(t, schema.Schema.Required, "id")
	assert.NotContains(t, schema.Schema.Required, "age")
}

func TestInferRoute(t *testing.T) {
	method, path := inferRoute("GetUsers", "")
	assert.Equal(t, "GET", method)
	assert.Equal(t, "/api/users", path)

	method, path = inferRoute("Anything", "Route: POST /custom/path")
	assert.Equal(t, "POST", method)
	assert.Equal(t, "/custom/path", path)

	method, _ = inferRoute("Getter", "")
	assert.Empty(t, method)

	method, _ = inferRoute("helper", "")
	assert.Empty(t, method)
}

func TestMapGoType(t *testing.T) {
	tests := []struct {
		input    string
		wantType string
	}{
		{"string", "string"},
		{"int64", "integer"},
		{"float64", "number"},
		{"bool", "boolean"},
		{"*string", "string"},
		{"[]int", "array"},
		{"map[string]any", "object"},
		{"time.Time", "string"},
		{"CustomType", "object"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			schema := mapGoType(tt.input)
			require.NotNil(t, schema)
			assert.Equal(t, tt.wantType, schema.Type)
		})
	}

	assert.Nil(t, mapGoType(""))
	assert.Equal(t, "integer", mapGoType("[]int").Items.Type)
}

func TestParser_Parse_SummaryFallback(t *testing.T) {
	resp := parseContent(t, `
// Route: GET /orders/{id}
func FetchOrder() {}
`)

	require.Equal(t, types.StatusSuccess, resp.Status)
	require.Len(t, resp.AST.Endpoints, 1)

	// No doc text beyond the route line, so the summary is derived
	// from the function name
	ep := resp.AST.Endpoints[0]
	assert.Equal(t, "/orders/{id}", ep.Path)
	assert.Equal(t, "Fetch Order", ep.Summary)
}
