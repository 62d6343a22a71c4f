// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointID(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   string
	}{
		{
			name:   "simple path",
			method: "GET",
			path:   "/users",
			want:   "GET__users",
		},
		{
			name:   "path parameter",
			method: "get",
			path:   "/users/{id}",
			want:   "GET__users__id_",
		},
		{
			name:   "nested path",
			method: "POST",
			path:   "/api/v1/users",
			want:   "POST__api_v1_users",
		},
		{
			name:   "graphql path",
			method: "POST",
			path:   "/graphql/mutation/createUser",
			want:   "POST__graphql_mutation_createUser",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EndpointID(tt.method, tt.path))
		})
	}
}

func TestExtractInnerType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Promise<User>", "User"},
		{"User[]", "User"},
		{"List[int]", "int"},
		{"Dict[str, int]", "str, int"},
		{"string", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractInnerType(tt.input))
		})
	}
}

func TestGenericBase(t *testing.T) {
	assert.Equal(t, "List", GenericBase("List[int]"))
	assert.Equal(t, "Optional", GenericBase("Optional[str]"))
	assert.Equal(t, "Promise", GenericBase("Promise<User>"))
	assert.Equal(t, "str", GenericBase("str"))
}

func TestSplitCamel(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"UserOrders", []string{"user", "orders"}},
		{"Users", []string{"users"}},
		{"userByID", []string{"user", "by", "i", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCamel(tt.input))
		})
	}
}

func TestEnsureLeadingSlash(t *testing.T) {
	assert.Equal(t, "/users", EnsureLeadingSlash("users"))
	assert.Equal(t, "/users", EnsureLeadingSlash("/users"))
}

func TestInferTags(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "plain segment",
			path: "/users/{id}",
			want: []string{"users"},
		},
		{
			name: "skips api and version prefixes",
			path: "/api/v1/orders",
			want: []string{"orders"},
		},
		{
			name: "skips parameters",
			path: "/{id}/detail",
			want: []string{"detail"},
		},
		{
			name: "nothing left",
			path: "/api/v1",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferTags(tt.path))
		})
	}
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "summary", FirstLine("summary\nrest"))
	assert.Equal(t, "summary", FirstLine("\n\nsummary"))
	assert.Equal(t, "", FirstLine(""))
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Get User Orders", TitleWords("get user orders"))
	assert.Equal(t, "Fetch Order", TitleWords("fetch order"))
	assert.Equal(t, "", TitleWords(""))
}
