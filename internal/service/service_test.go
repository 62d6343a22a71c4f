// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/docforge/internal/parsers"
	"github.com/docforge/docforge/pkg/types"
)

// countingParser records invocations and replays canned responses.
type countingParser struct {
	typ       string
	calls     int
	responses []*types.ParseResponse
}

func (c *countingParser) Type() string {
	return c.typ
}

func (c *countingParser) Extensions() []string {
	return []string{".yaml", ".json"}
}

func (c *countingParser) CanParse(req *types.ParseRequest) bool {
	return parsers.CanParseDefault(c, req)
}

func (c *countingParser) Parse(ctx context.Context, req *types.ParseRequest) *types.ParseResponse {
	idx := c.calls
	if idx >= len(c.responses) {
		idx = len(c.responses) - 1
	}
	c.calls++
	return c.responses[idx]
}

func successResponse() *types.ParseResponse {
	return &types.ParseResponse{
		Status: types.StatusSuccess,
		AST: &types.AST{
			Endpoints: []types.Endpoint{
				{ID: "GET__users", Path: "/users", Method: "GET", Tags: []string{"users"}},
				{ID: "POST__users", Path: "/users", Method: "POST", Tags: []string{"users"}},
				{ID: "GET__orders__id_", Path: "/orders/{id}", Method: "GET", Tags: []string{"orders"}},
			},
			Schemas:  []types.NamedSchema{{Name: "User"}},
			Metadata: map[string]any{"specVersion": "3.0.3"},
		},
		Metadata: types.ParseMetadata{SourceType: types.TypeOpenAPI, EndpointCount: 3, SchemaCount: 1},
	}
}

func TestService_Parse_RequestValidation(t *testing.T) {
	svc := New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	tests := []struct {
		name     string
		req      *types.ParseRequest
		wantCode string
	}{
		{
			name:     "nil request",
			req:      nil,
			wantCode: parsers.CodeMissingType,
		},
		{
			name:     "missing type",
			req:      &types.ParseRequest{Source: types.SourceFile, Path: "x.yaml"},
			wantCode: parsers.CodeMissingType,
		},
		{
			name:     "missing source",
			req:      &types.ParseRequest{Type: types.TypeOpenAPI, Path: "x.yaml"},
			wantCode: parsers.CodeMissingSource,
		},
		{
			name:     "missing path",
			req:      &types.ParseRequest{Type: types.TypeOpenAPI, Source: types.SourceFile},
			wantCode: parsers.CodeMissingPath,
		},
		{
			name:     "unknown type",
			req:      &types.ParseRequest{Type: "asciidoc", Source: types.SourceFile, Path: "x"},
			wantCode: parsers.CodeInvalidType,
		},
		{
			name:     "unknown source",
			req:      &types.ParseRequest{Type: types.TypeOpenAPI, Source: "ftp", Path: "x"},
			wantCode: parsers.CodeInvalidSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := svc.Parse(context.Background(), tt.req)
			require.Equal(t, types.StatusFailed, resp.Status)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tt.wantCode, resp.Errors[0].Code)
		})
	}
}

func TestService_Parse_ParserNotFound(t *testing.T) {
	svc := New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	// Type is registered, but the extension check rejects the file
	resp := svc.Parse(context.Background(), &types.ParseRequest{
		Type:   types.TypeOpenAPI,
		Source: types.SourceFile,
		Path:   "notes.py",
	})

	require.Equal(t, types.StatusFailed, resp.Status)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, parsers.CodeParserNotFound, resp.Errors[0].Code)
}

func TestService_Parse_CachesSuccess(t *testing.T) {
	mock := &countingParser{typ: types.TypeOpenAPI, responses: []*types.ParseResponse{successResponse()}}
	svc := New(
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithParser(types.TypeOpenAPI, func() (parsers.Parser, error) { return mock, nil }),
	)

	req := &types.ParseRequest{Type: types.TypeOpenAPI, Source: types.SourceContent, Path: "{}"}

	first := svc.Parse(context.Background(), req)
	require.Equal(t, types.StatusSuccess, first.Status)
	assert.NotEmpty(t, first.ParseID)
	assert.Equal(t, 1, mock.calls)

	second := svc.Parse(context.Background(), req)
	assert.Equal(t, 1, mock.calls, "second call must be served from cache")
	assert.Equal(t, first.ParseID, second.ParseID)
	assert.Equal(t, first.AST, second.AST)
}

func TestService_Parse_DistinctRequestsMiss(t *testing.T) {
	mock := &countingParser{typ: types.TypeOpenAPI, responses: []*types.ParseResponse{successResponse()}}
	svc := New(
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithParser(types.TypeOpenAPI, func() (parsers.Parser, error) { return mock, nil }),
	)

	svc.Parse(context.Background(), &types.ParseRequest{
		Type: types.TypeOpenAPI, Source: types.SourceContent, Path: "{}"})
	svc.Parse(context.Background(), &types.ParseRequest{
		Type: types.TypeOpenAPI, Source: types.SourceContent, Path: `{"a":1}`})

	assert.Equal(t, 2, mock.calls)
}

func TestService_Parse_FailuresNotCached(t *testing.T) {
	failed := parsers.FailedResponse(types.TypeOpenAPI,
		parsers.NewParseError(parsers.CodeInvalidDocument, "bad input"))
	mock := &countingParser{
		typ:       types.TypeOpenAPI,
		responses: []*types.ParseResponse{failed, successResponse()},
	}
	svc := New(
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithParser(types.TypeOpenAPI, func() (parsers.Parser, error) { return mock, nil }),
	)

	req := &types.ParseRequest{Type: types.TypeOpenAPI, Source: types.SourceContent, Path: "{}"}

	first := svc.Parse(context.Background(), req)
	require.Equal(t, types.StatusFailed, first.Status)

	second := svc.Parse(context.Background(), req)
	assert.Equal(t, types.StatusSuccess, second.Status)
	assert.Equal(t, 2, mock.calls, "failed result must not be replayed from cache")
}

func TestService_Parse_SkipsBrokenDescriptor(t *testing.T) {
	svc := New(
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithParser("broken", func() (parsers.Parser, error) {
			return nil, assert.AnError
		}),
	)

	// The broken entry is skipped; the defaults still register
	names := svc.Parsers()
	assert.NotContains(t, names, "broken")
	assert.Contains(t, names, types.TypeOpenAPI)
	assert.Contains(t, names, types.TypeGraphQL)
	assert.Len(t, names, 5)
}

func TestService_Parsers(t *testing.T) {
	svc := New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	assert.Equal(t, []string{
		types.TypeGoDoc,
		types.TypeGraphQL,
		types.TypeJSDoc,
		types.TypeOpenAPI,
		types.TypePythonDocstring,
	}, svc.Parsers())

	assert.Contains(t, svc.ParserExtensions(types.TypeGoDoc), ".go")
	assert.Nil(t, svc.ParserExtensions("nope"))
}

func TestService_ClearCache(t *testing.T) {
	mock := &countingParser{typ: types.TypeOpenAPI, responses: []*types.ParseResponse{successResponse()}}
	svc := New(
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithParser(types.TypeOpenAPI, func() (parsers.Parser, error) { return mock, nil }),
	)

	req := &types.ParseRequest{Type: types.TypeOpenAPI, Source: types.SourceContent, Path: "{}"}
	svc.Parse(context.Background(), req)
	assert.Equal(t, 2, svc.CacheSize())

	svc.ClearCache()
	assert.Equal(t, 0, svc.CacheSize())

	svc.Parse(context.Background(), req)
	assert.Equal(t, 2, mock.calls)
}
