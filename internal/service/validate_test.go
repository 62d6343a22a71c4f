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

func TestService_Validate_UnknownParseID(t *testing.T) {
	svc := New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	_, err := svc.Validate(&types.ValidationRequest{ParseID: "deadbeef"})
	require.Error(t, err)
	assert.Equal(t, parsers.CodeParseNotFound, parsers.AsParseError(err).Code)

	_, err = svc.Validate(nil)
	require.Error(t, err)
	assert.Equal(t, parsers.CodeParseNotFound, parsers.AsParseError(err).Code)
}

func TestService_Validate_DelegatesToParser(t *testing.T) {
	svc := New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	// The GraphQL parser implements its own rules, so a path outside
	// /graphql/ must be flagged by the parser-specific check.
	resp := svc.Parse(context.Background(), &types.ParseRequest{
		Type:   types.TypeGraphQL,
		Source: types.SourceContent,
		Path:   "type Query {\n  user(id: ID!): User\n}\n\ntype User {\n  id: ID!\n}\n",
	})
	require.Equal(t, types.StatusSuccess, resp.Status)

	result, err := svc.Validate(&types.ValidationRequest{ParseID: resp.ParseID})
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = svc.Validate(&types.ValidationRequest{
		ParseID: resp.ParseID,
		Rules:   []string{"operation-path"},
	})
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestService_Validate_GenericFallback(t *testing.T) {
	// The counting mock does not implement validation, so the generic
	// structural checks run against its cached AST.
	svc, parseID := parsedService(t)

	result, err := svc.Validate(&types.ValidationRequest{ParseID: parseID})
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Violations)
}

func TestGenericValidate(t *testing.T) {
	tests := []struct {
		name      string
		ast       *types.AST
		wantValid bool
		wantRule  string
	}{
		{
			name: "clean",
			ast: &types.AST{Endpoints: []types.Endpoint{
				{ID: "GET__users", Path: "/users", Method: "GET"},
			}},
			wantValid: true,
		},
		{
			name: "path missing leading slash",
			ast: &types.AST{Endpoints: []types.Endpoint{
				{ID: "GET_users", Path: "users", Method: "GET"},
			}},
			wantValid: false,
			wantRule:  "path-format",
		},
		{
			name: "non-canonical method",
			ast: &types.AST{Endpoints: []types.Endpoint{
				{ID: "FETCH__users", Path: "/users", Method: "FETCH"},
			}},
			wantValid: false,
			wantRule:  "canonical-method",
		},
		{
			name: "duplicate endpoint ids",
			ast: &types.AST{Endpoints: []types.Endpoint{
				{ID: "GET__users", Path: "/users", Method: "GET"},
				{ID: "GET__users", Path: "/users", Method: "GET"},
			}},
			wantValid: false,
			wantRule:  "unique-endpoint-ids",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := genericValidate(tt.ast)
			assert.Equal(t, tt.wantValid, result.Valid)
			if tt.wantRule != "" {
				require.NotEmpty(t, result.Violations)
				assert.Equal(t, tt.wantRule, result.Violations[0].Rule)
			}
		})
	}
}
