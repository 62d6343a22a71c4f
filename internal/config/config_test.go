// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/docforge/pkg/types"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, types.TypeOpenAPI, cfg.Parser)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Empty(t, cfg.Output)
	assert.Equal(t, []string{"."}, cfg.Source.Paths)
	assert.Contains(t, cfg.Source.Exclude, "vendor/**")
	assert.Contains(t, cfg.Source.Exclude, "node_modules/**")
	assert.True(t, cfg.Source.Recursive)
	assert.True(t, cfg.Parse.ValidateSchema)
	assert.True(t, cfg.Parse.ResolveRefs)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, 500, cfg.Watch.Debounce)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docforge.yaml")
	content := `parser: graphql
format: json
source:
  paths:
    - ./schema
  recursive: false
watch:
  enabled: true
  debounce: 250
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, types.TypeGraphQL, cfg.Parser)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, []string{"./schema"}, cfg.Source.Paths)
	assert.False(t, cfg.Source.Recursive)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 250, cfg.Watch.Debounce)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Unset keys keep their defaults
	assert.True(t, cfg.Parse.ValidateSchema)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parser: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".docforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parser: jsdoc\n"), 0o644))

	cfg, err := LoadFromPath(dir)
	require.NoError(t, err)
	assert.Equal(t, types.TypeJSDoc, cfg.Parser)

	cfg, err = LoadFromPath(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "unknown parser",
			mutate:    func(c *Config) { c.Parser = "asciidoc" },
			wantField: "parser",
		},
		{
			name:      "unknown format",
			mutate:    func(c *Config) { c.Format = "toml" },
			wantField: "format",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Log.Level = "trace" },
			wantField: "log.level",
		},
		{
			name:      "negative debounce",
			mutate:    func(c *Config) { c.Watch.Debounce = -1 },
			wantField: "watch.debounce",
		},
		{
			name:      "no source paths",
			mutate:    func(c *Config) { c.Source.Paths = nil },
			wantField: "source.paths",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var errs ValidationErrors
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}

func TestConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Parser = "asciidoc"
	cfg.Format = "toml"
	cfg.Watch.Debounce = -5

	err := cfg.Validate()
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
	assert.Contains(t, err.Error(), "parser")
	assert.Contains(t, err.Error(), "format")
}
