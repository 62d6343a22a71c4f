// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Name  string   `yaml:"name" json:"name"`
	Count int      `yaml:"count" json:"count"`
	Tags  []string `yaml:"tags" json:"tags"`
}

func testValue() sample {
	return sample{Name: "users", Count: 2, Tags: []string{"a", "b"}}
}

func TestWriter_ToYAML(t *testing.T) {
	out, err := NewWriter().ToYAML(testValue())
	require.NoError(t, err)

	var got sample
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, testValue(), got)
	assert.Contains(t, out, "name: users")
}

func TestWriter_ToJSON(t *testing.T) {
	w := NewWriter()

	out, err := w.ToJSON(testValue())
	require.NoError(t, err)

	var got sample
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, testValue(), got)

	// Indented with the configured width
	assert.Contains(t, out, "\n  \"name\"")
}

func TestWriter_Write(t *testing.T) {
	w := NewWriter()

	var buf strings.Builder
	require.NoError(t, w.Write(testValue(), &buf, "json"))
	assert.Contains(t, buf.String(), `"users"`)

	buf.Reset()
	require.NoError(t, w.Write(testValue(), &buf, "YML"))
	assert.Contains(t, buf.String(), "name: users")

	err := w.Write(testValue(), &strings.Builder{}, "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestWriter_WriteFile(t *testing.T) {
	w := NewWriter()
	dir := t.TempDir()

	t.Run("format inferred from extension", func(t *testing.T) {
		path := filepath.Join(dir, "out.json")
		require.NoError(t, w.WriteFile(testValue(), path, ""))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var got sample
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, testValue(), got)
	})

	t.Run("unknown extension defaults to yaml", func(t *testing.T) {
		path := filepath.Join(dir, "out.txt")
		require.NoError(t, w.WriteFile(testValue(), path, ""))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "name: users")
	})

	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "deep", "out.yaml")
		require.NoError(t, w.WriteFile(testValue(), path, "yaml"))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})
}
