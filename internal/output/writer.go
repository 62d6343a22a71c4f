// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package output renders parse and extract results to YAML or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Writer handles writing results to various outputs.
type Writer struct {
	// Indent specifies the indentation for JSON output (default: 2 spaces)
	Indent int
}

// NewWriter creates a new Writer with default settings.
func NewWriter() *Writer {
	return &Writer{
		Indent: 2,
	}
}

// WriteYAML writes a result as YAML to the given writer.
func (w *Writer) WriteYAML(v any, out io.Writer) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// WriteJSON writes a result as JSON to the given writer.
func (w *Writer) WriteJSON(v any, out io.Writer) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", w.Indent))

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// Write renders v to the given writer in the named format.
func (w *Writer) Write(v any, out io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return w.WriteYAML(v, out)
	case "json":
		return w.WriteJSON(v, out)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteFile writes a result to a file. If format is empty, it is
// inferred from the file extension (defaulting to YAML).
func (w *Writer) WriteFile(v any, path string, format string) error {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			format = "json"
		default:
			format = "yaml"
		}
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return w.Write(v, file, format)
}

// ToYAML returns the YAML representation of a result as a string.
func (w *Writer) ToYAML(v any) (string, error) {
	var buf strings.Builder
	if err := w.WriteYAML(v, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToJSON returns the JSON representation of a result as a string.
func (w *Writer) ToJSON(v any) (string, error) {
	var buf strings.Builder
	if err := w.WriteJSON(v, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
