// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package scanner provides file discovery for documentation sources.
package scanner

import (
	"path/filepath"
	"strings"
	"time"
)

// SourceFile represents a discovered documentation source file.
type SourceFile struct {
	// Path is the absolute path to the file (or a synthetic name for
	// content/url sources)
	Path string

	// Language is the detected source language ("go", "javascript",
	// "python", "graphql", "yaml", "json")
	Language string

	// Content is the file content
	Content []byte

	// ModTime is the last modification time, when known
	ModTime time.Time
}

// languageExtensions maps file extensions to language identifiers.
var languageExtensions = map[string]string{
	".go":       "go",
	".js":       "javascript",
	".jsx":      "javascript",
	".mjs":      "javascript",
	".cjs":      "javascript",
	".ts":       "typescript",
	".tsx":      "typescript",
	".mts":      "typescript",
	".py":       "python",
	".pyw":      "python",
	".graphql":  "graphql",
	".graphqls": "graphql",
	".gql":      "graphql",
	".yaml":     "yaml",
	".yml":      "yaml",
	".json":     "json",
}

// DetectLanguage detects the source language from a file path.
func DetectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageExtensions[ext]; ok {
		return lang
	}
	return ""
}

// SupportedExtensions returns a list of supported file extensions.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(languageExtensions))
	for ext := range languageExtensions {
		exts = append(exts, ext)
	}
	return exts
}

// IsSupportedFile checks if a file path has a supported extension.
func IsSupportedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := languageExtensions[ext]
	return ok
}
