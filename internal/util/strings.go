// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package util provides shared string helpers across parsers.
package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nonAlnumRegex matches a single non-alphanumeric character.
var nonAlnumRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)

// EndpointID derives a stable endpoint identifier from a method and path.
// The identifier is METHOD_path with every non-alphanumeric character
// replaced by an underscore, so ("GET", "/users/{id}") becomes
// "GET__users__id_".
func EndpointID(method, path string) string {
	return nonAlnumRegex.ReplaceAllString(strings.ToUpper(method)+"_"+path, "_")
}

// TitleWords title-cases every word of s: "get user orders" becomes
// "Get User Orders". Parsers use it to synthesize readable summaries
// from handler names. A fresh Caser per call; Casers are stateful and
// not goroutine-safe.
func TitleWords(s string) string {
	return cases.Title(language.English).String(s)
}

// ExtractInnerType extracts the inner type from a generic or array type.
// For example: "Promise<User>" returns "User", "User[]" returns "User",
// "List[int]" returns "int".
func ExtractInnerType(t string) string {
	if strings.HasSuffix(t, "[]") {
		return strings.TrimSuffix(t, "[]")
	}

	for _, pair := range [][2]string{{"<", ">"}, {"[", "]"}} {
		start := strings.Index(t, pair[0])
		end := strings.LastIndex(t, pair[1])
		if start != -1 && end != -1 && end > start {
			return strings.TrimSpace(t[start+1 : end])
		}
	}

	return t
}

// GenericBase strips a generic parameter list from a type name.
// "List[int]" becomes "List", "Dict[str, int]" becomes "Dict".
func GenericBase(t string) string {
	if idx := strings.IndexAny(t, "[<"); idx > 0 {
		return t[:idx]
	}
	return t
}

// EnsureLeadingSlash prefixes s with "/" when missing.
func EnsureLeadingSlash(s string) string {
	if !strings.HasPrefix(s, "/") {
		return "/" + s
	}
	return s
}

// SplitCamel splits a CamelCase or mixedCase identifier into its
// lowercase words: "UserOrders" becomes ["user", "orders"].
func SplitCamel(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r >= 'A' && r <= 'Z' && i > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		words = append(words, strings.ToLower(current.String()))
	}

	return words
}

// skipPrefixes are path segments ignored when inferring tags.
var skipPrefixes = map[string]bool{
	"api": true,
	"v1":  true,
	"v2":  true,
	"v3":  true,
}

// InferTags infers grouping tags from a route path: the first path
// segment that is neither a version/api prefix nor a parameter.
func InferTags(path string) []string {
	path = strings.TrimPrefix(path, "/")

	for _, part := range strings.Split(path, "/") {
		if part == "" || skipPrefixes[part] {
			continue
		}
		if strings.HasPrefix(part, "{") {
			continue
		}
		return []string{part}
	}

	return nil
}

// FirstLine returns the first non-empty line of s, trimmed.
func FirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
