// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package parsers

import (
	"errors"
	"fmt"

	"github.com/docforge/docforge/pkg/types"
)

// ParseError codes. Parsers and the service attach exactly one of these
// to every failure they report.
const (
	CodeMissingType       = "MISSING_TYPE"
	CodeMissingSource     = "MISSING_SOURCE"
	CodeMissingPath       = "MISSING_PATH"
	CodeInvalidType       = "INVALID_TYPE"
	CodeInvalidSource     = "INVALID_SOURCE"
	CodeUnsupportedSource = "UNSUPPORTED_SOURCE"
	CodeNotImplemented    = "NOT_IMPLEMENTED"
	CodeInvalidDocument   = "INVALID_DOCUMENT"
	CodeMissingInfo       = "MISSING_INFO"
	CodeMissingInfoFields = "MISSING_INFO_FIELDS"
	CodeMissingPaths      = "MISSING_PATHS"
	CodeParserNotFound    = "PARSER_NOT_FOUND"
	CodeParseNotFound     = "PARSE_NOT_FOUND"
	CodeFileReadError     = "FILE_READ_ERROR"
	CodeURLFetchError     = "URL_FETCH_ERROR"
	CodeParseError        = "PARSE_ERROR"
)

// ParseError is the domain error of the parser subsystem. It carries a
// machine-readable code, an optional source location, and optional
// free-form details.
type ParseError struct {
	// Code is one of the Code* constants
	Code string

	// Message is a human-readable description
	Message string

	// Location points at the offending input, when known
	Location *types.Location

	// Details carries optional structured context
	Details map[string]any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Location != nil && e.Location.File != "" {
		return fmt.Sprintf("%s: %s (%s:%d)", e.Code, e.Message, e.Location.File, e.Location.Line)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewParseError creates a ParseError with the given code and message.
func NewParseError(code, message string) *ParseError {
	return &ParseError{Code: code, Message: message}
}

// WithLocation attaches a source location to the error.
func (e *ParseError) WithLocation(file string, line, column int) *ParseError {
	e.Location = &types.Location{File: file, Line: line, Column: column}
	return e
}

// WithDetail attaches one structured detail to the error.
func (e *ParseError) WithDetail(key string, value any) *ParseError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// AsParseError unwraps err into a ParseError. Errors that are not
// ParseErrors are wrapped under the catch-all PARSE_ERROR code.
func AsParseError(err error) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	return NewParseError(CodeParseError, err.Error())
}

// Issue converts the error into a response issue entry.
func (e *ParseError) Issue() types.Issue {
	return types.Issue{
		Code:     e.Code,
		Message:  e.Message,
		Location: e.Location,
	}
}

// FailedResponse builds a failed ParseResponse carrying err as its single
// error entry. Parsers use this to honor the contract that Parse never
// propagates exceptions to the caller.
func FailedResponse(sourceType string, err error) *types.ParseResponse {
	pe := AsParseError(err)
	return &types.ParseResponse{
		Status:   types.StatusFailed,
		Metadata: types.ParseMetadata{SourceType: sourceType},
		Errors:   []types.Issue{pe.Issue()},
	}
}
