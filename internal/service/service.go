// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package service provides the parser facade: request validation,
// parser dispatch through the registry, and result caching keyed by
// request fingerprint and parse id.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/docforge/docforge/internal/cache"
	"github.com/docforge/docforge/internal/parsers"
	"github.com/docforge/docforge/internal/parsers/godoc"
	"github.com/docforge/docforge/internal/parsers/graphql"
	"github.com/docforge/docforge/internal/parsers/jsdoc"
	"github.com/docforge/docforge/internal/parsers/openapi"
	"github.com/docforge/docforge/internal/parsers/pydoc"
	"github.com/docforge/docforge/pkg/types"
)

// Cache key prefixes. Successful results are stored twice: once under
// the request fingerprint for idempotent re-parses, once under the
// parse id for extract/validate lookups.
const (
	requestKeyPrefix = "req:"
	parseKeyPrefix   = "id:"
)

// descriptor binds a parser type to its constructor. Construction
// failures are logged and skip only that entry.
type descriptor struct {
	typ       string
	construct func() (parsers.Parser, error)
}

// defaultDescriptors lists the parsers the service registers on first use.
var defaultDescriptors = []descriptor{
	{types.TypeOpenAPI, func() (parsers.Parser, error) { return openapi.New(), nil }},
	{types.TypeJSDoc, func() (parsers.Parser, error) { return jsdoc.New(), nil }},
	{types.TypePythonDocstring, func() (parsers.Parser, error) { return pydoc.New(), nil }},
	{types.TypeGoDoc, func() (parsers.Parser, error) { return godoc.New(), nil }},
	{types.TypeGraphQL, func() (parsers.Parser, error) { return graphql.New(), nil }},
}

// Service is the parser facade. The registry is populated lazily on
// first use; concurrent first calls share one initialization.
type Service struct {
	registry    *parsers.Registry
	cache       cache.Cache
	logger      *slog.Logger
	descriptors []descriptor
	initOnce    sync.Once
}

// Option configures a Service.
type Option func(*Service)

// WithCache replaces the default in-memory cache.
func WithCache(c cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithParser appends an extra parser descriptor to the registration
// table. Registered after the defaults, so it wins on type collision.
func WithParser(typ string, construct func() (parsers.Parser, error)) Option {
	return func(s *Service) {
		s.descriptors = append(s.descriptors, descriptor{typ: typ, construct: construct})
	}
}

// New creates a Service. The parser registry is not populated until
// the first call that needs it.
func New(opts ...Option) *Service {
	s := &Service{
		registry:    parsers.NewRegistry(),
		cache:       cache.NewMemory(),
		logger:      slog.Default(),
		descriptors: defaultDescriptors,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ensureInit populates the registry exactly once. A descriptor whose
// constructor fails is logged and omitted; the rest still register.
func (s *Service) ensureInit() {
	s.initOnce.Do(func() {
		for _, d := range s.descriptors {
			p, err := d.construct()
			if err != nil {
				s.logger.Warn("skipping parser", "type", d.typ, "error", err)
				continue
			}
			if err := s.registry.Register(p); err != nil {
				s.logger.Warn("skipping parser", "type", d.typ, "error", err)
				continue
			}
			s.logger.Debug("registered parser", "type", d.typ)
		}
	})
}

// Parse validates the request, dispatches it to the matching parser,
// and caches successful results. It never returns an error: failures
// surface as a failed response with coded error entries.
func (s *Service) Parse(ctx context.Context, req *types.ParseRequest) *types.ParseResponse {
	if err := validateRequest(req); err != nil {
		return parsers.FailedResponse("", err)
	}

	s.ensureInit()

	fp := fingerprint(req)
	if cached, ok := s.cache.Get(requestKeyPrefix + fp); ok {
		if resp, ok := cached.(*types.ParseResponse); ok {
			s.logger.Debug("cache hit", "type", req.Type, "parseId", resp.ParseID)
			return resp
		}
	}

	parser := s.registry.FindParser(req)
	if parser == nil {
		return parsers.FailedResponse(req.Type, parsers.NewParseError(
			parsers.CodeParserNotFound,
			fmt.Sprintf("no parser accepts type %q with source %q path %q", req.Type, req.Source, req.Path)))
	}

	start := time.Now()
	resp := parser.Parse(ctx, req)
	resp.Metadata.ParseTime = time.Since(start).Seconds()
	resp.ParseID = fp[:16]

	// Partial and failed results stay uncached so retries can succeed
	if resp.Status == types.StatusSuccess {
		s.cache.Set(requestKeyPrefix+fp, resp)
		s.cache.Set(parseKeyPrefix+resp.ParseID, resp)
	}

	s.logger.Info("parsed",
		"type", req.Type,
		"source", req.Source,
		"status", resp.Status,
		"endpoints", resp.Metadata.EndpointCount,
		"schemas", resp.Metadata.SchemaCount,
		"parseTime", resp.Metadata.ParseTime)

	return resp
}

// Parsers returns the sorted type identifiers of all registered parsers.
func (s *Service) Parsers() []string {
	s.ensureInit()
	return s.registry.List()
}

// ParserExtensions returns the extensions of one registered parser.
func (s *Service) ParserExtensions(typ string) []string {
	s.ensureInit()
	p := s.registry.Get(typ)
	if p == nil {
		return nil
	}
	return p.Extensions()
}

// ClearCache drops every cached parse result.
func (s *Service) ClearCache() {
	s.cache.Clear()
}

// CacheSize returns the number of cached entries.
func (s *Service) CacheSize() int {
	return s.cache.Len()
}

// lookup fetches a cached parse result by parse id.
func (s *Service) lookup(parseID string) (*types.ParseResponse, *parsers.ParseError) {
	cached, ok := s.cache.Get(parseKeyPrefix + parseID)
	if !ok {
		return nil, parsers.NewParseError(parsers.CodeParseNotFound,
			fmt.Sprintf("no cached parse result for id %q", parseID))
	}
	resp, ok := cached.(*types.ParseResponse)
	if !ok || resp.AST == nil {
		return nil, parsers.NewParseError(parsers.CodeParseNotFound,
			fmt.Sprintf("cached entry for id %q carries no AST", parseID))
	}
	return resp, nil
}

// validateRequest checks the request shape before dispatch.
func validateRequest(req *types.ParseRequest) *parsers.ParseError {
	switch {
	case req == nil || req.Type == "":
		return parsers.NewParseError(parsers.CodeMissingType, "request type is required")
	case req.Source == "":
		return parsers.NewParseError(parsers.CodeMissingSource, "request source is required")
	case req.Path == "":
		return parsers.NewParseError(parsers.CodeMissingPath, "request path is required")
	case !types.IsKnownType(req.Type):
		return parsers.NewParseError(parsers.CodeInvalidType,
			fmt.Sprintf("unknown parser type %q", req.Type))
	case !types.IsKnownSource(req.Source):
		return parsers.NewParseError(parsers.CodeInvalidSource,
			fmt.Sprintf("unknown source kind %q", req.Source))
	}
	return nil
}

// fingerprint derives a stable cache key from the full request,
// options included.
func fingerprint(req *types.ParseRequest) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
