// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package loader acquires raw source content for parse requests. It
// resolves the four source kinds (file, directory, url, content) into a
// uniform list of scanner.SourceFile values that parsers iterate over.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/docforge/docforge/internal/parsers"
	"github.com/docforge/docforge/internal/scanner"
	"github.com/docforge/docforge/pkg/types"
)

// ContentPath is the synthetic path assigned to content sources.
const ContentPath = "<content>"

// maxResponseSize caps URL downloads at 32 MiB.
const maxResponseSize = 32 << 20

// Loader resolves parse request sources into source files.
type Loader struct {
	// Client is the HTTP client used for url sources.
	Client *http.Client
}

// New creates a Loader with a default HTTP client.
func New() *Loader {
	return &Loader{
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Load resolves the request into source files. Directory sources are
// scanned with the request's include/exclude globs filtered to the
// given extensions. Failures are reported as ParseErrors with a
// source-specific code.
func (l *Loader) Load(ctx context.Context, req *types.ParseRequest, extensions []string) ([]scanner.SourceFile, error) {
	switch req.Source {
	case types.SourceContent:
		return []scanner.SourceFile{
			{
				Path:    ContentPath,
				Content: []byte(req.Path),
				ModTime: time.Now(),
			},
		}, nil

	case types.SourceFile:
		return l.loadFile(req.Path)

	case types.SourceDirectory:
		return l.loadDirectory(req, extensions)

	case types.SourceURL:
		return l.loadURL(ctx, req.Path)

	default:
		return nil, parsers.NewParseError(parsers.CodeUnsupportedSource,
			fmt.Sprintf("unsupported source kind %q", req.Source))
	}
}

// loadFile reads a single file from disk.
func (l *Loader) loadFile(path string) ([]scanner.SourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, parsers.NewParseError(parsers.CodeFileReadError,
			fmt.Sprintf("failed to read file %s: %v", path, err))
	}
	if info.IsDir() {
		return nil, parsers.NewParseError(parsers.CodeFileReadError,
			fmt.Sprintf("%s is a directory, not a file", path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, parsers.NewParseError(parsers.CodeFileReadError,
			fmt.Sprintf("failed to read file %s: %v", path, err))
	}

	return []scanner.SourceFile{
		{
			Path:     path,
			Language: scanner.DetectLanguage(path),
			Content:  content,
			ModTime:  info.ModTime(),
		},
	}, nil
}

// loadDirectory scans a directory using the request's glob options.
func (l *Loader) loadDirectory(req *types.ParseRequest, extensions []string) ([]scanner.SourceFile, error) {
	cfg := scanner.Config{
		BasePath:   req.Path,
		Extensions: extensions,
		Recursive:  true,
	}
	if req.Options != nil {
		cfg.IncludePatterns = req.Options.Include
		cfg.ExcludePatterns = req.Options.Exclude
		cfg.Recursive = req.Options.Recursive
	}

	files, err := scanner.New(cfg).Scan()
	if err != nil {
		return nil, parsers.NewParseError(parsers.CodeFileReadError,
			fmt.Sprintf("failed to scan directory %s: %v", req.Path, err))
	}
	return files, nil
}

// loadURL fetches content over HTTP.
func (l *Loader) loadURL(ctx context.Context, url string) ([]scanner.SourceFile, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, parsers.NewParseError(parsers.CodeURLFetchError,
			fmt.Sprintf("invalid URL %s: %v", url, err))
	}

	resp, err := l.Client.Do(httpReq)
	if err != nil {
		return nil, parsers.NewParseError(parsers.CodeURLFetchError,
			fmt.Sprintf("failed to fetch %s: %v", url, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, parsers.NewParseError(parsers.CodeURLFetchError,
			fmt.Sprintf("failed to fetch %s: status %d", url, resp.StatusCode))
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, parsers.NewParseError(parsers.CodeURLFetchError,
			fmt.Sprintf("failed to read response from %s: %v", url, err))
	}

	return []scanner.SourceFile{
		{
			Path:     url,
			Language: scanner.DetectLanguage(url),
			Content:  content,
			ModTime:  time.Now(),
		},
	}, nil
}

// TotalSize sums the content sizes of the given files.
func TotalSize(files []scanner.SourceFile) int64 {
	var total int64
	for _, f := range files {
		total += int64(len(f.Content))
	}
	return total
}
