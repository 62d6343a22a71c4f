// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/service"
	"github.com/docforge/docforge/pkg/types"
)

var watchDebounce int

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch for file changes and re-parse",
	Long: `Watch an API description for changes and re-parse it on every
modification. Events are debounced so editors that write in bursts
trigger a single re-parse.

Example:
  docforge watch -t openapi api.yaml
  docforge watch -t go-doc -s directory ./internal
  docforge watch -t jsdoc -s directory src --debounce 1000`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	addRequestFlags(watchCmd)
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	debounce := cfg.Watch.Debounce
	if watchDebounce > 0 {
		debounce = watchDebounce
	}

	svc := service.New(service.WithLogger(newLogger(cfg)))
	req := buildRequest(cfg, args[0])
	if req.Source == types.SourceURL || req.Source == types.SourceContent {
		return fmt.Errorf("watch requires a file or directory source")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchPaths(watcher, req.Path); err != nil {
		return err
	}

	printInfo("Watching %s (debounce %dms)", req.Path, debounce)
	printInfo("Press Ctrl+C to stop")

	reparse := func() {
		// Drop cached results so the changed input is actually re-read
		svc.ClearCache()
		resp := svc.Parse(cmd.Context(), req)
		if resp.Status == types.StatusFailed {
			printError("parse failed: %s", firstIssue(resp.Errors))
			return
		}
		printInfo("[%s] %s: %d endpoint(s), %d schema(s)",
			time.Now().Format("15:04:05"), resp.Status,
			resp.Metadata.EndpointCount, resp.Metadata.SchemaCount)
		if cfg.Output != "" {
			if err := writeResult(cfg, resp); err != nil {
				printError("write failed: %v", err)
			}
		}
	}

	reparse()

	var timer *time.Timer
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			printVerbose("Change detected: %s", event.Name)
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(time.Duration(debounce)*time.Millisecond, reparse)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError("watch error: %v", err)
		}
	}
}

// addWatchPaths registers path with the watcher; directories are
// walked so the whole tree is covered.
func addWatchPaths(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}
	if !info.IsDir() {
		return watcher.Add(path)
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && p != path {
				return filepath.SkipDir
			}
			return watcher.Add(p)
		}
		return nil
	})
}

// relevantEvent filters out chmod-only noise.
func relevantEvent(event fsnotify.Event) bool {
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) ||
		event.Op.Has(fsnotify.Rename)
}
