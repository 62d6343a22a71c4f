// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration loading and validation for docforge.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/docforge/docforge/pkg/types"
)

// Config represents the docforge configuration.
type Config struct {
	// Parser is the parser type to use (openapi, jsdoc, python-docstring, go-doc, graphql)
	Parser string `mapstructure:"parser" yaml:"parser" json:"parser"`

	// Output is the output file path for parse results (empty means stdout)
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Format is the output format (yaml, json)
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// Source contains source scanning configuration
	Source SourceConfig `mapstructure:"source" yaml:"source" json:"source"`

	// Parse contains parse behavior configuration
	Parse ParseConfig `mapstructure:"parse" yaml:"parse" json:"parse"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`

	// Log contains logging configuration
	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`
}

// SourceConfig contains source scanning configuration.
type SourceConfig struct {
	// Paths is a list of paths to parse
	Paths []string `mapstructure:"paths" yaml:"paths" json:"paths"`

	// Include is a list of glob patterns to include
	Include []string `mapstructure:"include" yaml:"include" json:"include"`

	// Exclude is a list of glob patterns to exclude
	Exclude []string `mapstructure:"exclude" yaml:"exclude" json:"exclude"`

	// Recursive enables recursive directory scanning
	Recursive bool `mapstructure:"recursive" yaml:"recursive" json:"recursive"`
}

// ParseConfig contains parse behavior configuration.
type ParseConfig struct {
	// ValidateSchema enables structural validation of input documents
	ValidateSchema bool `mapstructure:"validateSchema" yaml:"validateSchema" json:"validateSchema"`

	// ResolveRefs enables reference resolution
	ResolveRefs bool `mapstructure:"resolveRefs" yaml:"resolveRefs" json:"resolveRefs"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Enabled determines whether to enable file watching
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`

	// Debounce is the debounce duration in milliseconds
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level" yaml:"level" json:"level"`

	// Format is the log output format (text, json)
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"docforge.yaml",
	"docforge.json",
	".docforge.yaml",
	".docforge.json",
}

// supportedFormats is the list of supported output formats.
var supportedFormats = []string{
	"yaml",
	"json",
}

// supportedLogLevels is the list of supported log levels.
var supportedLogLevels = []string{
	"debug",
	"info",
	"warn",
	"error",
}

// ErrConfigNotFound is returned when no config file is found.
var ErrConfigNotFound = errors.New("config file not found")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Parser: types.TypeOpenAPI,
		Output: "",
		Format: "yaml",
		Source: SourceConfig{
			Paths: []string{"."},
			Exclude: []string{
				"vendor/**",
				"**/*_test.go",
				"**/testdata/**",
				"node_modules/**",
				".git/**",
				"dist/**",
				"build/**",
			},
			Recursive: true,
		},
		Parse: ParseConfig{
			ValidateSchema: true,
			ResolveRefs:    true,
		},
		Watch: WatchConfig{
			Enabled:  false,
			Debounce: 500,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads the configuration from a file.
// It searches for config files in the following order:
// 1. docforge.yaml
// 2. docforge.json
// 3. .docforge.yaml
// 4. .docforge.json
//
// If configPath is provided, it will use that path instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		found := false
		for _, name := range configFileNames {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				found = true
				break
			}
		}
		if !found {
			return Default(), nil
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads the configuration from a specific directory.
func LoadFromPath(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// setDefaults sets the default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("parser", types.TypeOpenAPI)
	v.SetDefault("output", "")
	v.SetDefault("format", "yaml")
	v.SetDefault("source.paths", []string{"."})
	v.SetDefault("source.exclude", []string{
		"vendor/**",
		"**/*_test.go",
		"**/testdata/**",
		"node_modules/**",
		".git/**",
		"dist/**",
		"build/**",
	})
	v.SetDefault("source.recursive", true)
	v.SetDefault("parse.validateSchema", true)
	v.SetDefault("parse.resolveRefs", true)
	v.SetDefault("watch.enabled", false)
	v.SetDefault("watch.debounce", 500)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Parser != "" && !types.IsKnownType(c.Parser) {
		errs = append(errs, ValidationError{
			Field:   "parser",
			Message: fmt.Sprintf("unsupported parser %q, must be one of: %s", c.Parser, strings.Join(types.KnownTypes, ", ")),
		})
	}

	if c.Format != "" && !contains(supportedFormats, c.Format) {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q, must be one of: %s", c.Format, strings.Join(supportedFormats, ", ")),
		})
	}

	if c.Log.Level != "" && !contains(supportedLogLevels, c.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("unsupported level %q, must be one of: %s", c.Log.Level, strings.Join(supportedLogLevels, ", ")),
		})
	}

	if c.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce",
			Message: "debounce must be non-negative",
		})
	}

	if len(c.Source.Paths) == 0 {
		errs = append(errs, ValidationError{
			Field:   "source.paths",
			Message: "at least one source path is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ConfigFilePath returns the path of the loaded config file, if any.
func ConfigFilePath() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// contains checks if a slice contains a string.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
