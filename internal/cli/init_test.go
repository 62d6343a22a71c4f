// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/pkg/types"
)

// chdirTemp runs the test from an empty temp directory so runInit
// writes there instead of the repo.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestRunInit_CreatesConfig(t *testing.T) {
	chdirTemp(t)
	initParser, initForce = "", false
	quiet = true
	t.Cleanup(func() { quiet = false })

	require.NoError(t, runInit(initCmd, nil))

	cfg, err := config.Load("docforge.yaml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestRunInit_ParserFlag(t *testing.T) {
	chdirTemp(t)
	initForce = false
	quiet = true
	t.Cleanup(func() { initParser = ""; quiet = false })

	initParser = types.TypeGoDoc
	require.NoError(t, runInit(initCmd, nil))

	cfg, err := config.Load("docforge.yaml")
	require.NoError(t, err)
	assert.Equal(t, types.TypeGoDoc, cfg.Parser)

	initParser = "asciidoc"
	err = runInit(initCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported parser")
}

func TestRunInit_ExistingConfig(t *testing.T) {
	chdirTemp(t)
	initParser = ""
	quiet = true
	t.Cleanup(func() { initForce = false; quiet = false })

	require.NoError(t, os.WriteFile("docforge.yaml", []byte("parser: jsdoc\n"), 0o644))

	initForce = false
	err := runInit(initCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	initForce = true
	require.NoError(t, runInit(initCmd, nil))

	cfg, err := config.Load("docforge.yaml")
	require.NoError(t, err)
	assert.Equal(t, types.TypeOpenAPI, cfg.Parser)
}
