// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSourceDirs(t *testing.T) {
	dir := t.TempDir()
	pyproject := filepath.Join(dir, "pyproject.toml")
	writeFile(t, pyproject, `
[project]
name = "demo"

[tool.hatch.build]
includes = ["demo/**", "demo/cli.py", "extra"]
`)

	dirs, err := SourceDirs(pyproject)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("src", "demo"),
		filepath.Join("src", "extra"),
	}, dirs)
}

func TestSourceDirs_NoIncludes(t *testing.T) {
	dir := t.TempDir()
	pyproject := filepath.Join(dir, "pyproject.toml")
	writeFile(t, pyproject, "[project]\nname = \"demo\"\n")

	dirs, err := SourceDirs(pyproject)
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestSourceDirs_Unreadable(t *testing.T) {
	_, err := SourceDirs(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestCollectInitFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pkg", "__init__.py"), "")
	writeFile(t, filepath.Join(dir, "pkg", "sub", "__init__.py"), "")
	writeFile(t, filepath.Join(dir, "pkg", "sub", "mod.py"), "")

	files, err := CollectInitFiles(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "pkg", "__init__.py"),
		filepath.Join(dir, "pkg", "sub", "__init__.py"),
	}, files)
}

func TestDriver_ReconcileAll(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.py")
	b := filepath.Join(dir, "b.py")
	writeFile(t, a, "import os\n")
	writeFile(t, b, "# awl:ignore\nimport sys\n")

	d := &Driver{Workers: 2}
	results, err := d.ReconcileAll(context.Background(), []string{a, b})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Results arrive in input order regardless of scheduling.
	assert.Equal(t, a, results[0].FilePath)
	assert.True(t, results[0].Changed)
	assert.Equal(t, b, results[1].FilePath)
	assert.True(t, results[1].Skipped())
}

func TestDriver_UnreadableFileFailsRun(t *testing.T) {
	d := &Driver{}
	_, err := d.ReconcileAll(context.Background(), []string{filepath.Join(t.TempDir(), "nope.py")})
	assert.Error(t, err)
}
