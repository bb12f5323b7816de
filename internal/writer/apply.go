// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

// Package writer consumes ReconcileResults: it applies changed files to
// disk atomically, renders diffs, and reports per-file status. The
// reconciler itself never touches the filesystem; everything here does.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephcourtney/awl/pkg/types"
)

// Apply overwrites the file with the reconciled text. It is a no-op for
// unchanged or skipped results.
func Apply(res *types.ReconcileResult) error {
	if !res.Changed || res.Skipped() {
		return nil
	}
	return atomicWrite(res.FilePath, []byte(res.NewText))
}

// atomicWrite writes data to a temp file in the same directory, then
// renames it over the target path. This prevents partial writes from
// corrupting files. Original permissions are preserved.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, ".awl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
