// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

// Package awl defines the public interface for awl, a tool that keeps a
// Python module's __all__ declaration synchronized with its imports.
package awl

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
)

// Error types for the awl API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrNoProject     = errors.New("no path given and no pyproject.toml found")
)

// Config configures a Runner instance.
type Config struct {
	Path     string // Single file to reconcile; empty enables pyproject discovery
	DryRun   bool   // Compute and report changes without writing files
	ShowDiff bool   // Print a unified diff of each change
	Quiet    bool   // Suppress informational status lines
	Verbose  bool   // Print old/new export lists for every file
	Workers  int    // Concurrent file limit (0 = GOMAXPROCS)

	Out    io.Writer   // Status output (default os.Stdout)
	Logger *zap.Logger // Diagnostics (default no-op)
}

// Result holds the outcome of a Runner.Run invocation.
type Result struct {
	FilesProcessed int // Files reconciled (including unchanged)
	FilesChanged   int // Files whose __all__ was updated or added
	FilesSkipped   int // Files skipped by awl:ignore
}

// Runner reconciles export lists across a project or a single file.
type Runner interface {
	// Run discovers the target files, reconciles each, and applies or
	// reports the changes according to the config. Cancellation via ctx
	// takes effect between files.
	Run(ctx context.Context) (*Result, error)
}
