// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

package awl

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/josephcourtney/awl/internal/project"
	"github.com/josephcourtney/awl/internal/writer"
)

const pyprojectFile = "pyproject.toml"

// New validates the config and returns a ready-to-use Runner. Discovery
// happens in Run, not here.
func New(cfg Config) (Runner, error) {
	if cfg.Quiet && cfg.Verbose {
		return nil, fmt.Errorf("%w: quiet and verbose are mutually exclusive", ErrInvalidConfig)
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &runner{cfg: cfg}, nil
}

type runner struct {
	cfg Config
}

func (r *runner) Run(ctx context.Context) (*Result, error) {
	paths, err := r.targets()
	if err != nil {
		return nil, err
	}

	driver := &project.Driver{Workers: r.cfg.Workers}
	results, err := driver.ReconcileAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	reporter := &writer.Reporter{
		Out:     r.cfg.Out,
		Quiet:   r.cfg.Quiet,
		Verbose: r.cfg.Verbose,
		Logger:  r.cfg.Logger,
	}

	result := &Result{}
	for _, res := range results {
		result.FilesProcessed++

		if r.cfg.ShowDiff && res.Changed {
			fmt.Fprint(r.cfg.Out, writer.Unified(res.FilePath, res.OriginalText, res.NewText))
		}

		if !r.cfg.DryRun {
			if err := writer.Apply(res); err != nil {
				return result, fmt.Errorf("applying %s: %w", res.FilePath, err)
			}
		}

		reporter.Report(res)

		switch {
		case res.Skipped():
			result.FilesSkipped++
		case res.Changed:
			result.FilesChanged++
		}
	}

	return result, nil
}

// targets resolves the file set: an explicit path, or every __init__.py
// under the src roots named by pyproject.toml.
func (r *runner) targets() ([]string, error) {
	if r.cfg.Path != "" {
		return []string{r.cfg.Path}, nil
	}

	if _, err := os.Stat(pyprojectFile); err != nil {
		return nil, ErrNoProject
	}

	dirs, err := project.SourceDirs(pyprojectFile)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, dir := range dirs {
		files, err := project.CollectInitFiles(dir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, files...)
	}

	r.cfg.Logger.Debug("discovered targets",
		zap.Int("count", len(paths)),
		zap.Strings("src_dirs", dirs))

	return paths, nil
}
