// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

// Package project discovers which files to reconcile and drives the
// per-file reconciliation, optionally in parallel.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// pyProject models the slice of pyproject.toml we care about: the hatch
// build includes, whose first path components name the package roots
// under src/.
type pyProject struct {
	Tool struct {
		Hatch struct {
			Build struct {
				Includes []string `toml:"includes"`
			} `toml:"build"`
		} `toml:"hatch"`
	} `toml:"tool"`
}

// SourceDirs reads a pyproject.toml and returns the src/<root> directories
// derived from tool.hatch.build.includes, deduplicated in first-seen order.
func SourceDirs(pyprojectPath string) ([]string, error) {
	data, err := os.ReadFile(pyprojectPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", pyprojectPath, err)
	}

	var cfg pyProject
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pyprojectPath, err)
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, include := range cfg.Tool.Hatch.Build.Includes {
		root := firstComponent(include)
		if root == "" || seen[root] {
			continue
		}
		seen[root] = true
		dirs = append(dirs, filepath.Join("src", root))
	}

	return dirs, nil
}

// CollectInitFiles walks dir and returns every __init__.py beneath it.
func CollectInitFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == "__init__.py" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	return files, nil
}

func firstComponent(path string) string {
	cleaned := strings.Trim(filepath.ToSlash(path), "/")
	if cleaned == "" {
		return ""
	}
	if idx := strings.Index(cleaned, "/"); idx >= 0 {
		return cleaned[:idx]
	}
	return cleaned
}
