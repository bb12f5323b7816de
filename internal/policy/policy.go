// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

// Package policy decides which imported names are retained in the export
// list, combining the public/private naming convention with file-level and
// line-level directives.
package policy

import "github.com/josephcourtney/awl/pkg/types"

// Decide returns the retained export names in first-seen order, without
// duplicates. Precedence, strongest first:
//
//  1. A name with line-level awl:ignore on any of its import lines is
//     excluded unconditionally.
//  2. Line-level awl:include-private includes the symbol even under
//     file-level awl:exclude-public.
//  3. File-level flags set the default: private names need IncludePrivate,
//     public names are in unless ExcludePublic.
//
// Callers must check FileDirectives.FileIgnore before calling; ignored
// files are skipped upstream.
func Decide(symbols []types.ImportedSymbol, dirs types.FileDirectives) []string {
	ignored := make(map[string]bool)
	for _, s := range symbols {
		if s.Directive == types.DirectiveIgnore {
			ignored[s.Name] = true
		}
	}

	seen := make(map[string]bool)
	var names []string

	for _, s := range symbols {
		if ignored[s.Name] || seen[s.Name] {
			continue
		}
		if !included(s, dirs) {
			continue
		}
		seen[s.Name] = true
		names = append(names, s.Name)
	}

	return names
}

func included(s types.ImportedSymbol, dirs types.FileDirectives) bool {
	if s.Directive == types.DirectiveIncludePrivate {
		return true
	}
	if s.IsPrivate() {
		return dirs.IncludePrivate
	}
	return !dirs.ExcludePublic
}
