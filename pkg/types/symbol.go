// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the shared data model for awl: imported symbols,
// directive flags, and reconciliation results.
package types

import "strings"

// LineDirective is a control comment attached to a single import line.
// It overrides file-level policy for that one name.
type LineDirective int

const (
	DirectiveNone           LineDirective = iota // No directive on the line
	DirectiveIgnore                              // awl:ignore — exclude unconditionally
	DirectiveIncludePrivate                      // awl:include-private — include despite naming
)

func (d LineDirective) String() string {
	switch d {
	case DirectiveNone:
		return "none"
	case DirectiveIgnore:
		return "ignore"
	case DirectiveIncludePrivate:
		return "include-private"
	default:
		return "unknown"
	}
}

// ImportedSymbol is one name bound by an import statement.
type ImportedSymbol struct {
	Name      string        // Bound name (alias if present, else first dotted component)
	Line      int           // 1-based physical line of the bound name
	Directive LineDirective // Directive from the trailing comment on that line
}

// IsPrivate reports whether the name follows the single-underscore
// convention. Dunder names (__version__) are conventionally public.
func (s ImportedSymbol) IsPrivate() bool {
	if !strings.HasPrefix(s.Name, "_") {
		return false
	}
	if strings.HasPrefix(s.Name, "__") && strings.HasSuffix(s.Name, "__") {
		return false
	}
	return true
}

// FileDirectives holds the file-level control flags scanned from the
// leading comment block.
type FileDirectives struct {
	FileIgnore     bool // awl:ignore — skip the file entirely
	IncludePrivate bool // awl:include-private — include private names by default
	ExcludePublic  bool // awl:exclude-public — exclude public names by default
}
