// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

// Package directive scans source text for the awl: control comment
// vocabulary. Markers are matched as literal tokens inside comment bodies,
// case-sensitive; substring lookalikes do not count.
package directive

import (
	"strings"

	"github.com/josephcourtney/awl/pkg/types"
)

// Marker vocabulary. This is the stable wire format of the annotation
// language; renaming a marker is a breaking change.
const (
	MarkerIgnore         = "awl:ignore"
	MarkerIncludePrivate = "awl:include-private"
	MarkerExcludePublic  = "awl:exclude-public"
)

// ScanFile derives the file-level directives from raw file text. Only the
// leading comment block counts: lines before the first line that is neither
// blank nor a whole-line # comment. Pure function, no side effects.
func ScanFile(text string) types.FileDirectives {
	var d types.FileDirectives

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "#") {
			break
		}
		body := strings.TrimLeft(trimmed, "#")
		if hasMarker(body, MarkerIgnore) {
			d.FileIgnore = true
		}
		if hasMarker(body, MarkerIncludePrivate) {
			d.IncludePrivate = true
		}
		if hasMarker(body, MarkerExcludePublic) {
			d.ExcludePublic = true
		}
	}

	return d
}

// ParseLine interprets one trailing-comment body as a line-level directive.
// Only awl:ignore and awl:include-private are valid in line position;
// awl:exclude-public is file-level only and is ignored here. When both
// valid markers appear on one line, ignore wins.
func ParseLine(comment string) types.LineDirective {
	body := strings.TrimLeft(strings.TrimSpace(comment), "#")
	if hasMarker(body, MarkerIgnore) {
		return types.DirectiveIgnore
	}
	if hasMarker(body, MarkerIncludePrivate) {
		return types.DirectiveIncludePrivate
	}
	return types.DirectiveNone
}

// hasMarker tokenizes a comment body on whitespace and commas and compares
// each token literally against the marker.
func hasMarker(body, marker string) bool {
	tokens := strings.FieldsFunc(body, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	for _, tok := range tokens {
		if tok == marker {
			return true
		}
	}
	return false
}
