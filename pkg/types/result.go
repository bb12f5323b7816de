// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Range is a half-open byte range [Start, End) within a file's text.
type Range struct {
	Start int
	End   int
}

// Diagnostic records a non-fatal per-line issue, attributed to a file and
// line so the reporter can surface it later. Diagnostics never abort a run.
type Diagnostic struct {
	FilePath string
	Line     int // 1-based; 0 when the issue is not tied to a line
	Message  string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", d.FilePath, d.Line, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.FilePath, d.Message)
}

// ReconcileResult is the full outcome of reconciling one file. NewText is
// always the complete candidate file body, never a patch, so writers can
// diff, preview, or replace atomically.
type ReconcileResult struct {
	FilePath     string
	OriginalText string
	NewText      string
	Changed      bool
	Directives   FileDirectives // File-level flags (FileIgnore means the file was skipped)
	ExportRange  *Range         // Located existing __all__ assignment; nil when inserted
	OldNames     []string       // Names in the pre-existing assignment, if any
	NewNames     []string       // Names in the rendered assignment
	Diagnostics  []Diagnostic
}

// Skipped reports whether the file was left untouched due to awl:ignore.
func (r *ReconcileResult) Skipped() bool {
	return r.Directives.FileIgnore
}
