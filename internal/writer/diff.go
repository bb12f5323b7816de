// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

package writer

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is how many unchanged lines are kept around each change in
// the rendered diff.
const contextLines = 3

// Unified renders a unified-style line diff of a file's original and new
// text. Long unchanged runs are elided.
func Unified(path, oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", path, path)

	for i, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeLines(&buf, "-", lines)
		case diffmatchpatch.DiffInsert:
			writeLines(&buf, "+", lines)
		case diffmatchpatch.DiffEqual:
			writeLines(&buf, " ", trimContext(lines, i == 0, i == len(diffs)-1))
		}
	}

	return buf.String()
}

// splitLines splits diff text into lines without trailing newlines,
// dropping the empty tail produced by a terminal newline.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// trimContext keeps only the context-relevant edges of an unchanged run,
// replacing the middle with an elision marker. Leading context before the
// first change and trailing context after the last are dropped entirely.
func trimContext(lines []string, first, last bool) []string {
	switch {
	case first && len(lines) > contextLines:
		return lines[len(lines)-contextLines:]
	case last && len(lines) > contextLines:
		return lines[:contextLines]
	case len(lines) > 2*contextLines:
		out := make([]string, 0, 2*contextLines+1)
		out = append(out, lines[:contextLines]...)
		out = append(out, "...")
		out = append(out, lines[len(lines)-contextLines:]...)
		return out
	default:
		return lines
	}
}

func writeLines(buf *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		buf.WriteString(prefix)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}
