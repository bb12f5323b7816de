// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

// Package exportlist locates a module's existing __all__ assignment and
// renders the canonical replacement text.
package exportlist

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/josephcourtney/awl/pkg/types"
)

const dunderAll = "__all__"

// Location describes an existing __all__ assignment: the byte range of the
// whole statement and the string elements it currently lists.
type Location struct {
	Range types.Range
	Names []string
}

// Scan is the locator's view of one file: the existing assignment, if any,
// and where a new one would be inserted.
type Scan struct {
	// Existing is nil when the file has no top-level __all__ assignment.
	// Absence is not an error; it selects the insertion path.
	Existing *Location

	// InsertAfter is the byte offset just past the final top-level import
	// statement, or -1 when the file has no imports.
	InsertAfter int
}

// ScanText parses content and walks the module's top-level statements for
// the first assignment (plain or annotated) to __all__, accepting list and
// tuple literals on the right-hand side.
func ScanText(ctx context.Context, content []byte) (*Scan, error) {
	root, err := sitter.ParseCtx(ctx, content, python.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("parsing for export list: %w", err)
	}

	scan := &Scan{InsertAfter: -1}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		n := root.NamedChild(i)
		switch n.Type() {
		case "import_statement", "import_from_statement", "future_import_statement":
			// Extend past any trailing comment on the statement's last line;
			// the node itself ends before it.
			scan.InsertAfter = lineEnd(content, int(n.EndByte()))
		case "expression_statement":
			if scan.Existing != nil {
				continue
			}
			if loc := matchAssignment(n, content); loc != nil {
				scan.Existing = loc
			}
		}
	}

	return scan, nil
}

// lineEnd advances offset to the terminating newline of its line, or to
// the end of content.
func lineEnd(content []byte, offset int) int {
	for offset < len(content) && content[offset] != '\n' {
		offset++
	}
	return offset
}

// matchAssignment checks one expression statement for `__all__ = ...` and
// returns its location, or nil.
func matchAssignment(stmt *sitter.Node, content []byte) *Location {
	if stmt.NamedChildCount() == 0 {
		return nil
	}
	assign := stmt.NamedChild(0)
	if assign.Type() != "assignment" {
		return nil
	}
	left := assign.ChildByFieldName("left")
	if left == nil || left.Type() != "identifier" || left.Content(content) != dunderAll {
		return nil
	}

	loc := &Location{
		Range: types.Range{Start: int(stmt.StartByte()), End: int(stmt.EndByte())},
	}
	if right := assign.ChildByFieldName("right"); right != nil {
		loc.Names = stringElements(right, content)
	}
	return loc
}

// stringElements collects the string literals directly inside a list or
// tuple node. Non-string elements are skipped.
func stringElements(seq *sitter.Node, content []byte) []string {
	var names []string
	for i := 0; i < int(seq.NamedChildCount()); i++ {
		el := seq.NamedChild(i)
		if el.Type() != "string" {
			continue
		}
		names = append(names, stringValue(el, content))
	}
	return names
}

// stringValue extracts the content of a string literal node, falling back
// to quote trimming when the grammar exposes no string_content child
// (empty strings).
func stringValue(str *sitter.Node, content []byte) string {
	for i := 0; i < int(str.NamedChildCount()); i++ {
		child := str.NamedChild(i)
		if child.Type() == "string_content" {
			return child.Content(content)
		}
	}
	return strings.Trim(str.Content(content), `"'`)
}

// Render formats the export assignment in the one canonical style: multi-line,
// four-space indent, double quotes, trailing comma. Re-rendering parsed
// output is byte-identical, which makes repeat runs no-ops.
func Render(names []string) string {
	if len(names) == 0 {
		return dunderAll + " = []"
	}

	var b strings.Builder
	b.WriteString(dunderAll + " = [\n")
	for _, name := range names {
		fmt.Fprintf(&b, "    %q,\n", name)
	}
	b.WriteString("]")
	return b.String()
}
