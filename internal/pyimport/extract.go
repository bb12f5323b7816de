// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pyimport extracts the names bound by a Python module's top-level
// import statements using tree-sitter. It understands plain, dotted,
// aliased, relative, and parenthesized multi-line from-import forms, and
// attaches line-level awl: directives found in trailing comments.
package pyimport

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/josephcourtney/awl/internal/directive"
	"github.com/josephcourtney/awl/pkg/types"
)

// Result holds the extracted symbols, in source order, plus any per-line
// diagnostics. Diagnostics are non-fatal: a statement that cannot be
// understood is skipped, never the whole file.
type Result struct {
	Symbols     []types.ImportedSymbol
	Diagnostics []types.Diagnostic
}

// Extract parses content and walks the module's top-level statements.
// Wildcard imports are not expanded (we have no knowledge of the target
// module's contents); they produce a diagnostic instead of symbols.
func Extract(ctx context.Context, filePath string, content []byte) (*Result, error) {
	root, err := sitter.ParseCtx(ctx, content, python.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}

	comments := commentsByLine(root, content)
	res := &Result{}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		n := root.NamedChild(i)
		switch n.Type() {
		case "import_statement", "future_import_statement":
			res.collectNames(n, nil, filePath, content, comments)
		case "import_from_statement":
			res.collectNames(n, n.ChildByFieldName("module_name"), filePath, content, comments)
		case "ERROR":
			text := strings.TrimSpace(n.Content(content))
			if strings.HasPrefix(text, "import ") || strings.HasPrefix(text, "from ") {
				res.Diagnostics = append(res.Diagnostics, types.Diagnostic{
					FilePath: filePath,
					Line:     int(n.StartPoint().Row) + 1,
					Message:  "skipping unparseable import statement",
				})
			}
		}
	}

	return res, nil
}

// collectNames walks one import statement's named children and records a
// symbol per bound name. moduleName, when non-nil, is the from-import
// module node and is skipped.
func (r *Result) collectNames(stmt, moduleName *sitter.Node, filePath string, content []byte, comments map[int]string) {
	for i := 0; i < int(stmt.NamedChildCount()); i++ {
		child := stmt.NamedChild(i)
		if moduleName != nil && child.StartByte() == moduleName.StartByte() {
			continue
		}

		switch child.Type() {
		case "dotted_name", "identifier":
			r.addSymbol(child, filePath, content, comments)
		case "aliased_import":
			alias := child.ChildByFieldName("alias")
			if alias == nil {
				continue
			}
			r.addSymbol(alias, filePath, content, comments)
		case "wildcard_import":
			r.Diagnostics = append(r.Diagnostics, types.Diagnostic{
				FilePath: filePath,
				Line:     int(child.StartPoint().Row) + 1,
				Message:  "wildcard import not expanded",
			})
		}
	}
}

// addSymbol records the bound name for a name node: the alias identifier,
// or the first component of a dotted name (import a.b.c binds a).
func (r *Result) addSymbol(nameNode *sitter.Node, filePath string, content []byte, comments map[int]string) {
	name := nameNode.Content(content)
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[:idx]
	}
	if name == "" {
		return
	}

	line := int(nameNode.StartPoint().Row) + 1
	dir := types.DirectiveNone
	if comment, ok := comments[line]; ok {
		dir = directive.ParseLine(comment)
	}

	r.Symbols = append(r.Symbols, types.ImportedSymbol{
		Name:      name,
		Line:      line,
		Directive: dir,
	})
}

// commentsByLine maps 1-based line numbers to comment text. Using the parse
// tree keeps # characters inside string literals from counting as comments.
func commentsByLine(root *sitter.Node, content []byte) map[int]string {
	q, err := sitter.NewQuery([]byte("(comment) @c"), python.GetLanguage())
	if err != nil {
		return nil
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, root)

	comments := make(map[int]string)
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			line := int(c.Node.StartPoint().Row) + 1
			comments[line] = c.Node.Content(content)
		}
	}

	return comments
}
