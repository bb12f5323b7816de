// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

// Package reconcile computes an updated file body whose __all__ assignment
// matches the names the file imports. It is a pure function over
// (path, text): no filesystem access, no shared state, safe to run
// concurrently across files.
package reconcile

import (
	"context"
	"strings"

	"github.com/josephcourtney/awl/internal/directive"
	"github.com/josephcourtney/awl/internal/exportlist"
	"github.com/josephcourtney/awl/internal/policy"
	"github.com/josephcourtney/awl/internal/pyimport"
	"github.com/josephcourtney/awl/pkg/types"
)

// Reconcile produces the full candidate new text for one file. The path is
// used for diagnostics only. Names in a pre-existing __all__ that have no
// backing import are dropped; the rendered list derives purely from imports.
func Reconcile(ctx context.Context, filePath, text string) (*types.ReconcileResult, error) {
	res := &types.ReconcileResult{
		FilePath:     filePath,
		OriginalText: text,
		NewText:      text,
	}

	res.Directives = directive.ScanFile(text)
	if res.Directives.FileIgnore {
		return res, nil
	}

	content := []byte(text)

	extracted, err := pyimport.Extract(ctx, filePath, content)
	if err != nil {
		return nil, err
	}
	res.Diagnostics = extracted.Diagnostics
	res.NewNames = policy.Decide(extracted.Symbols, res.Directives)

	scan, err := exportlist.ScanText(ctx, content)
	if err != nil {
		return nil, err
	}

	rendered := exportlist.Render(res.NewNames)

	switch {
	case scan.Existing != nil:
		r := scan.Existing.Range
		res.ExportRange = &r
		res.OldNames = scan.Existing.Names
		res.NewText = text[:r.Start] + rendered + text[r.End:]
	case scan.InsertAfter >= 0:
		// One blank line between the import block and the assignment.
		res.NewText = text[:scan.InsertAfter] + "\n\n" + rendered + text[scan.InsertAfter:]
	default:
		res.NewText = appendAtEOF(text, rendered)
	}

	res.Changed = res.NewText != text
	return res, nil
}

// appendAtEOF adds the rendered assignment at the end of a file that has
// neither imports nor an existing __all__.
func appendAtEOF(text, rendered string) string {
	if text == "" {
		return rendered + "\n"
	}
	out := text
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out + "\n" + rendered + "\n"
}
