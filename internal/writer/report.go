// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

package writer

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/josephcourtney/awl/pkg/types"
)

// Reporter prints per-file status lines. User-facing output goes to Out;
// diagnostics and debug detail go through the logger.
type Reporter struct {
	Out     io.Writer
	Quiet   bool // Suppress informational status lines
	Verbose bool // Print old/new export lists even when unchanged
	Logger  *zap.Logger
}

// Report surfaces the outcome of one reconciled file.
func (r *Reporter) Report(res *types.ReconcileResult) {
	logger := r.logger()

	for _, d := range res.Diagnostics {
		logger.Warn("import analysis", zap.String("diagnostic", d.String()))
	}

	switch {
	case res.Skipped():
		r.infof("skipped %s (awl:ignore)", res.FilePath)
	case !res.Changed:
		r.infof("%s is up to date", res.FilePath)
	case res.ExportRange != nil:
		r.infof("updated __all__ in %s", res.FilePath)
	default:
		r.infof("added __all__ to %s", res.FilePath)
	}

	if r.Verbose && !res.Skipped() {
		fmt.Fprintf(r.Out, "  old: [%s]\n", joinNames(res.OldNames))
		fmt.Fprintf(r.Out, "  new: [%s]\n", joinNames(res.NewNames))
	}
}

func (r *Reporter) infof(format string, args ...any) {
	if r.Quiet {
		return
	}
	fmt.Fprintf(r.Out, format+"\n", args...)
}

func (r *Reporter) logger() *zap.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return zap.NewNop()
}

func joinNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
