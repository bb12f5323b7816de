// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/josephcourtney/awl/internal/reconcile"
	"github.com/josephcourtney/awl/internal/writer"
	"github.com/josephcourtney/awl/pkg/awl"
)

// runReconcile dispatches between stdin mode, single-file mode, and
// pyproject discovery mode.
func runReconcile(cmd *cobra.Command, args []string) error {
	input := viper.GetString("input")
	if input != "" && len(args) > 0 {
		fmt.Fprintln(os.Stderr, "Warning: both --input and positional path provided; using --input")
	}
	if input == "" && len(args) > 0 {
		input = args[0]
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if input == "-" {
		return runStdin(ctx)
	}

	if input != "" {
		if _, err := os.Stat(input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: input file does not exist: %s\n", input)
			return err
		}
	}

	r, err := awl.New(awl.Config{
		Path:     input,
		DryRun:   viper.GetBool("dry-run"),
		ShowDiff: viper.GetBool("diff"),
		Quiet:    viper.GetBool("quiet"),
		Verbose:  viper.GetBool("verbose"),
		Workers:  viper.GetInt("workers"),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if _, err := r.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// runStdin reconciles text read from stdin and writes the resulting file
// body to stdout. Status lines and diffs go to stderr so stdout stays a
// clean pipe.
func runStdin(ctx context.Context) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	res, err := reconcile.Reconcile(ctx, "<stdin>", string(data))
	if err != nil {
		return err
	}

	if viper.GetBool("diff") && res.Changed {
		fmt.Fprint(os.Stderr, writer.Unified(res.FilePath, res.OriginalText, res.NewText))
	}

	reporter := &writer.Reporter{
		Out:     os.Stderr,
		Quiet:   viper.GetBool("quiet"),
		Verbose: viper.GetBool("verbose"),
		Logger:  logger,
	}
	reporter.Report(res)

	if _, err := io.WriteString(os.Stdout, res.NewText); err != nil {
		return fmt.Errorf("writing stdout: %w", err)
	}
	return nil
}
