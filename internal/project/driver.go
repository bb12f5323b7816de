// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

package project

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/josephcourtney/awl/internal/reconcile"
	"github.com/josephcourtney/awl/pkg/types"
)

// Driver reads and reconciles a set of files concurrently. Reconciliation
// itself is side-effect free, so the only coordination needed is slotting
// results into place.
type Driver struct {
	// Workers caps concurrent reconciliations; 0 means GOMAXPROCS.
	Workers int
}

// ReconcileAll reconciles every path and returns results in input order.
// An unreadable file fails the run; per-line parse problems inside a file
// are carried as diagnostics on its result instead.
func (d *Driver) ReconcileAll(ctx context.Context, paths []string) ([]*types.ReconcileResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers())

	results := make([]*types.ReconcileResult, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			res, err := reconcile.Reconcile(ctx, path, string(data))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (d *Driver) workers() int {
	if d.Workers > 0 {
		return d.Workers
	}
	return runtime.GOMAXPROCS(0)
}
