// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josephcourtney/awl/pkg/types"
)

func sym(name string, dir types.LineDirective) types.ImportedSymbol {
	return types.ImportedSymbol{Name: name, Line: 1, Directive: dir}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		symbols []types.ImportedSymbol
		dirs    types.FileDirectives
		want    []string
	}{
		{
			name:    "public included by default",
			symbols: []types.ImportedSymbol{sym("main", types.DirectiveNone)},
			want:    []string{"main"},
		},
		{
			name:    "private excluded by default",
			symbols: []types.ImportedSymbol{sym("main", types.DirectiveNone), sym("_helper", types.DirectiveNone)},
			want:    []string{"main"},
		},
		{
			name:    "dunder is public",
			symbols: []types.ImportedSymbol{sym("__version__", types.DirectiveNone)},
			want:    []string{"__version__"},
		},
		{
			name:    "file-level include-private flips private default",
			symbols: []types.ImportedSymbol{sym("_helper", types.DirectiveNone)},
			dirs:    types.FileDirectives{IncludePrivate: true},
			want:    []string{"_helper"},
		},
		{
			name:    "line-level include-private without file flag",
			symbols: []types.ImportedSymbol{sym("_helper", types.DirectiveIncludePrivate)},
			want:    []string{"_helper"},
		},
		{
			name:    "file-level exclude-public drops publics",
			symbols: []types.ImportedSymbol{sym("foo", types.DirectiveNone), sym("_bar", types.DirectiveNone)},
			dirs:    types.FileDirectives{ExcludePublic: true},
			want:    nil,
		},
		{
			name:    "line-level include beats file-level exclude-public",
			symbols: []types.ImportedSymbol{sym("foo", types.DirectiveIncludePrivate)},
			dirs:    types.FileDirectives{ExcludePublic: true},
			want:    []string{"foo"},
		},
		{
			name:    "line-level ignore beats file-level include-private",
			symbols: []types.ImportedSymbol{sym("_helper", types.DirectiveIgnore)},
			dirs:    types.FileDirectives{IncludePrivate: true},
			want:    nil,
		},
		{
			name: "ignore on any occurrence excludes the name",
			symbols: []types.ImportedSymbol{
				sym("x", types.DirectiveNone),
				sym("x", types.DirectiveIgnore),
			},
			want: nil,
		},
		{
			name: "dedup keeps first retained occurrence order",
			symbols: []types.ImportedSymbol{
				sym("a", types.DirectiveNone),
				sym("b", types.DirectiveNone),
				sym("a", types.DirectiveNone),
			},
			want: []string{"a", "b"},
		},
		{
			name: "first-seen order is not sorted",
			symbols: []types.ImportedSymbol{
				sym("zeta", types.DirectiveNone),
				sym("alpha", types.DirectiveNone),
			},
			want: []string{"zeta", "alpha"},
		},
		{
			name: "later include-private occurrence rescues private name",
			symbols: []types.ImportedSymbol{
				sym("_x", types.DirectiveNone),
				sym("_x", types.DirectiveIncludePrivate),
			},
			want: []string{"_x"},
		},
		{
			name:    "empty input",
			symbols: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.symbols, tt.dirs))
		})
	}
}

func TestIsPrivate(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"public", false},
		{"_private", true},
		{"__mangled", true},
		{"__version__", false},
		{"_", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := types.ImportedSymbol{Name: tt.name}
			assert.Equal(t, tt.want, s.IsPrivate())
		})
	}
}
