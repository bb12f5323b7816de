// Copyright (c) 2026 Joseph Courtney. All rights reserved.
// SPDX-License-Identifier: MIT

package exportlist

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, src string) *Scan {
	t.Helper()
	s, err := ScanText(context.Background(), []byte(src))
	require.NoError(t, err)
	return s
}

func TestScanText_Locate(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantText  string // Exact text the located range must cover
		wantNames []string
	}{
		{
			name:      "single line list",
			src:       "import os\n\n__all__ = [\"os\"]\n",
			wantText:  "__all__ = [\"os\"]",
			wantNames: []string{"os"},
		},
		{
			name:      "multi-line list",
			src:       "__all__ = [\n    \"a\",\n    \"b\",\n]\nx = 1\n",
			wantText:  "__all__ = [\n    \"a\",\n    \"b\",\n]",
			wantNames: []string{"a", "b"},
		},
		{
			name:      "tuple form",
			src:       "__all__ = (\"a\", \"b\")\n",
			wantText:  "__all__ = (\"a\", \"b\")",
			wantNames: []string{"a", "b"},
		},
		{
			name:      "single quotes",
			src:       "__all__ = ['main']\n",
			wantText:  "__all__ = ['main']",
			wantNames: []string{"main"},
		},
		{
			name:      "empty list",
			src:       "__all__ = []\n",
			wantText:  "__all__ = []",
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scan(t, tt.src)
			require.NotNil(t, s.Existing)
			r := s.Existing.Range
			assert.Equal(t, tt.wantText, tt.src[r.Start:r.End])
			assert.Equal(t, tt.wantNames, s.Existing.Names)
		})
	}
}

func TestScanText_NotFound(t *testing.T) {
	s := scan(t, "import os\n\ndef f():\n    pass\n")
	assert.Nil(t, s.Existing)
}

func TestScanText_OtherAssignmentsIgnored(t *testing.T) {
	s := scan(t, "__version__ = \"1.0\"\nall = [\"x\"]\n")
	assert.Nil(t, s.Existing)
}

func TestScanText_InsertAfter(t *testing.T) {
	src := "import os\nfrom sys import argv\n\nx = 1\n"
	s := scan(t, src)
	require.GreaterOrEqual(t, s.InsertAfter, 0)
	assert.Equal(t, "from sys import argv", src[strings.Index(src, "from"):s.InsertAfter])
}

func TestScanText_InsertAfterWithoutImports(t *testing.T) {
	s := scan(t, "x = 1\n")
	assert.Equal(t, -1, s.InsertAfter)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{
			name:  "empty",
			names: nil,
			want:  "__all__ = []",
		},
		{
			name:  "multi-line with trailing comma",
			names: []string{"main", "_helper"},
			want:  "__all__ = [\n    \"main\",\n    \"_helper\",\n]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.names))
		})
	}
}

// Rendered output must parse back to the same names with a byte-identical
// located range, so repeat runs are no-ops.
func TestRenderRoundTrip(t *testing.T) {
	names := []string{"alpha", "_beta", "gamma"}
	rendered := Render(names)

	s := scan(t, rendered+"\n")
	require.NotNil(t, s.Existing)
	assert.Equal(t, names, s.Existing.Names)

	r := s.Existing.Range
	assert.Equal(t, rendered, (rendered + "\n")[r.Start:r.End])
}
