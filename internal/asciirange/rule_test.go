// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package asciirange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/ffiguard/diag"
	"fillmore-labs.com/ffiguard/hir"
	"fillmore-labs.com/ffiguard/host"
	"fillmore-labs.com/ffiguard/internal/asciirange"
	"fillmore-labs.com/ffiguard/internal/hosttest"
)

var recvSpan = hir.Span{File: "main.rs", Start: 20, End: 21}

// matchesExpr builds a selector desugared from the boolean matches macro,
// with the macro's catch-all arm in place.
func matchesExpr(pat hir.Pat, guard hir.Expr) *hir.MatchExpr {
	return &hir.MatchExpr{
		Scrutinee: &hir.PathExpr{Segments: []string{"c"}, ExprSpan: recvSpan},
		Arms: []hir.Arm{
			{Pat: pat, Guard: guard},
			{Pat: &hir.WildPat{}},
		},
		Source:   hir.MatchFromMatchesMacro,
		ExprSpan: hir.Span{File: "main.rs", Start: 12, End: 42},
	}
}

// newHost grants both capabilities and recovers the receiver text "c".
func newHost() *hosttest.Host {
	return &hosttest.Host{
		Capabilities: map[host.Capability]bool{
			host.AsciiPredicates:      true,
			host.ConstAsciiPredicates: true,
		},
		Texts: map[hir.Span]string{recvSpan: "c"},
	}
}

func TestSuggestions(t *testing.T) {
	t.Parallel()

	lower := incl(lit(hir.LitChar, 'a'), lit(hir.LitChar, 'z'))
	upper := incl(lit(hir.LitChar, 'A'), lit(hir.LitChar, 'Z'))

	tests := []struct {
		name string
		pat  hir.Pat
		want string
	}{
		{
			name: "Lower",
			pat:  lower,
			want: "c.is_ascii_lowercase()",
		},
		{
			name: "UpperBytes",
			pat:  incl(lit(hir.LitByte, 'A'), lit(hir.LitByte, 'Z')),
			want: "c.is_ascii_uppercase()",
		},
		{
			name: "Digit",
			pat:  incl(lit(hir.LitChar, '0'), lit(hir.LitChar, '9')),
			want: "c.is_ascii_digit()",
		},
		{
			name: "Alphabetic",
			pat:  &hir.OrPat{Pats: []hir.Pat{upper, lower}},
			want: "c.is_ascii_alphabetic()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sink := &hosttest.Recorder{}
			rule := asciirange.Rule{Host: newHost(), Sink: sink}

			rule.CheckExpr(matchesExpr(tt.pat, nil))

			require.Len(t, sink.Findings, 1)
			f := sink.Findings[0]
			assert.Equal(t, asciirange.Name, f.Rule)
			assert.Equal(t, diag.SeverityStyle, f.Severity)
			assert.Equal(t, tt.want, f.Suggestion)
			assert.Equal(t, diag.ConfidenceAutoApply, f.Confidence)
		})
	}
}

func TestShapesThatNeverFire(t *testing.T) {
	t.Parallel()

	lower := incl(lit(hir.LitChar, 'a'), lit(hir.LitChar, 'z'))

	tests := []struct {
		name string
		expr hir.Expr
	}{
		{
			name: "TruncatedRange",
			expr: matchesExpr(incl(lit(hir.LitChar, 'a'), lit(hir.LitChar, 'y')), nil),
		},
		{
			name: "Guarded",
			expr: matchesExpr(lower, &hir.PathExpr{Segments: []string{"extra"}}),
		},
		{
			name: "PlainSelector",
			expr: &hir.MatchExpr{
				Scrutinee: &hir.PathExpr{Segments: []string{"c"}, ExprSpan: recvSpan},
				Arms:      []hir.Arm{{Pat: lower}, {Pat: &hir.WildPat{}}},
				Source:    hir.MatchNormal,
			},
		},
		{
			name: "NoArms",
			expr: &hir.MatchExpr{
				Scrutinee: &hir.PathExpr{Segments: []string{"c"}, ExprSpan: recvSpan},
				Source:    hir.MatchFromMatchesMacro,
			},
		},
		{
			name: "NotASelector",
			expr: &hir.PathExpr{Segments: []string{"c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sink := &hosttest.Recorder{}
			rule := asciirange.Rule{Host: newHost(), Sink: sink}

			rule.CheckExpr(tt.expr)

			assert.Empty(t, sink.Findings)
		})
	}
}

func TestCapabilityGating(t *testing.T) {
	t.Parallel()

	lower := incl(lit(hir.LitChar, 'a'), lit(hir.LitChar, 'z'))

	t.Run("BaseUnmet", func(t *testing.T) {
		t.Parallel()

		h := newHost()
		h.Capabilities = nil

		sink := &hosttest.Recorder{}
		rule := asciirange.Rule{Host: h, Sink: sink}

		rule.CheckExpr(matchesExpr(lower, nil))

		assert.Empty(t, sink.Findings)
	})

	t.Run("ConstContextNeedsStricterCapability", func(t *testing.T) {
		t.Parallel()

		h := newHost()
		h.Capabilities[host.ConstAsciiPredicates] = false

		constExpr := matchesExpr(lower, nil)
		h.ConstExprs = map[hir.Expr]bool{constExpr: true}

		sink := &hosttest.Recorder{}
		rule := asciirange.Rule{Host: h, Sink: sink}

		rule.CheckExpr(constExpr)
		assert.Empty(t, sink.Findings, "compile-time context below the const threshold stays inert")

		rule.CheckExpr(matchesExpr(lower, nil))
		assert.Len(t, sink.Findings, 1, "the same shape outside a const context fires")
	})

	t.Run("ConstContextWithCapability", func(t *testing.T) {
		t.Parallel()

		h := newHost()
		constExpr := matchesExpr(lower, nil)
		h.ConstExprs = map[hir.Expr]bool{constExpr: true}

		sink := &hosttest.Recorder{}
		rule := asciirange.Rule{Host: h, Sink: sink}

		rule.CheckExpr(constExpr)

		assert.Len(t, sink.Findings, 1)
	})
}

func TestConfidenceTracksTextRecovery(t *testing.T) {
	t.Parallel()

	lower := incl(lit(hir.LitChar, 'a'), lit(hir.LitChar, 'z'))

	t.Run("Recoverable", func(t *testing.T) {
		t.Parallel()

		sink := &hosttest.Recorder{}
		rule := asciirange.Rule{Host: newHost(), Sink: sink}

		rule.CheckExpr(matchesExpr(lower, nil))

		require.Len(t, sink.Findings, 1)
		assert.Equal(t, diag.ConfidenceAutoApply, sink.Findings[0].Confidence)
	})

	t.Run("Unrecoverable", func(t *testing.T) {
		t.Parallel()

		h := newHost()
		h.Texts = nil // receiver spans a macro-expansion boundary

		sink := &hosttest.Recorder{}
		rule := asciirange.Rule{Host: h, Sink: sink}

		rule.CheckExpr(matchesExpr(lower, nil))

		require.Len(t, sink.Findings, 1)
		f := sink.Findings[0]
		assert.Equal(t, diag.ConfidenceManualReview, f.Confidence, "finding is demoted, not suppressed")
		assert.Equal(t, "...is_ascii_lowercase()", f.Suggestion)
	})
}
