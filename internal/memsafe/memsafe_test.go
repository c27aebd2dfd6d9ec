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

package memsafe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/ffiguard/diag"
	"fillmore-labs.com/ffiguard/hir"
	"fillmore-labs.com/ffiguard/internal/hosttest"
	"fillmore-labs.com/ffiguard/internal/memsafe"
	"fillmore-labs.com/ffiguard/internal/resolve"
)

func call(def hir.DefID, span hir.Span) *hir.CallExpr {
	return &hir.CallExpr{
		Fn:       &hir.PathExpr{Segments: []string{"libc", "memcpy"}, Def: def, ExprSpan: span},
		ExprSpan: span,
	}
}

func TestDangerousCallFlagged(t *testing.T) {
	t.Parallel()

	span := hir.Span{File: "main.rs", Start: 5, End: 25}
	sink := &hosttest.Recorder{}
	rule := memsafe.Rule{Sink: sink, Dangerous: resolve.Set{1: {}}}

	rule.CheckExpr(call(1, span))

	require.Len(t, sink.Findings, 1)
	f := sink.Findings[0]
	assert.Equal(t, memsafe.Name, f.Rule)
	assert.Equal(t, diag.SeverityNursery, f.Severity)
	assert.Equal(t, span, f.Span, "finding anchors at the call expression")
	assert.Empty(t, f.Suggestion, "no auto-suggested replacement for dangerous calls")
}

func TestEachCallSiteFlaggedIndependently(t *testing.T) {
	t.Parallel()

	sink := &hosttest.Recorder{}
	rule := memsafe.Rule{Sink: sink, Dangerous: resolve.Set{1: {}}}

	rule.CheckExpr(call(1, hir.Span{File: "main.rs", Start: 5, End: 25}))
	rule.CheckExpr(call(1, hir.Span{File: "main.rs", Start: 40, End: 60}))

	assert.Len(t, sink.Findings, 2)
}

func TestNonListedCallNotFlagged(t *testing.T) {
	t.Parallel()

	sink := &hosttest.Recorder{}
	rule := memsafe.Rule{Sink: sink, Dangerous: resolve.Set{1: {}}}

	// Structurally identical call to a different symbol.
	rule.CheckExpr(call(2, hir.Span{File: "main.rs", Start: 5, End: 25}))

	assert.Empty(t, sink.Findings)
}

func TestUnresolvedCalleeSkipped(t *testing.T) {
	t.Parallel()

	sink := &hosttest.Recorder{}
	rule := memsafe.Rule{Sink: sink, Dangerous: resolve.Set{1: {}}}

	// Call through a function value: the callee has no resolved symbol.
	rule.CheckExpr(call(hir.NoDef, hir.Span{File: "main.rs", Start: 5, End: 25}))

	// Callee that is not a path at all.
	rule.CheckExpr(&hir.CallExpr{
		Fn:       &hir.CallExpr{Fn: &hir.PathExpr{Def: 1}},
		ExprSpan: hir.Span{File: "main.rs", Start: 40, End: 60},
	})

	assert.Empty(t, sink.Findings)
}

func TestNonCallExpressionsIgnored(t *testing.T) {
	t.Parallel()

	sink := &hosttest.Recorder{}
	rule := memsafe.Rule{Sink: sink, Dangerous: resolve.Set{1: {}}}

	rule.CheckExpr(&hir.PathExpr{Def: 1, ExprSpan: hir.Span{File: "main.rs", Start: 5, End: 10}})

	assert.Empty(t, sink.Findings, "referencing a dangerous symbol is not calling it")
}
