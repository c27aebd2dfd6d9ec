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

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/ffiguard/engine"
	"fillmore-labs.com/ffiguard/hir"
	"fillmore-labs.com/ffiguard/host"
	"fillmore-labs.com/ffiguard/internal/hosttest"
)

const (
	memcpyDef hir.DefID = 1
	fooDef    hir.DefID = 2
)

// newHost models a unit with libc::memcpy and one bare aggregate Foo.
func newHost() *hosttest.Host {
	return &hosttest.Host{
		Defs:  map[string][]hir.DefID{"libc::memcpy": {memcpyDef}},
		Reprs: map[hir.DefID]hir.Repr{fooDef: {}},
		Spans: map[hir.DefID]hir.Span{fooDef: {File: "lib.rs", Start: 1, End: 20}},
		Capabilities: map[host.Capability]bool{
			host.AsciiPredicates:      true,
			host.ConstAsciiPredicates: true,
		},
	}
}

func memcpyCall() *hir.CallExpr {
	return &hir.CallExpr{
		Fn:       &hir.PathExpr{Segments: []string{"libc", "memcpy"}, Def: memcpyDef},
		ExprSpan: hir.Span{File: "main.rs", Start: 30, End: 60},
	}
}

func bareFooBoundary() *hir.FnItem {
	return &hir.FnItem{
		Name:   "f",
		Abi:    hir.AbiC,
		Params: []hir.Ty{&hir.AdtTy{Def: fooDef, Name: "Foo"}},
	}
}

func lowerMatches() *hir.MatchExpr {
	return &hir.MatchExpr{
		Scrutinee: &hir.PathExpr{Segments: []string{"c"}},
		Arms: []hir.Arm{
			{Pat: &hir.RangePat{
				Lo:        &hir.LitExpr{Kind: hir.LitChar, Value: 'a'},
				Hi:        &hir.LitExpr{Kind: hir.LitChar, Value: 'z'},
				Inclusive: true,
			}},
			{Pat: &hir.WildPat{}},
		},
		Source:   hir.MatchFromMatchesMacro,
		ExprSpan: hir.Span{File: "main.rs", Start: 70, End: 100},
	}
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	sink := &hosttest.Recorder{}
	e := New(newHost(), sink, WithDangerousFunctions([]string{"memcpy"}))

	e.BeginUnit()
	e.CheckItem(bareFooBoundary())
	e.CheckExpr(memcpyCall())
	e.CheckExpr(lowerMatches())

	require.Len(t, sink.Findings, 3)

	rules := make([]string, 0, len(sink.Findings))
	for _, f := range sink.Findings {
		rules = append(rules, f.Rule)
	}

	assert.Equal(t, []string{"extern-without-repr", "mem-unsafe-functions", "manual-is-ascii-check"}, rules)
}

func TestRuleToggles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Option
		want    int
	}{
		{
			name:    "AllDefault",
			options: Options{WithDangerousFunctions([]string{"memcpy"})},
			want:    3,
		},
		{
			name:    "LayoutOff",
			options: Options{WithDangerousFunctions([]string{"memcpy"}), WithLayout(false)},
			want:    2,
		},
		{
			name:    "DangerousCallsOff",
			options: Options{WithDangerousFunctions([]string{"memcpy"}), WithDangerousCalls(false)},
			want:    2,
		},
		{
			name:    "AsciiRangeOff",
			options: Options{WithDangerousFunctions([]string{"memcpy"}), WithAsciiRange(false)},
			want:    2,
		},
		{
			name:    "EverythingOff",
			options: Options{WithLayout(false), WithDangerousCalls(false), WithAsciiRange(false)},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sink := &hosttest.Recorder{}
			e := New(newHost(), sink, tt.options)

			e.BeginUnit()
			e.CheckItem(bareFooBoundary())
			e.CheckExpr(memcpyCall())
			e.CheckExpr(lowerMatches())

			assert.Len(t, sink.Findings, tt.want)
		})
	}
}

func TestNoDangerousConfigNoCallFindings(t *testing.T) {
	t.Parallel()

	sink := &hosttest.Recorder{}
	e := New(newHost(), sink)

	e.BeginUnit()
	e.CheckExpr(memcpyCall())

	assert.Empty(t, sink.Findings)
}

func TestWithoutBeginUnitCallsNeverFlagged(t *testing.T) {
	t.Parallel()

	sink := &hosttest.Recorder{}
	e := New(newHost(), sink, WithDangerousFunctions([]string{"memcpy"}))

	// The dangerous set is only resolved at unit start.
	e.CheckExpr(memcpyCall())

	assert.Empty(t, sink.Findings)
}

func TestLibraryNamespaceOption(t *testing.T) {
	t.Parallel()

	h := newHost()
	h.Defs = map[string][]hir.DefID{"sys::memcpy": {memcpyDef}}

	sink := &hosttest.Recorder{}
	e := New(h, sink, Options{
		WithDangerousFunctions([]string{"memcpy"}),
		WithLibraryNamespace("sys"),
	})

	e.BeginUnit()
	e.CheckExpr(memcpyCall())

	assert.Len(t, sink.Findings, 1)
}

func TestEnginesIndependentAcrossUnits(t *testing.T) {
	t.Parallel()

	// Two engines over differing program state do not share resolution
	// results.
	empty := &hosttest.Host{}

	first := &hosttest.Recorder{}
	e1 := New(newHost(), first, WithDangerousFunctions([]string{"memcpy"}))
	e1.BeginUnit()
	e1.CheckExpr(memcpyCall())

	second := &hosttest.Recorder{}
	e2 := New(empty, second, WithDangerousFunctions([]string{"memcpy"}))
	e2.BeginUnit()
	e2.CheckExpr(memcpyCall())

	assert.Len(t, first.Findings, 1)
	assert.Empty(t, second.Findings)
}
