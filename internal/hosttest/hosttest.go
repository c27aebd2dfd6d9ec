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

// Package hosttest provides a synthetic host implementation for rule tests,
// so rule correctness is tested without a real compiler toolchain.
package hosttest

import (
	"strings"

	"fillmore-labs.com/ffiguard/diag"
	"fillmore-labs.com/ffiguard/hir"
	"fillmore-labs.com/ffiguard/host"
)

// Host is a [host.Host] backed by plain maps. The zero value resolves
// nothing, grants no capabilities and recovers no source text.
type Host struct {
	// Defs maps "::"-joined paths to matching definitions.
	Defs map[string][]hir.DefID

	// Reprs holds the layout representation per aggregate definition.
	// Definitions absent from the map are not aggregates.
	Reprs map[hir.DefID]hir.Repr

	// Spans holds definition spans.
	Spans map[hir.DefID]hir.Span

	// Texts maps spans to recoverable source text.
	Texts map[hir.Span]string

	// Capabilities lists the satisfied capability thresholds.
	Capabilities map[host.Capability]bool

	// ConstExprs marks expressions evaluated at compile time.
	ConstExprs map[hir.Expr]bool
}

var _ host.Host = (*Host)(nil)

// ResolvePath implements [host.Host].
func (h *Host) ResolvePath(segments []string) []hir.DefID {
	return h.Defs[strings.Join(segments, "::")]
}

// Repr implements [host.Host].
func (h *Host) Repr(def hir.DefID) (hir.Repr, bool) {
	repr, ok := h.Reprs[def]

	return repr, ok
}

// DefSpan implements [host.Host].
func (h *Host) DefSpan(def hir.DefID) hir.Span {
	return h.Spans[def]
}

// SourceText implements [host.Host].
func (h *Host) SourceText(span hir.Span) (string, bool) {
	text, ok := h.Texts[span]

	return text, ok
}

// Meets implements [host.Host].
func (h *Host) Meets(c host.Capability) bool {
	return h.Capabilities[c]
}

// InConstContext implements [host.Host].
func (h *Host) InConstContext(expr hir.Expr) bool {
	return h.ConstExprs[expr]
}

// Recorder is a [diag.Sink] that collects findings in emission order.
type Recorder struct {
	Findings []diag.Finding
}

// Report implements [diag.Sink].
func (r *Recorder) Report(f diag.Finding) {
	r.Findings = append(r.Findings, f)
}
