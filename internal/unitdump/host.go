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

package unitdump

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"fillmore-labs.com/ffiguard/hir"
	"fillmore-labs.com/ffiguard/host"
)

// minVersions maps each capability to the language version that introduced
// it.
var minVersions = map[host.Capability]string{
	host.AsciiPredicates:      "v1.24.0",
	host.ConstAsciiPredicates: "v1.47.0",
}

// Host implements [host.Host] over a decoded dump.
type Host struct {
	files      map[string]string
	reprs      map[hir.DefID]hir.Repr
	spans      map[hir.DefID]hir.Span
	paths      map[string][]hir.DefID
	constExprs map[hir.Expr]struct{}

	// version is the pinned target language version in canonical semver
	// form, or empty when unpinned. Unpinned targets satisfy every
	// capability.
	version string
}

var _ host.Host = (*Host)(nil)

func newHost(raw unitJSON) *Host {
	h := &Host{
		files:      raw.Files,
		reprs:      make(map[hir.DefID]hir.Repr, len(raw.Defs)),
		spans:      make(map[hir.DefID]hir.Span, len(raw.Defs)),
		paths:      make(map[string][]hir.DefID, len(raw.Defs)),
		constExprs: make(map[hir.Expr]struct{}),
	}

	for _, def := range raw.Defs {
		id := hir.DefID(def.ID)

		if def.Repr != nil {
			h.reprs[id] = def.Repr.repr()
		}

		h.spans[id] = def.Span.span()
		h.paths[def.Path] = append(h.paths[def.Path], id)
	}

	return h
}

// SetLanguageVersion pins the target language version used for capability
// gating, e.g. "1.47.0". An explicit setting overrides the version recorded
// in the dump.
func (h *Host) SetLanguageVersion(version string) error {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	if !semver.IsValid(v) {
		return fmt.Errorf("%w: bad language version %q", ErrInvalidDump, version)
	}

	h.version = v

	return nil
}

// markConst records expr and every nested expression as compile-time
// evaluated.
func (h *Host) markConst(expr hir.Expr) {
	hir.Walk(expr, func(e hir.Expr) {
		h.constExprs[e] = struct{}{}
	})
}

// ResolvePath implements [host.Host].
func (h *Host) ResolvePath(segments []string) []hir.DefID {
	return h.paths[strings.Join(segments, "::")]
}

// Repr implements [host.Host].
func (h *Host) Repr(def hir.DefID) (hir.Repr, bool) {
	repr, ok := h.reprs[def]

	return repr, ok
}

// DefSpan implements [host.Host].
func (h *Host) DefSpan(def hir.DefID) hir.Span {
	return h.spans[def]
}

// SourceText implements [host.Host]. Spans outside the dump's file texts are
// unrecoverable, which is how the frontend signals macro-expansion
// boundaries.
func (h *Host) SourceText(span hir.Span) (string, bool) {
	src, ok := h.files[span.File]
	if !ok || !span.Valid() || span.Start < 0 || span.End > len(src) {
		return "", false
	}

	return src[span.Start:span.End], true
}

// Meets implements [host.Host].
func (h *Host) Meets(c host.Capability) bool {
	min, ok := minVersions[c]
	if !ok {
		return false
	}

	if h.version == "" {
		return true
	}

	return semver.Compare(h.version, min) >= 0
}

// InConstContext implements [host.Host].
func (h *Host) InConstContext(expr hir.Expr) bool {
	_, ok := h.constExprs[expr]

	return ok
}
