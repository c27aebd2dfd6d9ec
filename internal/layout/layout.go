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

// Package layout checks that aggregate types crossing a C-compatible function
// boundary declare an explicit, stable memory layout.
package layout

import (
	"fillmore-labs.com/ffiguard/diag"
	"fillmore-labs.com/ffiguard/hir"
	"fillmore-labs.com/ffiguard/host"
)

// Name identifies the rule in findings.
const Name = "extern-without-repr"

const message = "aggregate passed across a C boundary should declare an explicit layout representation"

// Rule is the layout check. It fires on outbound definitions (functions
// defined with an explicit C calling convention) and inbound declarations
// (foreign modules tagged C-compatible). Other conventions carry no
// cross-language layout guarantee to enforce against.
type Rule struct {
	Host host.Host
	Sink diag.Sink
}

// CheckItem examines one item. Findings anchor at the offending type's
// definition span rather than the boundary, since the fix belongs on the
// type, not on each usage. Boundaries are checked independently, so a type
// referenced by several boundaries is reported once per boundary.
func (r Rule) CheckItem(item hir.Item) {
	switch it := item.(type) {
	case *hir.FnItem:
		if it.Abi != hir.AbiC {
			return
		}

		r.checkParams(it.Params, false)

	case *hir.ForeignMod:
		if it.Abi != hir.AbiC {
			return
		}

		for _, decl := range it.Decls {
			// The inbound path additionally accepts the simd facet.
			r.checkParams(decl.Params, true)
		}
	}
}

// checkParams flags every aggregate-typed parameter whose definition declares
// no stable layout. Pointer and reference indirection is stripped first:
// layout stability is a property of the type, not of how it is passed.
func (r Rule) checkParams(params []hir.Ty, allowSimd bool) {
	for _, param := range params {
		adt, ok := hir.Peel(param).(*hir.AdtTy)
		if !ok {
			continue // primitives and non-aggregate targets are never flagged
		}

		repr, ok := r.Host.Repr(adt.Def)
		if !ok {
			continue
		}

		if stable(repr, allowSimd) {
			continue
		}

		r.Sink.Report(diag.Finding{
			Rule:     Name,
			Severity: diag.SeverityPedantic,
			Message:  message,
			Span:     r.Host.DefSpan(adt.Def),
		})
	}
}

// stable reports whether at least one accepted layout facet is declared.
func stable(repr hir.Repr, allowSimd bool) bool {
	if repr.Packed || repr.Transparent || repr.C || repr.Aligned {
		return true
	}

	return allowSimd && repr.Simd
}
