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

// Package memsafe flags calls into the configured set of functions that are
// unsafe by convention, such as raw memory-copy and allocation primitives.
package memsafe

import (
	"fillmore-labs.com/ffiguard/diag"
	"fillmore-labs.com/ffiguard/hir"
	"fillmore-labs.com/ffiguard/internal/resolve"
)

// Name identifies the rule in findings.
const Name = "mem-unsafe-functions"

const message = "call to a potentially dangerous external function"

// Rule is the dangerous-call check. It tests callee identity per call site
// and performs no data-flow analysis, trading recall of indirect misuse for
// precision.
type Rule struct {
	Sink diag.Sink

	// Dangerous is the frozen symbol set built at unit start.
	Dangerous resolve.Set
}

// CheckExpr examines one expression. Each call site is evaluated
// independently; no suggestion is attached because the appropriate
// remediation is context-dependent safe wrapping.
func (r Rule) CheckExpr(expr hir.Expr) {
	call, ok := expr.(*hir.CallExpr)
	if !ok {
		return
	}

	def, ok := callee(call)
	if !ok {
		return // call through a value, no named symbol to compare
	}

	if !r.Dangerous.Contains(def) {
		return
	}

	r.Sink.Report(diag.Finding{
		Rule:     Name,
		Severity: diag.SeverityNursery,
		Message:  message,
		Span:     call.Span(),
	})
}

// callee resolves the call target to a symbol identity. ok is false when the
// callee is not a resolved named path.
func callee(call *hir.CallExpr) (hir.DefID, bool) {
	path, ok := call.Fn.(*hir.PathExpr)
	if !ok || path.Def == hir.NoDef {
		return hir.NoDef, false
	}

	return path.Def, true
}
