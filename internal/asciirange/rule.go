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

// Package asciirange recognizes verbose range comparisons over a closed ascii
// interval and proposes the equivalent built-in classification predicate.
package asciirange

import (
	"fmt"

	"fillmore-labs.com/ffiguard/diag"
	"fillmore-labs.com/ffiguard/hir"
	"fillmore-labs.com/ffiguard/host"
)

// Name identifies the rule in findings.
const Name = "manual-is-ascii-check"

const message = "manual check for a common ascii range"

// placeholder stands in for receiver text that could not be recovered.
const placeholder = ".."

// Rule is the range-idiom check.
type Rule struct {
	Host host.Host
	Sink diag.Sink
}

// CheckExpr examines one expression. The rule is inert unless the base
// capability for the ascii predicates is met, and inert inside compile-time
// evaluated contexts unless the stricter const-context capability is met as
// well: the predicates became usable in constant contexts later than in
// general ones.
func (r Rule) CheckExpr(expr hir.Expr) {
	if !r.Host.Meets(host.AsciiPredicates) {
		return
	}

	m, ok := expr.(*hir.MatchExpr)
	if !ok || m.Source != hir.MatchFromMatchesMacro || len(m.Arms) == 0 {
		return
	}

	if r.Host.InConstContext(expr) && !r.Host.Meets(host.ConstAsciiPredicates) {
		return
	}

	// The macro desugars to a first pattern arm plus a catch-all; only the
	// first arm carries the shape of interest. A guard defeats equivalence.
	arm := m.Arms[0]
	if arm.Guard != nil {
		return
	}

	predicate, ok := predicate(Classify(arm.Pat))
	if !ok {
		return
	}

	// Recoverable receiver text makes the rewrite safe to apply mechanically;
	// a placeholder demands review so unreliable extraction never produces an
	// unsafe automatic rewrite.
	confidence := diag.ConfidenceAutoApply

	recv, ok := r.Host.SourceText(m.Scrutinee.Span())
	if !ok {
		recv, confidence = placeholder, diag.ConfidenceManualReview
	}

	r.Sink.Report(diag.Finding{
		Rule:       Name,
		Severity:   diag.SeverityStyle,
		Message:    message,
		Span:       m.Span(),
		Suggestion: fmt.Sprintf("%s.%s()", recv, predicate),
		Confidence: confidence,
	})
}

// predicate names the built-in replacement for a recognized range.
func predicate(r CharRange) (string, bool) {
	switch r {
	case LowerAscii:
		return "is_ascii_lowercase", true
	case UpperAscii:
		return "is_ascii_uppercase", true
	case AllAscii:
		return "is_ascii_alphabetic", true
	case AsciiDigit:
		return "is_ascii_digit", true
	default:
		return "", false
	}
}
