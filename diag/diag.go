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

// Package diag defines the findings the lint engine emits and the sink
// interface through which the host receives them. The host owns rendering,
// deduplication across passes and suggestion application.
package diag

import "fillmore-labs.com/ffiguard/hir"

// Severity classifies a finding by rule group.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	// SeverityStyle marks idiomatic-replacement findings.
	SeverityStyle Severity = iota // style

	// SeverityPedantic marks findings that are strict but occasionally noisy.
	SeverityPedantic // pedantic

	// SeverityNursery marks findings from rules still under evaluation.
	SeverityNursery // nursery
)

// Confidence states whether a suggested replacement is safe for unattended
// application. The zero value demands review, so partially constructed
// findings fail safe.
type Confidence uint8

//go:generate go tool stringer -type Confidence -linecomment
const (
	// ConfidenceManualReview marks suggestions that need human review, e.g.
	// when the receiver's source text could not be recovered exactly.
	ConfidenceManualReview Confidence = iota // manual-review

	// ConfidenceAutoApply marks suggestions safe to apply mechanically.
	ConfidenceAutoApply // auto-apply
)

// Finding is the engine's sole externally visible output.
type Finding struct {
	// Rule identifies the rule that fired.
	Rule string

	// Severity is the rule's severity class.
	Severity Severity

	// Message describes the problem.
	Message string

	// Span anchors the finding in source.
	Span hir.Span

	// Suggestion is optional machine-generated replacement text. Empty when
	// the appropriate remediation is context-dependent and the rule does not
	// attempt to synthesize it.
	Suggestion string

	// Confidence qualifies Suggestion and is meaningful only when a
	// suggestion is present.
	Confidence Confidence
}

// Sink receives findings from the engine.
type Sink interface {
	Report(f Finding)
}

// SinkFunc adapts a function to the [Sink] interface.
type SinkFunc func(Finding)

// Report calls f.
func (f SinkFunc) Report(finding Finding) { f(finding) }
