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

// Package host defines the capability surface a compiler frontend provides
// to the lint engine.
//
// The engine is a pure consumer of these capabilities: it embeds no parser,
// no name resolution and no type system of its own. Tests exercise the rules
// against a synthetic implementation, decoupling rule correctness from any
// real toolchain.
package host

import "fillmore-labs.com/ffiguard/hir"

// Capability names a language feature threshold the engine may depend on.
type Capability uint8

//go:generate go tool stringer -type Capability -linecomment
const (
	// AsciiPredicates gates the built-in ascii classification predicates.
	AsciiPredicates Capability = iota // ascii-predicates

	// ConstAsciiPredicates gates the same predicates inside compile-time
	// evaluated contexts, which became usable later than the general form.
	ConstAsciiPredicates // const-ascii-predicates
)

// Host is the resolved-semantics query surface backing one compilation unit.
//
// Every method is a synchronous, terminating query over data the host has
// already resolved; none blocks, retries or fails. The host guarantees
// serialized, non-reentrant invocation of the engine within one unit.
type Host interface {
	// ResolvePath returns every definition matching the path segments, which
	// may be none. Multiple matches arise e.g. from multiple dependency
	// versions in one program.
	ResolvePath(segments []string) []hir.DefID

	// Repr returns the layout representation declared on an aggregate
	// definition. ok is false when def does not name an aggregate type.
	Repr(def hir.DefID) (repr hir.Repr, ok bool)

	// DefSpan returns the source span of a definition's declaration site.
	DefSpan(def hir.DefID) hir.Span

	// SourceText returns the literal source text of a span. ok is false when
	// the text cannot be rendered faithfully, e.g. for spans crossing a
	// macro-expansion boundary.
	SourceText(span hir.Span) (text string, ok bool)

	// Meets reports whether the current target configuration satisfies the
	// named capability threshold.
	Meets(c Capability) bool

	// InConstContext reports whether expr is evaluated at compile time.
	InConstContext(expr hir.Expr) bool
}
