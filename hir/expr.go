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

package hir

// Expr is a resolved expression node.
type Expr interface {
	isExpr()
	Span() Span
}

// CallExpr is a function call.
type CallExpr struct {
	Fn       Expr
	Args     []Expr
	ExprSpan Span
}

// PathExpr names a definition. Def is [NoDef] when the host could not resolve
// the path to a single symbol, e.g. for calls through function values.
type PathExpr struct {
	Segments []string
	Def      DefID
	ExprSpan Span
}

// LitKind distinguishes literal expression kinds.
type LitKind uint8

const (
	// LitChar is a character literal.
	LitChar LitKind = iota

	// LitByte is a byte literal.
	LitByte

	// LitInt is an integer literal.
	LitInt

	// LitStr is a string literal.
	LitStr
)

// LitExpr is a literal. Value holds the code point for character and byte
// literals; Text holds the raw literal text for the remaining kinds.
type LitExpr struct {
	Kind     LitKind
	Value    rune
	Text     string
	ExprSpan Span
}

// MatchSource records what surface syntax a selector expression was lowered
// from.
type MatchSource uint8

const (
	// MatchNormal is an ordinary selector expression.
	MatchNormal MatchSource = iota

	// MatchFromMatchesMacro marks a selector desugared from the boolean
	// "does this value match this pattern" macro. Its span is the span of
	// the macro invocation.
	MatchFromMatchesMacro
)

// Arm is one selector arm.
type Arm struct {
	Pat   Pat
	Guard Expr // nil when the arm has no guard
	Body  Expr
}

// MatchExpr is a selector over a scrutinee expression.
type MatchExpr struct {
	Scrutinee Expr
	Arms      []Arm
	Source    MatchSource
	ExprSpan  Span
}

func (*CallExpr) isExpr()  {}
func (*PathExpr) isExpr()  {}
func (*LitExpr) isExpr()   {}
func (*MatchExpr) isExpr() {}

// Span returns the call's source span.
func (e *CallExpr) Span() Span { return e.ExprSpan }

// Span returns the path's source span.
func (e *PathExpr) Span() Span { return e.ExprSpan }

// Span returns the literal's source span.
func (e *LitExpr) Span() Span { return e.ExprSpan }

// Span returns the selector's source span.
func (e *MatchExpr) Span() Span { return e.ExprSpan }
