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

// Pat is a selector arm pattern.
type Pat interface {
	isPat()
}

// RangePat tests membership in an interval between two literal endpoints.
type RangePat struct {
	Lo        Expr
	Hi        Expr
	Inclusive bool
}

// OrPat is an alternation of patterns.
type OrPat struct {
	Pats []Pat
}

// LitPat matches one literal value.
type LitPat struct {
	Lit *LitExpr
}

// BindPat binds the scrutinee to a name.
type BindPat struct {
	Name string
}

// WildPat matches anything.
type WildPat struct{}

func (*RangePat) isPat() {}
func (*OrPat) isPat()    {}
func (*LitPat) isPat()   {}
func (*BindPat) isPat()  {}
func (*WildPat) isPat()  {}
