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

// Walk calls fn for expr and every expression nested within it, outermost
// first. Pattern-internal literals are not visited; the host's own traversal
// conventions treat them as pattern structure rather than expressions.
//
// Walk is a convenience for hosts driving the engine; the engine itself never
// initiates traversal.
func Walk(expr Expr, fn func(Expr)) {
	if expr == nil {
		return
	}

	fn(expr)

	switch e := expr.(type) {
	case *CallExpr:
		Walk(e.Fn, fn)
		for _, arg := range e.Args {
			Walk(arg, fn)
		}

	case *MatchExpr:
		Walk(e.Scrutinee, fn)
		for _, arm := range e.Arms {
			Walk(arm.Guard, fn)
			Walk(arm.Body, fn)
		}
	}
}
