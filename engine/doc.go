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

// Package engine implements the ffiguard semantic-lint dispatcher.
//
// # Overview
//
// ffiguard inspects a program's resolved semantic representation for three
// classes of risky patterns:
//
//   - aggregate data crossing a C-compatible function boundary without a
//     declared, stable memory layout
//   - calls into a configured set of functions that are unsafe by
//     convention, such as raw memory-copy and allocation primitives
//   - verbose range comparisons equivalent to a single built-in ascii
//     classification predicate
//
// The host compiler owns parsing, name resolution, type information and
// traversal. It drives one [Engine] per compilation unit:
//
//	e := engine.New(h, sink, engine.WithDangerousFunctions([]string{"memcpy", "libc::strcpy"}))
//	e.BeginUnit()
//	for each item:       e.CheckItem(item)
//	for each expression: e.CheckExpr(expr)
//
// Every rule evaluation is a pure, terminating decision: either a
// [diag.Finding] goes to the sink or the construct is silently skipped.
// Malformed or unexpected semantic input is always treated as "rule does not
// apply", never as a failure, so one unusual construct cannot abort the
// surrounding analysis session.
package engine
