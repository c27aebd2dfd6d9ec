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

import "fmt"

// Span locates a source region as half-open byte offsets within a file.
// The zero value is the invalid span.
type Span struct {
	File  string
	Start int
	End   int
}

// NoSpan is the invalid span, used when a node has no recoverable location.
var NoSpan = Span{}

// Valid reports whether the span names a file and a non-empty region.
func (s Span) Valid() bool {
	return s.File != "" && s.End >= s.Start
}

// String renders the span as file:start-end for diagnostics.
func (s Span) String() string {
	if !s.Valid() {
		return "<unknown>"
	}

	return fmt.Sprintf("%s:%d-%d", s.File, s.Start, s.End)
}

// DefID is an opaque, stable identifier for a named definition in the host's
// symbol table. It is produced only by the host's resolution facilities and is
// comparable for equality; the engine attaches no further meaning to it.
type DefID uint64

// NoDef is the zero DefID, marking an unresolved reference.
const NoDef DefID = 0
