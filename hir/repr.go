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

// Repr holds the layout representation facets declared on an aggregate type.
// The facets govern the type's binary layout guarantees across a language
// boundary; they are queried live from the host's type system and never
// cached by the engine.
type Repr struct {
	// Packed removes padding between fields.
	Packed bool

	// Transparent gives the aggregate the layout of its single field.
	Transparent bool

	// C lays fields out in C declaration order.
	C bool

	// Simd gives the aggregate a vector layout.
	Simd bool

	// Aligned is set when an explicit minimum alignment is declared.
	Aligned bool
}
