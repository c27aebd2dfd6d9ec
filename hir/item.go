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

// Abi tags a function boundary with its binary calling protocol.
type Abi uint8

const (
	// AbiDefault is the analyzed language's native calling convention.
	AbiDefault Abi = iota

	// AbiC is the C-compatible calling convention, with or without unwind
	// support. Only this convention carries cross-language layout guarantees
	// worth enforcing.
	AbiC

	// AbiOther covers every remaining convention.
	AbiOther
)

// Item is a top-level syntactic unit supplied by the host.
type Item interface {
	isItem()
	Span() Span
}

// FnItem is a function definition.
type FnItem struct {
	Name     string
	Abi      Abi
	Params   []Ty
	ItemSpan Span
}

// ForeignMod is a foreign declaration block: an extern module whose contents
// are defined outside the analyzed program.
type ForeignMod struct {
	Abi      Abi
	Decls    []*ForeignFn
	ItemSpan Span
}

// ForeignFn is a function declared inside a [ForeignMod].
type ForeignFn struct {
	Name     string
	Params   []Ty
	DeclSpan Span
}

func (*FnItem) isItem()     {}
func (*ForeignMod) isItem() {}

// Span returns the definition's source span.
func (i *FnItem) Span() Span { return i.ItemSpan }

// Span returns the declaration block's source span.
func (i *ForeignMod) Span() Span { return i.ItemSpan }
