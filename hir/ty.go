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

// Ty is a resolved type reference.
type Ty interface {
	isTy()
}

// AdtTy is a nominal aggregate type (structure, union or tagged union),
// identified by the definition it refers to.
type AdtTy struct {
	Def  DefID
	Name string
}

// PtrTy is a raw pointer type.
type PtrTy struct {
	Elem Ty
}

// RefTy is a reference type.
type RefTy struct {
	Elem Ty
}

// PrimTy is a primitive scalar type.
type PrimTy struct {
	Name string
}

func (*AdtTy) isTy()  {}
func (*PtrTy) isTy()  {}
func (*RefTy) isTy()  {}
func (*PrimTy) isTy() {}

// Peel strips pointer and reference indirection, returning the underlying
// type. Layout stability is a property of the type itself, not of how it is
// passed, so boundary checks always peel before inspecting.
func Peel(t Ty) Ty {
	for {
		switch inner := t.(type) {
		case *PtrTy:
			t = inner.Elem
		case *RefTy:
			t = inner.Elem
		default:
			return t
		}
	}
}
