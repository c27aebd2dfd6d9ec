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

// Package hir defines the resolved semantic node model the host compiler
// hands to the lint engine.
//
// The engine never parses source text and never resolves names itself: the
// host constructs these nodes from its own syntax tree and type information
// and invokes the engine once per item and once per expression. Node kinds
// form a small tagged union dispatched with Go type switches, mirroring how
// the host's own representation distinguishes item, expression and pattern
// kinds.
//
// All nodes are immutable once handed to the engine and live only for the
// duration of one compilation unit's analysis.
package hir
