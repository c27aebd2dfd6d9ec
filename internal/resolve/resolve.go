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

// Package resolve turns configured function-name strings into canonical
// symbol identities for call-site comparison.
package resolve

import (
	"strings"

	"fillmore-labs.com/ffiguard/hir"
	"fillmore-labs.com/ffiguard/host"
)

// PathSeparator splits the segments of a qualified configured name.
const PathSeparator = "::"

// Set is a collection of dangerous symbol identities. It is built once at
// compilation-unit start and read-only afterward; membership is the only
// operation used downstream.
type Set map[hir.DefID]struct{}

// Contains reports whether def is in the set.
func (s Set) Contains(def hir.DefID) bool {
	_, ok := s[def]

	return ok
}

// Build resolves configured names against the host's symbol table.
//
// Qualified names ("aa::bb::cc") may match any number of definitions, e.g.
// when a program links several versions of one dependency; every match joins
// the set. Plain names are tried under the well-known library namespace, first
// match only. Names that resolve to nothing are dropped silently: calls to
// them can never be flagged. Rejecting unknown names instead would make the
// configuration brittle across differing dependency graphs, so unresolvable
// entries are a configuration-authoring concern rather than an engine error.
func Build(h host.Host, names []string, libNamespace string) Set {
	set := make(Set, len(names))

	for _, name := range names {
		if strings.Contains(name, PathSeparator) {
			for _, def := range h.ResolvePath(strings.Split(name, PathSeparator)) {
				set[def] = struct{}{}
			}

			continue
		}

		// A bare name is a candidate for the well-known library namespace.
		if defs := h.ResolvePath([]string{libNamespace, name}); len(defs) > 0 {
			set[defs[0]] = struct{}{}
		}
	}

	return set
}
