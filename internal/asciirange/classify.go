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

package asciirange

import "fillmore-labs.com/ffiguard/hir"

// CharRange classifies a selector arm's pattern shape. The explicit NoMatch
// variant is deliberate: downstream logic distinguishes "shape not
// recognized" from a recognized range, and collapsing the two into a boolean
// would lose that.
type CharRange uint8

//go:generate go tool stringer -type CharRange -linecomment
const (
	// NoMatch is every pattern shape the rule does not recognize.
	NoMatch CharRange = iota // no-match

	// LowerAscii is 'a'..='z' or the byte equivalent.
	LowerAscii // lower

	// UpperAscii is 'A'..='Z' or the byte equivalent.
	UpperAscii // upper

	// AllAscii is the alternation of LowerAscii and UpperAscii.
	AllAscii // alphabetic

	// AsciiDigit is '0'..='9' or the byte equivalent.
	AsciiDigit // digit
)

// Classify maps a pattern to the ascii range it tests. Alternations are
// recognized only as exactly two patterns classifying to LowerAscii and
// UpperAscii in either order; ranges only with inclusive ends and literal
// endpoints of the same literal kind.
func Classify(pat hir.Pat) CharRange {
	switch p := pat.(type) {
	case *hir.OrPat:
		if len(p.Pats) != 2 {
			return NoMatch
		}

		a, b := Classify(p.Pats[0]), Classify(p.Pats[1])
		if (a == LowerAscii && b == UpperAscii) || (a == UpperAscii && b == LowerAscii) {
			return AllAscii
		}

		return NoMatch

	case *hir.RangePat:
		if !p.Inclusive {
			return NoMatch
		}

		return classifyRange(p.Lo, p.Hi)

	default:
		return NoMatch
	}
}

// classifyRange recognizes the three closed endpoint pairs.
func classifyRange(lo, hi hir.Expr) CharRange {
	start, kind, ok := charLit(lo)
	if !ok {
		return NoMatch
	}

	end, endKind, ok := charLit(hi)
	if !ok || kind != endKind {
		return NoMatch
	}

	switch {
	case start == 'a' && end == 'z':
		return LowerAscii
	case start == 'A' && end == 'Z':
		return UpperAscii
	case start == '0' && end == '9':
		return AsciiDigit
	default:
		return NoMatch
	}
}

// charLit extracts the code point of a character or byte literal endpoint.
func charLit(e hir.Expr) (rune, hir.LitKind, bool) {
	lit, ok := e.(*hir.LitExpr)
	if !ok || (lit.Kind != hir.LitChar && lit.Kind != hir.LitByte) {
		return 0, 0, false
	}

	return lit.Value, lit.Kind, true
}
