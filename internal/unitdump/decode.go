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

package unitdump

import (
	"encoding/json"
	"fmt"

	"fillmore-labs.com/ffiguard/hir"
)

// unitJSON is the wire shape of a dump.
type unitJSON struct {
	Unit            string            `json:"unit"`
	LanguageVersion string            `json:"language_version,omitempty"`
	Files           map[string]string `json:"files,omitempty"`
	Defs            []defJSON         `json:"defs,omitempty"`
	Items           []json.RawMessage `json:"items,omitempty"`
	Exprs           []json.RawMessage `json:"exprs,omitempty"`
}

// defJSON is one symbol-table entry. Repr is present exactly for aggregate
// definitions.
type defJSON struct {
	ID   uint64    `json:"id"`
	Path string    `json:"path"`
	Repr *reprJSON `json:"repr,omitempty"`
	Span spanJSON  `json:"span"`
}

type reprJSON struct {
	Packed      bool `json:"packed,omitempty"`
	Transparent bool `json:"transparent,omitempty"`
	C           bool `json:"c,omitempty"`
	Simd        bool `json:"simd,omitempty"`
	Aligned     bool `json:"aligned,omitempty"`
}

func (r reprJSON) repr() hir.Repr {
	return hir.Repr{
		Packed:      r.Packed,
		Transparent: r.Transparent,
		C:           r.C,
		Simd:        r.Simd,
		Aligned:     r.Aligned,
	}
}

type spanJSON struct {
	File  string `json:"file,omitempty"`
	Start int    `json:"start,omitempty"`
	End   int    `json:"end,omitempty"`
}

func (s spanJSON) span() hir.Span {
	return hir.Span{File: s.File, Start: s.Start, End: s.End}
}

// kindOf peeks at the kind tag of a polymorphic node.
func kindOf(raw json.RawMessage) (string, error) {
	var tag struct {
		Kind string `json:"kind"`
	}

	if err := json.Unmarshal(raw, &tag); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDump, err)
	}

	return tag.Kind, nil
}

func decodeItem(raw json.RawMessage) (hir.Item, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "fn":
		var n struct {
			Name   string            `json:"name"`
			Abi    string            `json:"abi,omitempty"`
			Params []json.RawMessage `json:"params,omitempty"`
			Span   spanJSON          `json:"span"`
		}

		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: fn: %w", ErrInvalidDump, err)
		}

		params, err := decodeTys(n.Params)
		if err != nil {
			return nil, err
		}

		return &hir.FnItem{Name: n.Name, Abi: decodeAbi(n.Abi), Params: params, ItemSpan: n.Span.span()}, nil

	case "foreign-mod":
		var n struct {
			Abi   string   `json:"abi,omitempty"`
			Span  spanJSON `json:"span"`
			Decls []struct {
				Name   string            `json:"name"`
				Params []json.RawMessage `json:"params,omitempty"`
				Span   spanJSON          `json:"span"`
			} `json:"decls,omitempty"`
		}

		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: foreign-mod: %w", ErrInvalidDump, err)
		}

		mod := &hir.ForeignMod{Abi: decodeAbi(n.Abi), ItemSpan: n.Span.span()}

		for _, decl := range n.Decls {
			params, err := decodeTys(decl.Params)
			if err != nil {
				return nil, err
			}

			mod.Decls = append(mod.Decls, &hir.ForeignFn{Name: decl.Name, Params: params, DeclSpan: decl.Span.span()})
		}

		return mod, nil

	default:
		return nil, fmt.Errorf("%w: unknown item kind %q", ErrInvalidDump, kind)
	}
}

func decodeAbi(abi string) hir.Abi {
	switch abi {
	case "C", "C-unwind":
		return hir.AbiC
	case "", "default":
		return hir.AbiDefault
	default:
		return hir.AbiOther
	}
}

func decodeTys(raws []json.RawMessage) ([]hir.Ty, error) {
	tys := make([]hir.Ty, 0, len(raws))

	for _, raw := range raws {
		ty, err := decodeTy(raw)
		if err != nil {
			return nil, err
		}

		tys = append(tys, ty)
	}

	return tys, nil
}

func decodeTy(raw json.RawMessage) (hir.Ty, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "adt":
		var n struct {
			Def  uint64 `json:"def"`
			Name string `json:"name,omitempty"`
		}

		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: adt: %w", ErrInvalidDump, err)
		}

		return &hir.AdtTy{Def: hir.DefID(n.Def), Name: n.Name}, nil

	case "ptr", "ref":
		var n struct {
			Elem json.RawMessage `json:"elem"`
		}

		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDump, kind, err)
		}

		elem, err := decodeTy(n.Elem)
		if err != nil {
			return nil, err
		}

		if kind == "ptr" {
			return &hir.PtrTy{Elem: elem}, nil
		}

		return &hir.RefTy{Elem: elem}, nil

	case "prim":
		var n struct {
			Name string `json:"name"`
		}

		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: prim: %w", ErrInvalidDump, err)
		}

		return &hir.PrimTy{Name: n.Name}, nil

	default:
		return nil, fmt.Errorf("%w: unknown type kind %q", ErrInvalidDump, kind)
	}
}

// decodeExpr builds an expression tree, recording compile-time contexts on
// the host as it goes: a node marked const makes itself and every descendant
// const-evaluated.
func (h *Host) decodeExpr(raw json.RawMessage) (hir.Expr, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}

	var (
		expr    hir.Expr
		isConst bool
	)

	switch kind {
	case "call":
		var n struct {
			Fn    json.RawMessage   `json:"fn"`
			Args  []json.RawMessage `json:"args,omitempty"`
			Span  spanJSON          `json:"span"`
			Const bool              `json:"const,omitempty"`
		}

		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: call: %w", ErrInvalidDump, err)
		}

		fn, err := h.decodeExpr(n.Fn)
		if err != nil {
			return nil, err
		}

		call := &hir.CallExpr{Fn: fn, ExprSpan: n.Span.span()}
		for _, rawArg := range n.Args {
			arg, err := h.decodeExpr(rawArg)
			if err != nil {
				return nil, err
			}

			call.Args = append(call.Args, arg)
		}

		expr, isConst = call, n.Const

	case "path":
		var n struct {
			Segments []string `json:"segments"`
			Def      uint64   `json:"def,omitempty"`
			Span     spanJSON `json:"span"`
			Const    bool     `json:"const,omitempty"`
		}

		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: path: %w", ErrInvalidDump, err)
		}

		expr = &hir.PathExpr{Segments: n.Segments, Def: hir.DefID(n.Def), ExprSpan: n.Span.span()}
		isConst = n.Const

	case "lit":
		lit, err := decodeLit(raw)
		if err != nil {
			return nil, err
		}

		expr = lit

	case "match":
		var n struct {
			Scrutinee json.RawMessage `json:"scrutinee"`
			Source    string          `json:"source,omitempty"`
			Span      spanJSON        `json:"span"`
			Const     bool            `json:"const,omitempty"`
			Arms      []struct {
				Pat   json.RawMessage `json:"pat"`
				Guard json.RawMessage `json:"guard,omitempty"`
				Body  json.RawMessage `json:"body,omitempty"`
			} `json:"arms,omitempty"`
		}

		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: match: %w", ErrInvalidDump, err)
		}

		scrutinee, err := h.decodeExpr(n.Scrutinee)
		if err != nil {
			return nil, err
		}

		m := &hir.MatchExpr{Scrutinee: scrutinee, Source: decodeMatchSource(n.Source), ExprSpan: n.Span.span()}

		for _, rawArm := range n.Arms {
			arm := hir.Arm{}

			if arm.Pat, err = decodePat(rawArm.Pat); err != nil {
				return nil, err
			}

			if rawArm.Guard != nil {
				if arm.Guard, err = h.decodeExpr(rawArm.Guard); err != nil {
					return nil, err
				}
			}

			if rawArm.Body != nil {
				if arm.Body, err = h.decodeExpr(rawArm.Body); err != nil {
					return nil, err
				}
			}

			m.Arms = append(m.Arms, arm)
		}

		expr, isConst = m, n.Const

	default:
		return nil, fmt.Errorf("%w: unknown expr kind %q", ErrInvalidDump, kind)
	}

	if isConst {
		h.markConst(expr)
	}

	return expr, nil
}

func decodeMatchSource(source string) hir.MatchSource {
	if source == "matches-macro" {
		return hir.MatchFromMatchesMacro
	}

	return hir.MatchNormal
}

func decodeLit(raw json.RawMessage) (*hir.LitExpr, error) {
	var n struct {
		Lit   string   `json:"lit"`
		Value string   `json:"value,omitempty"`
		Text  string   `json:"text,omitempty"`
		Span  spanJSON `json:"span"`
	}

	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("%w: lit: %w", ErrInvalidDump, err)
	}

	lit := &hir.LitExpr{Text: n.Text, ExprSpan: n.Span.span()}

	switch n.Lit {
	case "char":
		lit.Kind = hir.LitChar
	case "byte":
		lit.Kind = hir.LitByte
	case "int":
		lit.Kind = hir.LitInt
	case "str":
		lit.Kind = hir.LitStr
	default:
		return nil, fmt.Errorf("%w: unknown literal kind %q", ErrInvalidDump, n.Lit)
	}

	if lit.Kind == hir.LitChar || lit.Kind == hir.LitByte {
		runes := []rune(n.Value)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%w: literal value %q is not a single code point", ErrInvalidDump, n.Value)
		}

		lit.Value = runes[0]
	}

	return lit, nil
}

func decodePat(raw json.RawMessage) (hir.Pat, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "range":
		var n struct {
			Lo        json.RawMessage `json:"lo"`
			Hi        json.RawMessage `json:"hi"`
			Inclusive bool            `json:"inclusive,omitempty"`
		}

		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: range: %w", ErrInvalidDump, err)
		}

		lo, err := decodeLit(n.Lo)
		if err != nil {
			return nil, err
		}

		hi, err := decodeLit(n.Hi)
		if err != nil {
			return nil, err
		}

		return &hir.RangePat{Lo: lo, Hi: hi, Inclusive: n.Inclusive}, nil

	case "or":
		var n struct {
			Pats []json.RawMessage `json:"pats"`
		}

		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: or: %w", ErrInvalidDump, err)
		}

		or := &hir.OrPat{}
		for _, rawPat := range n.Pats {
			pat, err := decodePat(rawPat)
			if err != nil {
				return nil, err
			}

			or.Pats = append(or.Pats, pat)
		}

		return or, nil

	case "lit":
		lit, err := decodeLit(raw)
		if err != nil {
			return nil, err
		}

		return &hir.LitPat{Lit: lit}, nil

	case "bind":
		var n struct {
			Name string `json:"name"`
		}

		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: bind: %w", ErrInvalidDump, err)
		}

		return &hir.BindPat{Name: n.Name}, nil

	case "wild":
		return &hir.WildPat{}, nil

	default:
		return nil, fmt.Errorf("%w: unknown pattern kind %q", ErrInvalidDump, kind)
	}
}
