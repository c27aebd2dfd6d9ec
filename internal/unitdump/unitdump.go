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

// Package unitdump loads serialized compilation-unit dumps exported by a
// compiler frontend and implements the engine's host surface on top of them.
//
// A dump is the frontend's resolved view of one unit: file texts, the symbol
// table with layout representations, the items and the expression forest. The
// engine core performs no I/O of its own; this package is host-side plumbing
// for the command line driver and for end-to-end tests.
package unitdump

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"fillmore-labs.com/ffiguard/engine"
	"fillmore-labs.com/ffiguard/hir"
)

// ErrInvalidDump is wrapped by every decode failure.
var ErrInvalidDump = errors.New("invalid unit dump")

// Unit is one decoded compilation unit together with its host view.
type Unit struct {
	Name  string
	Items []hir.Item
	Exprs []hir.Expr
	Host  *Host
}

// DecodeFile reads and decodes a dump file.
func DecodeFile(path string) (*Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unitdump: %w", err)
	}

	u, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("unitdump: %s: %w", path, err)
	}

	return u, nil
}

// Decode decodes one JSON dump.
func Decode(data []byte) (*Unit, error) {
	var raw unitJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDump, err)
	}

	h := newHost(raw)

	if raw.LanguageVersion != "" {
		if err := h.SetLanguageVersion(raw.LanguageVersion); err != nil {
			return nil, err
		}
	}

	u := &Unit{
		Name: raw.Unit,
		Host: h,
	}

	for i, rawItem := range raw.Items {
		item, err := decodeItem(rawItem)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		u.Items = append(u.Items, item)
	}

	for i, rawExpr := range raw.Exprs {
		expr, err := h.decodeExpr(rawExpr)
		if err != nil {
			return nil, fmt.Errorf("expr %d: %w", i, err)
		}

		u.Exprs = append(u.Exprs, expr)
	}

	return u, nil
}

// Run drives eng over the unit in the frontend's order: unit start first,
// then every item, then every expression, outermost first.
func (u *Unit) Run(eng *engine.Engine) {
	eng.BeginUnit()

	for _, item := range u.Items {
		eng.CheckItem(item)
	}

	for _, expr := range u.Exprs {
		hir.Walk(expr, eng.CheckExpr)
	}
}
