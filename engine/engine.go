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

package engine

import (
	"fillmore-labs.com/ffiguard/diag"
	"fillmore-labs.com/ffiguard/hir"
	"fillmore-labs.com/ffiguard/host"
	"fillmore-labs.com/ffiguard/internal/asciirange"
	"fillmore-labs.com/ffiguard/internal/config"
	"fillmore-labs.com/ffiguard/internal/layout"
	"fillmore-labs.com/ffiguard/internal/memsafe"
	"fillmore-labs.com/ffiguard/internal/resolve"
)

// Engine dispatches host callbacks to the lint rules for one compilation
// unit. The host invokes it serialized and non-reentrant within a unit; one
// Engine value must not be shared across concurrently analyzed units, but
// independent units may each run their own Engine in parallel.
type Engine struct {
	host host.Host
	sink diag.Sink
	opts *options

	layoutRule layout.Rule
	rangeRule  asciirange.Rule
	callRule   memsafe.Rule
}

// New returns an [Engine] bound to a host and a finding sink, with overriding
// [Option] values applied.
func New(h host.Host, sink diag.Sink, opts ...Option) *Engine {
	o := makeOptions(opts)

	e := &Engine{
		host: h,
		sink: sink,
		opts: o,

		layoutRule: layout.Rule{Host: h, Sink: sink},
		rangeRule:  asciirange.Rule{Host: h, Sink: sink},
	}

	// The dangerous set stays empty until BeginUnit resolves the configured
	// names, so a unit analyzed without BeginUnit simply never flags calls.
	e.callRule = memsafe.Rule{Sink: sink}

	return e
}

// BeginUnit starts the analysis of one compilation unit. It resolves the
// configured dangerous-function names into a symbol set exactly once; the set
// is frozen for the remainder of the unit. Calling BeginUnit again starts a
// fresh unit against the current program state.
func (e *Engine) BeginUnit() {
	if !e.opts.rules.Enabled(config.DangerousCallRule) {
		return
	}

	e.callRule.Dangerous = resolve.Build(e.host, e.opts.dangerousNames, e.opts.libNamespace)
}

// CheckItem routes one item to the rules that inspect items.
func (e *Engine) CheckItem(item hir.Item) {
	if e.opts.rules.Enabled(config.LayoutRule) {
		e.layoutRule.CheckItem(item)
	}
}

// CheckExpr routes one expression to the rules that inspect expressions.
func (e *Engine) CheckExpr(expr hir.Expr) {
	if e.opts.rules.Enabled(config.DangerousCallRule) {
		e.callRule.CheckExpr(expr)
	}

	if e.opts.rules.Enabled(config.RangeIdiomRule) {
		e.rangeRule.CheckExpr(expr)
	}
}
