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
	"log/slog"
	"slices"

	"fillmore-labs.com/ffiguard/internal/config"
)

// Option configures specific behavior of a [New] engine.
type Option interface {
	apply(o *options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(opts *options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(opts)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// options is the merged engine configuration.
type options struct {
	rules          config.BitMask[config.RuleFlags]
	dangerousNames []string
	libNamespace   string
}

// makeOptions returns the defaults with overriding [Options] applied.
func makeOptions(opts Options) *options {
	o := defaultOptions()
	opts.apply(o)

	return o
}

// defaultOptions enables every rule, with no dangerous functions configured.
func defaultOptions() *options {
	return &options{
		rules:        config.NewBitMask(config.LayoutRule | config.DangerousCallRule | config.RangeIdiomRule),
		libNamespace: "libc",
	}
}

// WithLayout is an [Option] to toggle the C-boundary layout check.
func WithLayout(layout bool) Option { return layoutOption{layout: layout} }

type layoutOption struct{ layout bool }

func (o layoutOption) apply(opts *options) {
	opts.rules.Set(config.LayoutRule, o.layout)
}

func (o layoutOption) LogAttr() slog.Attr {
	return slog.Bool("layout", o.layout)
}

// WithDangerousCalls is an [Option] to toggle the dangerous-call check.
func WithDangerousCalls(calls bool) Option { return dangerousCallsOption{calls: calls} }

type dangerousCallsOption struct{ calls bool }

func (o dangerousCallsOption) apply(opts *options) {
	opts.rules.Set(config.DangerousCallRule, o.calls)
}

func (o dangerousCallsOption) LogAttr() slog.Attr {
	return slog.Bool("dangerous-calls", o.calls)
}

// WithAsciiRange is an [Option] to toggle the manual-ascii-range check.
func WithAsciiRange(ascii bool) Option { return asciiRangeOption{ascii: ascii} }

type asciiRangeOption struct{ ascii bool }

func (o asciiRangeOption) apply(opts *options) {
	opts.rules.Set(config.RangeIdiomRule, o.ascii)
}

func (o asciiRangeOption) LogAttr() slog.Attr {
	return slog.Bool("ascii-range", o.ascii)
}

// WithDangerousFunctions is an [Option] to set the configured
// dangerous-function names. Entries are plain names or "::"-qualified paths;
// the list is consumed once at unit start.
func WithDangerousFunctions(names []string) Option {
	return dangerousFunctionsOption{names: slices.Clone(names)}
}

type dangerousFunctionsOption struct{ names []string }

func (o dangerousFunctionsOption) apply(opts *options) {
	opts.dangerousNames = o.names
}

func (o dangerousFunctionsOption) LogAttr() slog.Attr {
	return slog.Any("dangerous-functions", o.names)
}

// WithLibraryNamespace is an [Option] to set the well-known library namespace
// plain dangerous-function names resolve under.
func WithLibraryNamespace(namespace string) Option {
	return libraryNamespaceOption{namespace: namespace}
}

type libraryNamespaceOption struct{ namespace string }

func (o libraryNamespaceOption) apply(opts *options) {
	opts.libNamespace = o.namespace
}

func (o libraryNamespaceOption) LogAttr() slog.Attr {
	return slog.String("library-namespace", o.namespace)
}
