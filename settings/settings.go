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

// Package settings is the declarative configuration surface for ffiguard.
// Fields are pointers so that only explicitly set values override engine
// defaults.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/ffiguard/engine"
)

// Settings configures an ffiguard run.
type Settings struct {
	// Layout enables the C-boundary layout check.
	Layout *bool `yaml:"layout,omitempty"`

	// DangerousCalls enables the dangerous-call check.
	DangerousCalls *bool `yaml:"dangerous-calls,omitempty"`

	// AsciiRange enables the manual-ascii-range check.
	AsciiRange *bool `yaml:"ascii-range,omitempty"`

	// DangerousFunctions lists the functions considered unsafe by
	// convention, as plain names or "::"-qualified paths.
	DangerousFunctions []string `yaml:"dangerous-functions,omitempty"`

	// LibraryNamespace overrides the well-known library namespace plain
	// names resolve under.
	LibraryNamespace *string `yaml:"library-namespace,omitempty"`

	// LanguageVersion pins the analyzed target's language version for
	// capability gating. It is consumed by the host adapter, not by the
	// engine itself.
	LanguageVersion *string `yaml:"language-version,omitempty"`
}

// Load reads settings from a YAML file. Unknown keys are rejected so typos
// do not silently disable rules.
func Load(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("settings: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("settings: parse %s: %w", path, err)
	}

	return s, nil
}

// Options converts [Settings] into engine options, applying only values that
// were explicitly set.
func (s Settings) Options() []engine.Option {
	var opts []engine.Option

	opts = appendOption(opts, s.Layout, engine.WithLayout)
	opts = appendOption(opts, s.DangerousCalls, engine.WithDangerousCalls)
	opts = appendOption(opts, s.AsciiRange, engine.WithAsciiRange)
	opts = appendOption(opts, s.LibraryNamespace, engine.WithLibraryNamespace)

	if s.DangerousFunctions != nil {
		opts = append(opts, engine.WithDangerousFunctions(s.DangerousFunctions))
	}

	return opts
}

// appendOption appends a non-nil setting converted through constructor.
func appendOption[T any](opts []engine.Option, value *T, constructor func(T) engine.Option) []engine.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
