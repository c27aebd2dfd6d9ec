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

// Package main implements the CLI driver for the ffiguard lint engine.
//
// It consumes compilation-unit dumps exported by a compiler frontend;
// independent units are analyzed in parallel, each with its own engine.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/ffiguard/diag"
	"fillmore-labs.com/ffiguard/engine"
	"fillmore-labs.com/ffiguard/internal/unitdump"
	"fillmore-labs.com/ffiguard/settings"
)

// Config holds the command-line configuration.
type Config struct {
	ConfigFile      string // path to a YAML settings file
	LanguageVersion string // overrides the dump's pinned language version
	NoColor         bool   // disables colored output
}

const (
	exitFindings = 1
	exitError    = 2
)

// Set via ldflags during build.
var version = "dev"

var cfg Config

func main() {
	rootCmd := &cobra.Command{
		Use:   "ffiguard [unit dumps...]",
		Short: "Lint compiler-exported unit dumps for FFI layout and ascii-range hazards",
		Long: `ffiguard inspects a program's resolved semantic representation and reports:
- aggregates crossing a C boundary without a declared layout representation
- calls into the configured set of dangerous functions
- manual range checks replaceable by a built-in ascii predicate`,
		Example: `  ffiguard unit.json                      # Lint one unit dump
  ffiguard -c ffiguard.yaml dumps/*.json  # Configured, many units in parallel`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.Flags().StringVarP(&cfg.ConfigFile, "config", "c", "", "Path to a YAML settings file")
	rootCmd.Flags().StringVar(&cfg.LanguageVersion, "language-version", "", "Target language version for capability gating")
	rootCmd.Flags().BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")

	if err := rootCmd.Execute(); err != nil {
		var cErr codedError
		if errors.As(err, &cErr) {
			if cErr.err != nil {
				fmt.Fprintln(os.Stderr, cErr.err)
			}

			os.Exit(cErr.code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
}

func runCommand(_ *cobra.Command, args []string) error {
	if cfg.NoColor {
		color.NoColor = true
	}

	var s settings.Settings

	if cfg.ConfigFile != "" {
		var err error
		if s, err = settings.Load(cfg.ConfigFile); err != nil {
			return codedError{err: err, code: exitError}
		}
	}

	results, err := lintAll(args, s)
	if err != nil {
		return codedError{err: err, code: exitError}
	}

	total := 0
	for _, findings := range results {
		total += len(findings)
		for _, f := range findings {
			printFinding(os.Stdout, f)
		}
	}

	if total > 0 {
		fmt.Fprintf(os.Stderr, "%d finding(s)\n", total)

		return codedError{code: exitFindings}
	}

	return nil
}

// lintAll analyzes every dump with its own engine, units in parallel. The
// result is indexed like paths so output order stays deterministic.
func lintAll(paths []string, s settings.Settings) ([][]diag.Finding, error) {
	opts := s.Options()
	results := make([][]diag.Finding, len(paths))

	var g errgroup.Group

	for i, path := range paths {
		g.Go(func() error {
			u, err := unitdump.DecodeFile(path)
			if err != nil {
				return err
			}

			if v := languageVersion(s); v != "" {
				if err := u.Host.SetLanguageVersion(v); err != nil {
					return err
				}
			}

			var findings []diag.Finding
			sink := diag.SinkFunc(func(f diag.Finding) {
				findings = append(findings, f)
			})

			u.Run(engine.New(u.Host, sink, opts...))

			results[i] = findings

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// languageVersion picks the flag override, then the settings value.
func languageVersion(s settings.Settings) string {
	if cfg.LanguageVersion != "" {
		return cfg.LanguageVersion
	}

	if s.LanguageVersion != nil {
		return *s.LanguageVersion
	}

	return ""
}

var severityColors = map[diag.Severity]*color.Color{
	diag.SeverityStyle:    color.New(color.FgCyan),
	diag.SeverityPedantic: color.New(color.FgYellow),
	diag.SeverityNursery:  color.New(color.FgMagenta),
}

func printFinding(w *os.File, f diag.Finding) {
	severity := f.Severity.String()
	if c, ok := severityColors[f.Severity]; ok {
		severity = c.Sprint(severity)
	}

	fmt.Fprintf(w, "%s: %s: %s [%s]\n", f.Span, severity, f.Message, f.Rule)

	if f.Suggestion != "" {
		fmt.Fprintf(w, "    suggestion: %s (%s)\n", f.Suggestion, f.Confidence)
	}
}

// codedError carries a process exit code through cobra's error handling.
type codedError struct {
	err  error
	code int
}

func (e codedError) Error() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}

func (e codedError) Unwrap() error { return e.err }
