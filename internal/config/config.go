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

// Package config holds the engine's internal flag representation.
package config

// RuleFlags selects which lint rules run.
type RuleFlags uint8

const (
	// LayoutRule enables the check for aggregates crossing a C boundary
	// without a declared layout representation.
	LayoutRule RuleFlags = 1 << iota

	// DangerousCallRule enables the check for calls into the configured
	// dangerous-function set.
	DangerousCallRule

	// RangeIdiomRule enables the manual-ascii-range replacement check.
	RangeIdiomRule
)
