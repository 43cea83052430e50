// Copyright 2026 Roxy Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package datefield

import (
	"slices"
	"testing"
)

func TestCombinations(t *testing.T) {
	tests := []struct {
		name     string
		segments [][]string
		want     [][]string
	}{
		{
			name: "Letters",
			segments: [][]string{
				{"A", "AA"},
				{"B", "BB"},
				{"C", "CC"},
			},
			want: [][]string{
				{"A"},
				{"AA"},
				{"A", "B"},
				{"AA", "B"},
				{"A", "BB"},
				{"AA", "BB"},
				{"A", "B", "C"},
				{"AA", "B", "C"},
				{"A", "BB", "C"},
				{"AA", "BB", "C"},
				{"A", "B", "CC"},
				{"AA", "B", "CC"},
				{"A", "BB", "CC"},
				{"AA", "BB", "CC"},
			},
		},
		{
			name: "DateTokens",
			segments: [][]string{
				{"YY", "YYYY"},
				{"M", "MM"},
				{"D", "DD"},
			},
			want: [][]string{
				{"YY"},
				{"YYYY"},
				{"YY", "M"},
				{"YYYY", "M"},
				{"YY", "MM"},
				{"YYYY", "MM"},
				{"YY", "M", "D"},
				{"YYYY", "M", "D"},
				{"YY", "MM", "D"},
				{"YYYY", "MM", "D"},
				{"YY", "M", "DD"},
				{"YYYY", "M", "DD"},
				{"YY", "MM", "DD"},
				{"YYYY", "MM", "DD"},
			},
		},
		{
			name: "SingleSpelling",
			segments: [][]string{
				{"h", "hh"},
				{"a"},
			},
			want: [][]string{
				{"h"},
				{"hh"},
				{"h", "a"},
				{"hh", "a"},
			},
		},
		{
			name:     "Empty",
			segments: [][]string{},
			want:     nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Combinations(test.segments)
			if !slices.EqualFunc(got, test.want, slices.Equal[[]string]) {
				t.Errorf("Combinations(%q) = %q; want %q", test.segments, got, test.want)
			}
		})
	}
}

func TestVariations(t *testing.T) {
	tests := []struct {
		pattern string
		opts    *Options
		want    []string
	}{
		{
			pattern: "YYYY-MM-DD",
			want: []string{
				"YYYY-MM-DD",
				"YY-MM-DD",
				"YYYY-M-DD",
				"YY-M-DD",
				"YYYY-MM-D",
				"YY-MM-D",
				"YYYY-M-D",
				"YY-M-D",
				"YYYY-MM",
				"YY-MM",
				"YYYY-M",
				"YY-M",
				"YYYY",
				"YY",
			},
		},
		{
			pattern: "hh:mm a",
			want: []string{
				"hh:mm a",
				"h:mm a",
				"hh:m a",
				"h:m a",
				"hh:mm",
				"h:mm",
				"hh:m",
				"h:m",
				"hh",
				"h",
			},
		},
		{
			pattern: "YYYY at HH",
			opts:    &Options{IgnoreLiterals: true},
			want: []string{
				"YYYY[ at ]HH",
				"YY[ at ]HH",
				"YYYY[ at ]H",
				"YY[ at ]H",
				"YYYY",
				"YY",
			},
		},
		{
			pattern: "",
			want:    []string{},
		},
	}
	for _, test := range tests {
		p := MustNew(test.pattern, test.opts)
		if got := p.Variations(); !slices.Equal(got, test.want) {
			t.Errorf("MustNew(%q).Variations() = %q; want %q", test.pattern, got, test.want)
		}
	}
}

func TestVariationCount(t *testing.T) {
	p := MustNew("YYYY-MM-DD HH:mm:ss", nil)
	// Σ 2^k for k = 1..6
	const want = 2 + 4 + 8 + 16 + 32 + 64
	if got := len(p.Variations()); got != want {
		t.Errorf("len(Variations()) = %d; want %d", got, want)
	}
}
