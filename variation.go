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
	"strings"
)

// Combinations returns every way of choosing one spelling per segment,
// also allowing trailing segments to be dropped.
// Results are grouped by the number of segments kept, fewest first.
// Within a group, the first segment's choice varies fastest:
//
//	Combinations([][]string{{"A", "AA"}, {"B", "BB"}})
//	// [A] [AA] [A B] [AA B] [A BB] [AA BB]
func Combinations(segments [][]string) [][]string {
	var result [][]string
	for k := 1; k <= len(segments); k++ {
		prefix := segments[:k]
		n := 1
		for _, choices := range prefix {
			n *= len(choices)
		}
		for i := range n {
			combo := make([]string, k)
			// Mixed-radix counter with the first segment as the low digit.
			rest := i
			for j, choices := range prefix {
				combo[j] = choices[rest%len(choices)]
				rest /= len(choices)
			}
			result = append(result, combo)
		}
	}
	return result
}

// Variations returns the formats that input is tried against
// by [Pattern.Interpret], in trial order:
// all segments with long spellings first,
// down to only the first segment with its short spelling.
// Each format joins the chosen tokens with the pattern's separators.
func (p *Pattern) Variations() []string {
	tokens := make([][]string, len(p.segments))
	for i, seg := range p.segments {
		tokens[i] = seg.Tokens
	}
	combos := Combinations(tokens)
	slices.Reverse(combos)

	variations := make([]string, len(combos))
	sb := new(strings.Builder)
	for i, combo := range combos {
		sb.Reset()
		for j, tok := range combo {
			if j > 0 {
				sb.WriteString(escapeLiteral(p.separators[j-1]))
			}
			sb.WriteString(tok)
		}
		variations[i] = sb.String()
	}
	return variations
}
