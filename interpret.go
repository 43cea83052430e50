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
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical formats used by [Pattern.ISO].
const (
	ISODateTimeFormat = "YYYY-MM-DD HH:mm:ss"
	ISOTimeFormat     = "HH:mm:ss"
)

// Match is a successful interpretation of user input.
type Match struct {
	Time time.Time
	// Variation is the format the input matched.
	Variation string
}

// Interpret returns the time that input most plausibly means
// under the pattern.
// input may use short or long spellings of each token,
// any separators, and may leave off trailing segments.
// Interpret returns false if input is empty or matches no variation.
func (p *Pattern) Interpret(input string) (time.Time, bool) {
	m, ok := p.Match(input)
	return m.Time, ok
}

// Match is like [Pattern.Interpret]
// but also reports which variation of the pattern matched.
func (p *Pattern) Match(input string) (Match, bool) {
	input = normalizeInput(input)
	if input == "" {
		return Match{}, false
	}
	for _, v := range p.Variations() {
		t, err := p.cal.Parse(input, v)
		if err == nil {
			return Match{Time: t, Variation: v}, true
		}
	}
	return Match{}, false
}

// normalizeInput folds compatibility characters like full-width digits
// to their plain forms and removes invisible formatting characters.
func normalizeInput(s string) string {
	// Transformer chains carry state, so build one per call.
	t := transform.Chain(runes.Remove(runes.In(unicode.Cf)), norm.NFKC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(out)
}

// Format renders t in the pattern.
func (p *Pattern) Format(t time.Time) string {
	return p.cal.Format(t, p.layout)
}

// FormatAs renders t in another token format.
func (p *Pattern) FormatAs(t time.Time, format string) string {
	return p.cal.Format(t, format)
}

// Reformat interprets input and renders the result in format,
// or in the pattern if format is empty.
// Reformat returns false if input cannot be interpreted.
func (p *Pattern) Reformat(input, format string) (string, bool) {
	t, ok := p.Interpret(input)
	if !ok {
		return "", false
	}
	if format == "" {
		return p.Format(t), true
	}
	return p.FormatAs(t, format), true
}

// ISO renders t in the canonical interchange format:
// [ISOTimeFormat] if the pattern is time-only,
// [ISODateTimeFormat] otherwise.
func (p *Pattern) ISO(t time.Time) string {
	return p.cal.Format(t, p.isoFormat())
}

// ISOString is like [Pattern.ISO] for a raw string.
// input is interpreted under the pattern,
// then read as a canonical value if that fails.
// If input cannot be read at all, ISOString returns [InvalidDate].
func (p *Pattern) ISOString(input string) string {
	t, ok := p.coerce(input)
	if !ok {
		return InvalidDate
	}
	return p.ISO(t)
}

func (p *Pattern) isoFormat() string {
	if p.IsTimeOnly() {
		return ISOTimeFormat
	}
	return ISODateTimeFormat
}

// coerce reads input either under the pattern or as a canonical value.
func (p *Pattern) coerce(input string) (time.Time, bool) {
	if t, ok := p.Interpret(input); ok {
		return t, true
	}
	input = normalizeInput(input)
	if input == "" {
		return time.Time{}, false
	}
	var t time.Time
	var err error
	if p.IsTimeOnly() {
		t, err = p.cal.Parse(input, ISOTimeFormat)
	} else {
		t, err = p.cal.ParseAny(input)
	}
	return t, err == nil
}
