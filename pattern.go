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

// Package datefield interprets loosely typed dates and times
// against a display pattern like "MM/DD/YY HH:mm",
// and rounds times to the nearest step of a calendar unit.
package datefield

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Segment is one occurrence of a unit in a [Pattern].
type Segment struct {
	Unit Unit
	// Tokens are the spellings the unit may take,
	// short before long.
	Tokens []string
	// Start and End are the character offsets of the first and last character
	// of the segment's token in the pattern.
	Start int
	End   int
}

// Options is the set of optional parameters to [New].
type Options struct {
	// Calendar is used to parse and format values.
	// If nil, a UTC [TokenCalendar] is used.
	Calendar Calendar
	// If IgnoreLiterals is true, words in the pattern that are not tokens
	// are treated as part of the surrounding separators
	// instead of causing an [*UnrecognizedTokenError].
	IgnoreLiterals bool
}

// Pattern is a decomposed display pattern.
// It is safe to use from multiple goroutines.
type Pattern struct {
	pattern    string
	layout     string // pattern with literal words escaped
	cal        Calendar
	is12h      bool
	segments   []Segment
	separators []string
}

// New decomposes a display pattern like "YYYY-MM-DD" or "hh:mm a".
// The pattern is a sequence of tokens (see [UnitTokens])
// separated by non-word characters.
// opts may be nil.
func New(pattern string, opts *Options) (*Pattern, error) {
	p := &Pattern{pattern: pattern}
	if opts != nil && opts.Calendar != nil {
		p.cal = opts.Calendar
	} else {
		p.cal = new(TokenCalendar)
	}
	ignoreLiterals := opts != nil && opts.IgnoreLiterals

	words := scanWords(pattern)
	for _, w := range words {
		if isTwelveHourToken(w.text) {
			p.is12h = true
			break
		}
	}
	table := UnitTokens(p.is12h)

	// pending is the separator text seen since the last segment.
	pending := ""
	prevEnd := 0
	layout := new(strings.Builder)
	for _, w := range words {
		gap := pattern[prevEnd:w.start]
		prevEnd = w.end()
		layout.WriteString(escapeLiteral(gap))

		u, ok := unitForToken(table, w.text)
		if !ok {
			if !ignoreLiterals {
				return nil, &UnrecognizedTokenError{
					Pattern: pattern,
					Token:   w.text,
					Offset:  w.pos,
				}
			}
			pending += gap + w.text
			layout.WriteString(escapeLiteral(w.text))
			continue
		}
		layout.WriteString(w.text)
		if len(p.segments) > 0 {
			p.separators = append(p.separators, pending+gap)
		}
		pending = ""
		p.segments = append(p.segments, Segment{
			Unit:   u,
			Tokens: table[u],
			Start:  w.pos,
			End:    w.pos + len(w.text) - 1,
		})
	}
	layout.WriteString(escapeLiteral(pattern[prevEnd:]))
	p.layout = layout.String()
	return p, nil
}

// MustNew is like [New] but panics if the pattern is invalid.
func MustNew(pattern string, opts *Options) *Pattern {
	p, err := New(pattern, opts)
	if err != nil {
		panic(err)
	}
	return p
}

type word struct {
	text  string
	start int // byte offset
	pos   int // character offset
}

func (w word) end() int {
	return w.start + len(w.text)
}

// scanWords returns the runs of word characters in s in order.
// Word characters are ASCII, so a word's length in bytes
// is also its length in characters.
func scanWords(s string) []word {
	var words []word
	cur := word{start: -1}
	n := 0
	for i, c := range s {
		switch {
		case isWordRune(c) && cur.start < 0:
			cur.start, cur.pos = i, n
		case !isWordRune(c) && cur.start >= 0:
			cur.text = s[cur.start:i]
			words = append(words, cur)
			cur = word{start: -1}
		}
		n++
	}
	if cur.start >= 0 {
		cur.text = s[cur.start:]
		words = append(words, cur)
	}
	return words
}

// String returns the pattern as given to [New].
func (p *Pattern) String() string {
	return p.pattern
}

// Calendar returns the calendar the pattern parses and formats with.
func (p *Pattern) Calendar() Calendar {
	return p.cal
}

// Is12Hour reports whether the pattern uses a 12-hour clock.
func (p *Pattern) Is12Hour() bool {
	return p.is12h
}

// IsTimeOnly reports whether the pattern has no year, month, or day.
func (p *Pattern) IsTimeOnly() bool {
	for _, seg := range p.segments {
		if seg.Unit.isDate() {
			return false
		}
	}
	return true
}

// Segments returns the pattern's segments in order of appearance.
func (p *Pattern) Segments() []Segment {
	segments := slices.Clone(p.segments)
	for i := range segments {
		segments[i].Tokens = slices.Clone(segments[i].Tokens)
	}
	return segments
}

// Separators returns the text between consecutive segments.
// There is one fewer separator than segments.
func (p *Pattern) Separators() []string {
	return slices.Clone(p.separators)
}

// Units returns the unit of each segment in order.
func (p *Pattern) Units() []Unit {
	units := make([]Unit, len(p.segments))
	for i, seg := range p.segments {
		units[i] = seg.Unit
	}
	return units
}

// Selection is the result of [Pattern.At].
// If Whole is true, the selection covers the entire pattern
// and Segment is the zero value.
type Selection struct {
	Segment Segment
	Whole   bool
}

// At returns the segment under the character range [start, end) of the pattern.
// Offsets count characters, not bytes.
// An end less than or equal to zero is treated as start,
// as for a cursor with no selection.
// If the range covers the whole pattern, At returns a Selection with Whole set.
// At returns false if no segment contains the range.
func (p *Pattern) At(start, end int) (Selection, bool) {
	if end <= 0 {
		end = start
	}
	if start == 0 && end == utf8.RuneCountInString(p.pattern) {
		return Selection{Whole: true}, true
	}
	for _, seg := range p.segments {
		if seg.Start <= start && seg.End >= end-1 {
			seg.Tokens = slices.Clone(seg.Tokens)
			return Selection{Segment: seg}, true
		}
	}
	return Selection{}, false
}

// AtCursor returns the segment under a cursor at pos.
func (p *Pattern) AtCursor(pos int) (Selection, bool) {
	return p.At(pos, pos)
}
