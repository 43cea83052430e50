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
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// formatTokens is the set of tokens understood in token formats,
// longest spelling of each letter first.
var formatTokens = []string{
	"YYYY", "YY",
	"MM", "M",
	"DD", "D",
	"HH", "H",
	"hh", "h",
	"mm", "m",
	"ss", "s",
	"A", "a",
}

// layoutItem is either a token or a run of literal text in a token format.
type layoutItem struct {
	token   string
	literal string
}

// splitFormat breaks a token format like "YYYY-MM-DD [at] HH:mm"
// into tokens and literals.
// Text in square brackets is always literal.
func splitFormat(format string) []layoutItem {
	var items []layoutItem
	addLiteral := func(s string) {
		if n := len(items); n > 0 && items[n-1].token == "" {
			items[n-1].literal += s
			return
		}
		items = append(items, layoutItem{literal: s})
	}

scan:
	for i := 0; i < len(format); {
		if format[i] == '[' {
			if j := strings.IndexByte(format[i+1:], ']'); j >= 0 {
				addLiteral(format[i+1 : i+1+j])
				i += j + 2
				continue
			}
		}
		for _, tok := range formatTokens {
			if strings.HasPrefix(format[i:], tok) {
				items = append(items, layoutItem{token: tok})
				i += len(tok)
				continue scan
			}
		}
		_, size := utf8.DecodeRuneInString(format[i:])
		addLiteral(format[i : i+size])
		i += size
	}
	return items
}

// escapeLiteral quotes s for use in a token format
// if it has word characters or an opening bracket.
func escapeLiteral(s string) string {
	if strings.IndexFunc(s, isWordRune) < 0 && !strings.Contains(s, "[") {
		return s
	}
	return "[" + s + "]"
}

// isWordRune reports whether r is an ASCII letter, digit, or underscore.
// Everything else, including non-ASCII letters, separates tokens.
func isWordRune(r rune) bool {
	return r == '_' ||
		'a' <= r && r <= 'z' ||
		'A' <= r && r <= 'Z' ||
		'0' <= r && r <= '9'
}

// parsedFields holds the fields found while parsing a value against a format.
type parsedFields struct {
	year, month, day     int
	hour, minute, second int
	hasYear, hasMonth    bool
	hasDay               bool
	meridiem             byte // 0, 'a', or 'p'
}

// parseLayout parses value against a token format.
// Fields missing from the format are filled in relative to now.
func parseLayout(value, format string, loc *time.Location, now time.Time) (time.Time, error) {
	fail := func(msg string) (time.Time, error) {
		return time.Time{}, &ParseError{Value: value, Format: format, Msg: msg}
	}

	var f parsedFields
	pos := 0
	for _, item := range splitFormat(format) {
		if item.token == "" {
			for _, want := range item.literal {
				if pos >= len(value) {
					return fail("unexpected end of value")
				}
				got, size := utf8.DecodeRuneInString(value[pos:])
				if isWordRune(want) {
					if !strings.EqualFold(string(got), string(want)) {
						return fail("expected " + strconv.QuoteRune(want))
					}
				} else if isWordRune(got) {
					// Any separator stands in for any other.
					return fail("expected separator, found " + strconv.QuoteRune(got))
				}
				pos += size
			}
			continue
		}

		if item.token == "a" || item.token == "A" {
			n := meridiemLength(value[pos:])
			if n == 0 {
				return fail("expected am or pm")
			}
			f.meridiem = byte(unicode.ToLower(rune(value[pos])))
			pos += n
			continue
		}

		minDigits, maxDigits := len(item.token), len(item.token)
		if len(item.token) == 1 {
			minDigits, maxDigits = 1, 2
		}
		n, size := readDigits(value[pos:], minDigits, maxDigits)
		if size == 0 {
			return fail("expected " + strconv.Itoa(minDigits) + " digit(s) for " + item.token)
		}
		pos += size
		switch item.token {
		case "YYYY":
			f.year, f.hasYear = n, true
		case "YY":
			f.year, f.hasYear = expandTwoDigitYear(n), true
		case "MM", "M":
			f.month, f.hasMonth = n, true
		case "DD", "D":
			f.day, f.hasDay = n, true
		case "HH", "H", "hh", "h":
			f.hour = n
		case "mm", "m":
			f.minute = n
		case "ss", "s":
			f.second = n
		}
	}
	if pos < len(value) {
		return fail("extra text " + strconv.Quote(value[pos:]))
	}

	now = now.In(loc)
	year, month, day := now.Date()
	if f.hasYear {
		year = f.year
	}
	switch {
	case f.hasMonth:
		month = time.Month(f.month)
	case f.hasYear:
		month = time.January
	}
	switch {
	case f.hasDay:
		day = f.day
	case f.hasYear || f.hasMonth:
		day = 1
	}
	hour := f.hour
	switch f.meridiem {
	case 'a', 'p':
		if hour < 1 || hour > 12 {
			return fail("hour out of range for 12-hour clock")
		}
		if f.meridiem == 'p' && hour < 12 {
			hour += 12
		} else if f.meridiem == 'a' && hour == 12 {
			hour = 0
		}
	}

	switch {
	case month < time.January || month > time.December:
		return fail("month out of range")
	case day < 1 || day > daysIn(year, month):
		return fail("day out of range")
	case hour > 23:
		return fail("hour out of range")
	case f.minute > 59:
		return fail("minute out of range")
	case f.second > 59:
		return fail("second out of range")
	}
	return time.Date(year, month, day, hour, f.minute, f.second, 0, loc), nil
}

// readDigits reads between minDigits and maxDigits ASCII digits from the start of s.
// It returns the number of bytes consumed, or zero if there were too few digits.
func readDigits(s string, minDigits, maxDigits int) (n, size int) {
	for size < len(s) && size < maxDigits && '0' <= s[size] && s[size] <= '9' {
		n = n*10 + int(s[size]-'0')
		size++
	}
	if size < minDigits {
		return 0, 0
	}
	return n, size
}

// meridiemLength returns the length of the am/pm marker at the start of s,
// or zero if there is none.
// Single-letter "a" and "p" are accepted.
func meridiemLength(s string) int {
	if s == "" {
		return 0
	}
	switch s[0] {
	case 'a', 'A', 'p', 'P':
	default:
		return 0
	}
	if len(s) >= 2 && (s[1] == 'm' || s[1] == 'M') {
		return 2
	}
	return 1
}

// expandTwoDigitYear maps 00-68 to 2000-2068 and 69-99 to 1969-1999.
func expandTwoDigitYear(yy int) int {
	if yy > 68 {
		return 1900 + yy
	}
	return 2000 + yy
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// formatLayout renders t with a token format.
func formatLayout(t time.Time, format string) string {
	sb := new(strings.Builder)
	pad := func(n int) {
		if n < 10 {
			sb.WriteByte('0')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	for _, item := range splitFormat(format) {
		switch item.token {
		case "":
			sb.WriteString(item.literal)
		case "YYYY":
			y := t.Year()
			for d := 1000; d > 1 && y < d; d /= 10 {
				sb.WriteByte('0')
			}
			sb.WriteString(strconv.Itoa(y))
		case "YY":
			pad(t.Year() % 100)
		case "MM":
			pad(int(t.Month()))
		case "M":
			sb.WriteString(strconv.Itoa(int(t.Month())))
		case "DD":
			pad(t.Day())
		case "D":
			sb.WriteString(strconv.Itoa(t.Day()))
		case "HH":
			pad(t.Hour())
		case "H":
			sb.WriteString(strconv.Itoa(t.Hour()))
		case "hh":
			pad(twelveHour(t.Hour()))
		case "h":
			sb.WriteString(strconv.Itoa(twelveHour(t.Hour())))
		case "mm":
			pad(t.Minute())
		case "m":
			sb.WriteString(strconv.Itoa(t.Minute()))
		case "ss":
			pad(t.Second())
		case "s":
			sb.WriteString(strconv.Itoa(t.Second()))
		case "A":
			if t.Hour() < 12 {
				sb.WriteString("AM")
			} else {
				sb.WriteString("PM")
			}
		case "a":
			if t.Hour() < 12 {
				sb.WriteString("am")
			} else {
				sb.WriteString("pm")
			}
		}
	}
	return sb.String()
}

func twelveHour(h int) int {
	if h%12 == 0 {
		return 12
	}
	return h % 12
}
