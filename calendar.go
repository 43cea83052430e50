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
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// InvalidDate is what a [Calendar] renders for a value it could not read.
const InvalidDate = "Invalid Date"

// A Calendar performs the date arithmetic, parsing, and formatting
// that patterns and rounding are built on.
//
// Formats use tokens like "YYYY", "MM", "DD", "HH", "hh", "mm", "ss", and "a".
// See [TokenCalendar] for the full list.
type Calendar interface {
	// Parse reads value according to format.
	// It returns an error if value does not match format
	// or does not name a real date and time.
	Parse(value, format string) (time.Time, error)
	// ParseAny makes a best effort to read value without a format.
	ParseAny(value string) (time.Time, error)
	// Format renders t according to format.
	Format(t time.Time, format string) string
	// StartOf returns the beginning of the unit u containing t.
	StartOf(t time.Time, u Unit) time.Time
	// Add returns t moved by n of unit u.
	// Months and years that overflow the target month's length
	// are clamped to its last day.
	Add(t time.Time, n int, u Unit) time.Time
	// Now returns the current instant.
	// It supplies the year and day for values that omit them.
	Now() time.Time
}

// TokenCalendar is the default [Calendar].
//
// Its formats understand these tokens:
//
//	YYYY  4-digit year      YY  2-digit year (69-99 are 19xx)
//	MM    2-digit month     M   1- or 2-digit month
//	DD    2-digit day       D   1- or 2-digit day
//	HH    2-digit hour      H   1- or 2-digit hour
//	hh    2-digit 12-hour   h   1- or 2-digit 12-hour
//	mm    2-digit minute    m   1- or 2-digit minute
//	ss    2-digit second    s   1- or 2-digit second
//	A     AM or PM          a   am or pm
//
// Text inside square brackets is literal.
// When parsing, any separator character in the format
// matches any single separator character in the value.
//
// The zero value uses UTC and the system clock.
type TokenCalendar struct {
	// Location is the time zone values are interpreted in.
	// If nil, UTC is used.
	Location *time.Location
	// Clock returns the current time.
	// If nil, [time.Now] is used.
	Clock func() time.Time
}

func (c *TokenCalendar) location() *time.Location {
	if c == nil || c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Now returns the current time in the calendar's location.
func (c *TokenCalendar) Now() time.Time {
	var now time.Time
	if c == nil || c.Clock == nil {
		now = time.Now()
	} else {
		now = c.Clock()
	}
	return now.In(c.location())
}

// Parse implements [Calendar.Parse].
func (c *TokenCalendar) Parse(value, format string) (time.Time, error) {
	return parseLayout(value, format, c.location(), c.Now())
}

// ParseAny implements [Calendar.ParseAny]
// by guessing the format from the shape of value.
func (c *TokenCalendar) ParseAny(value string) (time.Time, error) {
	t, err := dateparse.ParseIn(strings.TrimSpace(value), c.location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %v", value, err)
	}
	return t.In(c.location()), nil
}

// Format implements [Calendar.Format].
func (c *TokenCalendar) Format(t time.Time, format string) string {
	return formatLayout(t.In(c.location()), format)
}

// StartOf implements [Calendar.StartOf].
// The start of a [Meridiem] is midnight or noon.
func (c *TokenCalendar) StartOf(t time.Time, u Unit) time.Time {
	t = t.In(c.location())
	year, month, day := t.Date()
	switch u {
	case Year:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, t.Location())
	case Month:
		return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	case Day:
		return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	case Meridiem:
		return time.Date(year, month, day, t.Hour()/12*12, 0, 0, 0, t.Location())
	case Hour:
		return time.Date(year, month, day, t.Hour(), 0, 0, 0, t.Location())
	case Minute:
		return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, t.Location())
	case Second:
		return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	default:
		panic(fmt.Sprintf("StartOf(%v)", u))
	}
}

// Add implements [Calendar.Add].
func (c *TokenCalendar) Add(t time.Time, n int, u Unit) time.Time {
	t = t.In(c.location())
	switch u {
	case Year:
		return addMonths(t, 12*n)
	case Month:
		return addMonths(t, n)
	case Day:
		return t.AddDate(0, 0, n)
	case Meridiem:
		return t.Add(time.Duration(n) * 12 * time.Hour)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Second:
		return t.Add(time.Duration(n) * time.Second)
	default:
		panic(fmt.Sprintf("Add(%v)", u))
	}
}

// addMonths adds n months to t,
// clamping the day to the length of the resulting month.
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	day = min(day, daysIn(first.Year(), first.Month()))
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// IsSame reports whether a and b fall in the same unit u of cal.
func IsSame(cal Calendar, a, b time.Time, u Unit) bool {
	return cal.StartOf(a, u).Equal(cal.StartOf(b, u))
}

// IsBefore reports whether a's unit u ends before b's begins.
func IsBefore(cal Calendar, a, b time.Time, u Unit) bool {
	return cal.StartOf(a, u).Before(cal.StartOf(b, u))
}

// IsAfter reports whether a's unit u begins after b's ends.
func IsAfter(cal Calendar, a, b time.Time, u Unit) bool {
	return cal.StartOf(a, u).After(cal.StartOf(b, u))
}
