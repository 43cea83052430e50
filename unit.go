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
)

// Unit is a calendar unit that can appear in a display pattern.
type Unit int

// Known units, from largest to smallest.
// Meridiem is the AM/PM marker of a 12-hour clock.
const (
	Year Unit = iota
	Month
	Day
	Hour
	Minute
	Second
	Meridiem
)

var unitNames = [...]string{
	Year:     "year",
	Month:    "month",
	Day:      "day",
	Hour:     "hour",
	Minute:   "minute",
	Second:   "second",
	Meridiem: "meridiem",
}

// ParseUnit returns the unit with the given name, ignoring case.
func ParseUnit(s string) (Unit, error) {
	for u, name := range unitNames {
		if strings.EqualFold(s, name) {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

// String returns the lowercase name of the unit.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// isDate reports whether u is one of the year, month, or day units.
func (u Unit) isDate() bool {
	return u == Year || u == Month || u == Day
}

// MarshalText implements [encoding.TextMarshaler].
func (u Unit) MarshalText() ([]byte, error) {
	if u < 0 || int(u) >= len(unitNames) {
		return nil, fmt.Errorf("marshal unit: invalid value %d", int(u))
	}
	return []byte(unitNames[u]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// UnitTokens returns the token spellings of every unit
// for the given clock convention.
// Each list holds the short spelling before the long one.
// On a 24-hour clock, [Meridiem] has no spellings.
func UnitTokens(is12h bool) map[Unit][]string {
	m := map[Unit][]string{
		Year:     {"YY", "YYYY"},
		Month:    {"M", "MM"},
		Day:      {"D", "DD"},
		Hour:     {"H", "HH"},
		Minute:   {"m", "mm"},
		Second:   {"s", "ss"},
		Meridiem: {},
	}
	if is12h {
		m[Hour] = []string{"h", "hh"}
		m[Meridiem] = []string{"a"}
	}
	return m
}

// unitForToken finds the unit that token spells in the given table.
func unitForToken(table map[Unit][]string, token string) (Unit, bool) {
	for u := Year; u <= Meridiem; u++ {
		for _, spelling := range table[u] {
			if spelling == token {
				return u, true
			}
		}
	}
	return 0, false
}

// isTwelveHourToken reports whether token is one of the 12-hour hour spellings.
func isTwelveHourToken(token string) bool {
	return token == "h" || token == "hh"
}
