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
)

// Part selects the date or the time portion of a value.
type Part int

const (
	DatePart Part = iota
	TimePart
)

// Update returns t in UTC with its date or time portion
// replaced by that of from.
func Update(t time.Time, part Part, from time.Time) time.Time {
	t = t.UTC()
	switch part {
	case DatePart:
		year, month, day := from.UTC().Date()
		return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	case TimePart:
		from = from.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), from.Hour(), from.Minute(), from.Second(), t.Nanosecond(), time.UTC)
	default:
		panic(fmt.Sprintf("Update(%d)", int(part)))
	}
}

// Condition is a bound checked by [Validate].
type Condition int

const (
	// Before requires the value to be no later than the reference.
	Before Condition = iota
	// After requires the value to be no earlier than the reference.
	After
)

// Validate reports whether t satisfies cond against reference
// when both are compared at the granularity of unit.
// A value in the same unit as the reference always passes.
// An empty reference only requires t to be set.
// A reference in [ISOTimeFormat] is taken on t's date.
// A reference that cannot be read fails validation.
func Validate(cal Calendar, t time.Time, reference string, cond Condition, unit Unit) bool {
	if t.IsZero() {
		return false
	}
	if reference == "" {
		return true
	}
	ref, err := referenceTime(cal, t, reference)
	if err != nil {
		return false
	}
	if IsSame(cal, t, ref, unit) {
		return true
	}
	switch cond {
	case Before:
		return IsBefore(cal, t, ref, unit)
	case After:
		return IsAfter(cal, t, ref, unit)
	default:
		return false
	}
}

func referenceTime(cal Calendar, t time.Time, reference string) (time.Time, error) {
	reference = strings.TrimSpace(reference)
	if tod, err := cal.Parse(reference, ISOTimeFormat); err == nil {
		t = t.In(tod.Location())
		return time.Date(t.Year(), t.Month(), t.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, tod.Location()), nil
	}
	return cal.ParseAny(reference)
}
