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
	"math"
	"time"
)

// Nearest rounds t to the closest multiple of step units,
// counted from the start of the next larger unit:
// the minute for seconds, the hour for minutes, the day for hours,
// the month for days, the year for months, and the century for years.
// A value exactly halfway between two steps rounds down.
//
// Nearest returns an [*InvalidStepError] if step is not positive,
// unit is [Meridiem], or step units past t cannot be represented.
func Nearest(cal Calendar, t time.Time, unit Unit, step int) (time.Time, error) {
	if step < 1 {
		return time.Time{}, &InvalidStepError{Unit: unit, Step: step}
	}
	var base time.Time
	switch unit {
	case Second:
		base = cal.StartOf(t, Minute)
	case Minute:
		base = cal.StartOf(t, Hour)
	case Hour:
		base = cal.StartOf(t, Day)
	case Day:
		base = cal.StartOf(t, Month)
	case Month:
		base = cal.StartOf(t, Year)
	case Year:
		start := cal.StartOf(t, Year)
		base = cal.Add(start, -(start.Year() % 100), Year)
	default:
		return time.Time{}, &InvalidStepError{Unit: unit, Step: step}
	}

	limit := cal.Add(t, step, unit)
	if !limit.After(t) {
		return time.Time{}, &InvalidStepError{Unit: unit, Step: step}
	}
	var candidates []time.Time
	for i, c := 0, base; c.Before(limit); {
		candidates = append(candidates, c)
		i++
		next := cal.Add(base, i*step, unit)
		if !next.After(c) {
			// Overflowed.
			break
		}
		c = next
	}

	// Units like months vary in length,
	// so measure each step by the interval the value falls in.
	for i, c := range candidates {
		var half time.Duration
		if !c.After(t) {
			half = cal.Add(c, step, unit).Sub(c) / 2
		} else if i > 0 {
			half = c.Sub(candidates[i-1]) / 2
		} else {
			half = c.Sub(cal.Add(c, -step, unit)) / 2
		}
		if absDuration(t.Sub(c)) <= half {
			return c, nil
		}
	}
	return time.Time{}, &UnboundedRoundingError{Value: t, Unit: unit, Step: step}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// Step is a rounding increment for [RoundTimestamp].
type Step struct {
	Unit Unit
	Size int
}

// MinuteStep returns a step of size minutes,
// the meaning of a bare number in older configurations.
func MinuteStep(size int) *Step {
	return &Step{Unit: Minute, Size: size}
}

// RoundTimestamp reads date without a format
// and returns it as Unix seconds.
// If step is not nil, the step's unit is first rounded
// to the nearest multiple of its size (halves round up)
// and every smaller unit is reset.
// Rounded fields that overflow carry into the next larger unit,
// so 10:58 rounded to 5 minutes is 11:00.
// RoundTimestamp returns false if date cannot be read
// or step is not a positive size of year through second.
func RoundTimestamp(cal Calendar, date string, step *Step) (int64, bool) {
	t, err := cal.ParseAny(date)
	if err != nil {
		return 0, false
	}
	if step == nil {
		return t.Unix(), true
	}
	if step.Size < 1 || step.Unit < Year || step.Unit > Second {
		return 0, false
	}

	// Indexed by unit, year through second.
	fields := [...]int{
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(),
	}
	i := int(step.Unit)
	fields[i] = int(math.Round(float64(fields[i])/float64(step.Size))) * step.Size
	for j := i + 1; j < len(fields); j++ {
		if Unit(j).isDate() {
			fields[j] = 1
		} else {
			fields[j] = 0
		}
	}
	rounded := time.Date(
		fields[Year], time.Month(fields[Month]), fields[Day],
		fields[Hour], fields[Minute], fields[Second],
		0, t.Location(),
	)
	return rounded.Unix(), true
}
