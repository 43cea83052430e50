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

package main

import (
	"fmt"
	"strings"
	"time"

	"zombiezen.com/go/gregorian"
)

// parseToday parses the argument to --today.
func parseToday(s string) (gregorian.Date, error) {
	d, err := gregorian.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return gregorian.Date{}, fmt.Errorf("--today: %v", err)
	}
	if d.IsZero() {
		return gregorian.Date{}, fmt.Errorf("--today: empty date")
	}
	return d, nil
}

// fixedClock returns a clock that always reads midnight of d in loc.
// A nil loc is UTC.
func fixedClock(d gregorian.Date, loc *time.Location) func() time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return func() time.Time { return t }
}

func localDateFromTime(t time.Time) gregorian.Date {
	if t.IsZero() {
		return gregorian.Date{}
	}
	return gregorian.NewDate(t.Year(), t.Month(), t.Day())
}
