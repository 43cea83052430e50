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
	"testing"
	"time"

	"zombiezen.com/go/gregorian"
)

func TestParseToday(t *testing.T) {
	tests := []struct {
		s    string
		want gregorian.Date
		err  bool
	}{
		{s: "", err: true},
		{s: "  \t ", err: true},
		{s: "2026-01-23", want: gregorian.NewDate(2026, time.January, 23)},
		{s: "  2026-01-23  ", want: gregorian.NewDate(2026, time.January, 23)},
		{s: "Jan 23", err: true},
	}

	for _, test := range tests {
		got, err := parseToday(test.s)
		if !got.Equal(test.want) || (err != nil) != test.err {
			if test.err {
				t.Errorf("parseToday(%q) = %v, %v; want _, <error>", test.s, got, err)
			} else {
				t.Errorf("parseToday(%q) = %v, %v; want %v, <nil>", test.s, got, err, test.want)
			}
		}
	}
}

func TestFixedClock(t *testing.T) {
	refLocation := time.FixedZone("America/Los_Angeles", -8*int(time.Hour/time.Second))
	d := gregorian.NewDate(2026, time.January, 23)

	tests := []struct {
		loc  *time.Location
		want time.Time
	}{
		{loc: nil, want: time.Date(2026, time.January, 23, 0, 0, 0, 0, time.UTC)},
		{loc: refLocation, want: time.Date(2026, time.January, 23, 0, 0, 0, 0, refLocation)},
	}
	for _, test := range tests {
		clock := fixedClock(d, test.loc)
		if got := clock(); !got.Equal(test.want) {
			t.Errorf("fixedClock(%v, %v)() = %v; want %v", d, test.loc, got, test.want)
		}
		if got := localDateFromTime(clock()); !got.Equal(d) {
			t.Errorf("localDateFromTime(fixedClock(%v, %v)()) = %v; want %v", d, test.loc, got, d)
		}
	}
}
