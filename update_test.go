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
	"testing"
	"time"
)

func TestUpdate(t *testing.T) {
	value := time.Date(2021, time.August, 17, 19, 27, 15, 0, time.UTC)
	from := time.Date(2020, time.January, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		value time.Time
		part  Part
		from  time.Time
		want  time.Time
	}{
		{
			value: value,
			part:  DatePart,
			from:  from,
			want:  time.Date(2020, time.January, 2, 19, 27, 15, 0, time.UTC),
		},
		{
			value: value,
			part:  TimePart,
			from:  from,
			want:  time.Date(2021, time.August, 17, 3, 4, 5, 0, time.UTC),
		},
		{
			// Values are compared in UTC.
			value: time.Date(2021, time.August, 18, 1, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60)),
			part:  TimePart,
			from:  from,
			want:  time.Date(2021, time.August, 17, 3, 4, 5, 0, time.UTC),
		},
	}
	for _, test := range tests {
		got := Update(test.value, test.part, test.from)
		if !got.Equal(test.want) || got.Location() != time.UTC {
			t.Errorf("Update(%v, %d, %v) = %v; want %v", test.value, test.part, test.from, got, test.want)
		}
	}
}

func TestValidate(t *testing.T) {
	day := func(s string) time.Time {
		v, err := time.Parse(time.DateOnly, s)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}
	dateTime := func(s string) time.Time {
		v, err := time.Parse(time.DateTime, s)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}

	tests := []struct {
		name      string
		value     time.Time
		reference string
		cond      Condition
		unit      Unit
		want      bool
	}{
		{name: "NoReference", value: day("2020-01-05"), want: true},
		{name: "ZeroValue", value: time.Time{}, want: false},
		{name: "ZeroValueWithReference", value: time.Time{}, reference: "2020-01-01", want: false},
		{name: "BadReference", value: day("2020-01-05"), reference: "Invalid", cond: After, unit: Day, want: false},

		{name: "MinByDay/Same", value: day("2020-01-05"), reference: "2020-01-05", cond: After, unit: Day, want: true},
		{name: "MinByDay/After", value: day("2020-01-06"), reference: "2020-01-05", cond: After, unit: Day, want: true},
		{name: "MinByDay/Before", value: day("2020-01-04"), reference: "2020-01-05", cond: After, unit: Day, want: false},

		{name: "MinByMonth/Same", value: day("2020-01-05"), reference: "2020-01-05", cond: After, unit: Month, want: true},
		{name: "MinByMonth/LaterDay", value: day("2020-01-06"), reference: "2020-01-05", cond: After, unit: Month, want: true},
		{name: "MinByMonth/EarlierDay", value: day("2020-01-04"), reference: "2020-01-05", cond: After, unit: Month, want: true},
		{name: "MinByMonth/Before", value: day("2019-12-12"), reference: "2020-01-05", cond: After, unit: Month, want: false},

		{name: "MaxByDay/Same", value: day("2020-01-05"), reference: "2020-01-05", cond: Before, unit: Day, want: true},
		{name: "MaxByDay/After", value: day("2020-01-06"), reference: "2020-01-05", cond: Before, unit: Day, want: false},
		{name: "MaxByDay/Before", value: day("2020-01-04"), reference: "2020-01-05", cond: Before, unit: Day, want: true},

		{name: "MaxByMonth/Same", value: day("2020-01-05"), reference: "2020-01-05", cond: Before, unit: Month, want: true},
		{name: "MaxByMonth/LaterDay", value: day("2020-01-06"), reference: "2020-01-05", cond: Before, unit: Month, want: true},
		{name: "MaxByMonth/EarlierDay", value: day("2020-01-04"), reference: "2020-01-05", cond: Before, unit: Month, want: true},
		{name: "MaxByMonth/After", value: day("2020-02-12"), reference: "2020-01-05", cond: Before, unit: Month, want: false},

		{name: "TimeOnly/Same", value: dateTime("2020-01-05 15:05:00"), reference: "15:05:00", cond: Before, unit: Second, want: true},
		{name: "TimeOnly/Before", value: dateTime("2020-01-05 15:00:00"), reference: "15:05:00", cond: Before, unit: Second, want: true},
		{name: "TimeOnly/After", value: dateTime("2020-01-05 15:10:00"), reference: "15:05:00", cond: Before, unit: Second, want: false},
	}

	cal := fixedCalendar()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Validate(cal, test.value, test.reference, test.cond, test.unit)
			if got != test.want {
				t.Errorf("Validate(cal, %v, %q, %d, %v) = %t; want %t",
					test.value, test.reference, test.cond, test.unit, got, test.want)
			}
		})
	}
}
