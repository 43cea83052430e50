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
	"os"
	"path/filepath"
	"testing"

	"zombiezen.com/go/datefield"
)

func TestReadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    config
		wantErr bool
	}{
		{
			name:    "Empty",
			content: "",
			want:    config{},
		},
		{
			name: "Full",
			content: "pattern = \"DD.MM.YYYY at HH:mm\"\n" +
				"location = \"Europe/Berlin\"\n" +
				"ignore_literals = true\n" +
				"[step]\n" +
				"unit = \"hour\"\n" +
				"size = 2\n",
			want: config{
				Pattern:        "DD.MM.YYYY at HH:mm",
				Location:       "Europe/Berlin",
				IgnoreLiterals: true,
				Step:           &stepConfig{Unit: datefield.Hour, Size: 2},
			},
		},
		{
			name:    "StepDefaultsToMinutes",
			content: "[step]\nsize = 15\n",
			want:    config{Step: &stepConfig{Unit: datefield.Minute, Size: 15}},
		},
		{
			name:    "StepWithoutSize",
			content: "[step]\nunit = \"day\"\n",
			wantErr: true,
		},
		{
			name:    "NegativeStep",
			content: "[step]\nsize = -1\n",
			wantErr: true,
		},
		{
			name:    "MeridiemStep",
			content: "[step]\nunit = \"meridiem\"\nsize = 1\n",
			wantErr: true,
		},
		{
			name:    "UnknownUnit",
			content: "[step]\nunit = \"fortnight\"\nsize = 1\n",
			wantErr: true,
		},
		{
			name:    "Malformed",
			content: "pattern = ",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "datefield.toml")
			if err := os.WriteFile(path, []byte(test.content), 0o666); err != nil {
				t.Fatal(err)
			}
			got, err := readConfig(t.Context(), path)
			if test.wantErr {
				if err == nil {
					t.Errorf("readConfig(...) = %+v, <nil>; want error", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !configEqual(got, &test.want) {
				t.Errorf("readConfig(...) = %+v; want %+v", got, &test.want)
			}
		})
	}
}

func TestReadConfigMissing(t *testing.T) {
	_, err := readConfig(t.Context(), filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("readConfig on missing file did not return an error")
	}
}

func configEqual(a, b *config) bool {
	if a.Pattern != b.Pattern || a.Location != b.Location || a.IgnoreLiterals != b.IgnoreLiterals {
		return false
	}
	if a.Step == nil || b.Step == nil {
		return a.Step == b.Step
	}
	return *a.Step == *b.Step
}
