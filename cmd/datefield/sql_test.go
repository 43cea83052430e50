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

	"zombiezen.com/go/datefield"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

func TestSQLFunctions(t *testing.T) {
	tests := []struct {
		query string
		want  string
		null  bool
	}{
		{
			query: "SELECT datefield_interpret('YYYY-MM-DD', '20/8/1');",
			want:  "2020-08-01 00:00:00",
		},
		{
			query: "SELECT datefield_interpret('MM/DD/YY HH:mm', '8/2');",
			want:  "2026-08-02 00:00:00",
		},
		{
			query: "SELECT datefield_interpret('YYYY-MM-DD', 'nope');",
			null:  true,
		},
		{
			query: "SELECT datefield_interpret('YYYY-MM-DD', NULL);",
			null:  true,
		},
		{
			query: "SELECT datefield_format('YYYY-MM-DD', '20/3/1');",
			want:  "2020-03-01",
		},
		{
			query: "SELECT datefield_format('YYYY-MM-DD', '20/3/1', 'MM/DD/YY');",
			want:  "03/01/20",
		},
		{
			query: "SELECT datefield_iso('HH:mm:ss', '15:03:12');",
			want:  "15:03:12",
		},
		{
			query: "SELECT datefield_iso('YYYY-MM-DD', 'aaa');",
			want:  datefield.InvalidDate,
		},
		{
			query: "SELECT datefield_nearest('2021-08-17 19:27:13', 'second', 10);",
			want:  "2021-08-17 19:27:10",
		},
		{
			query: "SELECT datefield_nearest('nope', 'second', 10);",
			null:  true,
		},
		{
			query: "SELECT datefield_round('2021-08-17 19:27:15');",
			want:  "1629228435",
		},
		{
			query: "SELECT datefield_round('2021-08-17 19:27:15', 5);",
			want:  "1629228300",
		},
		{
			query: "SELECT datefield_round('2021-08-17 19:27:15', 'month', 3);",
			want:  "1630454400",
		},
		{
			query: "SELECT datefield_round('nope', 5);",
			null:  true,
		},
	}

	conn := openTestConn(t)
	for _, test := range tests {
		var got string
		var isNull, found bool
		err := sqlitex.ExecuteTransient(conn, test.query, &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				found = true
				isNull = stmt.ColumnType(0) == sqlite.TypeNull
				got = stmt.ColumnText(0)
				return nil
			},
		})
		if err != nil {
			t.Errorf("%s: %v", test.query, err)
			continue
		}
		if !found {
			t.Errorf("%s: no rows", test.query)
			continue
		}
		switch {
		case test.null && !isNull:
			t.Errorf("%s = %q; want NULL", test.query, got)
		case !test.null && (isNull || got != test.want):
			t.Errorf("%s = %q (null=%t); want %q", test.query, got, isNull, test.want)
		}
	}
}

func TestSQLFunctionErrors(t *testing.T) {
	queries := []string{
		"SELECT datefield_interpret('HH:mm at', '10:00');",
		"SELECT datefield_format('YYYY');",
		"SELECT datefield_nearest('2021-08-17', 'fortnight', 1);",
		"SELECT datefield_nearest('2021-08-17', 'minute', 0);",
		"SELECT datefield_nearest('2021-08-17', 'second', 9223372036854775807);",
		"SELECT datefield_round('2021-08-17', 'fortnight', 1);",
		"SELECT datefield_round('2021-08-17', 'minute', 1, 2);",
	}
	conn := openTestConn(t)
	for _, query := range queries {
		if err := sqlitex.ExecuteTransient(conn, query, nil); err == nil {
			t.Errorf("%s did not return an error", query)
		}
	}
}

func openTestConn(t *testing.T) *sqlite.Conn {
	t.Helper()
	conn, err := sqlite.OpenConn(":memory:", sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Error(err)
		}
	})
	refTime := time.Date(2026, time.January, 23, 8, 30, 0, 0, time.UTC)
	cal := &datefield.TokenCalendar{Clock: func() time.Time { return refTime }}
	if err := prepareConn(conn, cal, false); err != nil {
		t.Fatal(err)
	}
	return conn
}
