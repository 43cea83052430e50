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
	"context"
	"fmt"
	"time"

	"zombiezen.com/go/datefield"
	"zombiezen.com/go/log"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/ext/refunc"
	"zombiezen.com/go/sqlite/sqlitex"
	"zombiezen.com/go/xcontext"
)

// openDB opens the database at path, or an in-memory database if path is empty,
// with the datefield functions registered.
func (g *globalConfig) openDB(ctx context.Context, path string) (*sqlite.Conn, error) {
	if path == "" {
		path = ":memory:"
	}
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return nil, err
	}
	conn.SetInterrupt(ctx.Done())
	cal, err := g.calendar()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := prepareConn(conn, cal, g.ignoreLiterals); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func closeConn(ctx context.Context, conn *sqlite.Conn) {
	ctx, cancel := xcontext.KeepAlive(ctx, 10*time.Second)
	defer cancel()
	conn.SetInterrupt(ctx.Done())
	if err := sqlitex.ExecuteTransient(conn, `PRAGMA optimize;`, nil); err != nil {
		log.Warnf(ctx, "Database optimization failed: %v", err)
	}
	if err := conn.Close(); err != nil {
		log.Errorf(ctx, "Closing database connection: %v", err)
	}
}

// patternCache holds the patterns compiled for one connection.
// SQLite calls functions on the connection's goroutine,
// so it needs no locking.
type patternCache struct {
	cal            datefield.Calendar
	ignoreLiterals bool
	patterns       map[string]*datefield.Pattern
}

func (pc *patternCache) get(pattern string) (*datefield.Pattern, error) {
	if p := pc.patterns[pattern]; p != nil {
		return p, nil
	}
	p, err := datefield.New(pattern, &datefield.Options{
		Calendar:       pc.cal,
		IgnoreLiterals: pc.ignoreLiterals,
	})
	if err != nil {
		return nil, err
	}
	if pc.patterns == nil {
		pc.patterns = make(map[string]*datefield.Pattern)
	}
	pc.patterns[pattern] = p
	return p, nil
}

func prepareConn(conn *sqlite.Conn, cal datefield.Calendar, ignoreLiterals bool) error {
	if err := refunc.Register(conn); err != nil {
		return err
	}
	pc := &patternCache{cal: cal, ignoreLiterals: ignoreLiterals}

	// datefield_interpret(pattern TEXT, input TEXT) -> TEXT | NULL
	// Interpret input under pattern, returning the canonical form
	// or NULL if input cannot be interpreted.
	// Values that omit the year or day depend on the current date.
	err := conn.CreateFunction("datefield_interpret", &sqlite.FunctionImpl{
		NArgs:         2,
		Deterministic: false,
		AllowIndirect: true,
		Scalar: func(ctx sqlite.Context, args []sqlite.Value) (sqlite.Value, error) {
			p, err := pc.get(args[0].Text())
			if err != nil {
				return sqlite.Value{}, err
			}
			if args[1].Type() == sqlite.TypeNull {
				return sqlite.Value{}, nil
			}
			t, ok := p.Interpret(args[1].Text())
			if !ok {
				return sqlite.Value{}, nil
			}
			return sqlite.TextValue(p.ISO(t)), nil
		},
	})
	if err != nil {
		return err
	}
	// datefield_format(pattern TEXT, input TEXT[, format TEXT]) -> TEXT | NULL
	// Rewrite input in pattern (or format, if given),
	// returning NULL if input cannot be interpreted.
	err = conn.CreateFunction("datefield_format", &sqlite.FunctionImpl{
		NArgs:         -1,
		Deterministic: false,
		AllowIndirect: true,
		Scalar: func(ctx sqlite.Context, args []sqlite.Value) (sqlite.Value, error) {
			if len(args) != 2 && len(args) != 3 {
				return sqlite.Value{}, fmt.Errorf("datefield_format: takes 2 or 3 arguments (got %d)", len(args))
			}
			p, err := pc.get(args[0].Text())
			if err != nil {
				return sqlite.Value{}, err
			}
			if args[1].Type() == sqlite.TypeNull {
				return sqlite.Value{}, nil
			}
			var format string
			if len(args) == 3 {
				format = args[2].Text()
			}
			s, ok := p.Reformat(args[1].Text(), format)
			if !ok {
				return sqlite.Value{}, nil
			}
			return sqlite.TextValue(s), nil
		},
	})
	if err != nil {
		return err
	}
	// datefield_iso(pattern TEXT, input TEXT) -> TEXT
	// Like datefield_interpret, but also accepts canonical values
	// and returns 'Invalid Date' instead of NULL.
	err = conn.CreateFunction("datefield_iso", &sqlite.FunctionImpl{
		NArgs:         2,
		Deterministic: false,
		AllowIndirect: true,
		Scalar: func(ctx sqlite.Context, args []sqlite.Value) (sqlite.Value, error) {
			p, err := pc.get(args[0].Text())
			if err != nil {
				return sqlite.Value{}, err
			}
			return sqlite.TextValue(p.ISOString(args[1].Text())), nil
		},
	})
	if err != nil {
		return err
	}
	// datefield_nearest(value TEXT, unit TEXT, step INTEGER) -> TEXT | NULL
	// Round value to the nearest step of unit.
	// Returns NULL if value cannot be read.
	err = conn.CreateFunction("datefield_nearest", &sqlite.FunctionImpl{
		NArgs:         3,
		Deterministic: true,
		AllowIndirect: true,
		Scalar: func(ctx sqlite.Context, args []sqlite.Value) (sqlite.Value, error) {
			unit, err := datefield.ParseUnit(args[1].Text())
			if err != nil {
				return sqlite.Value{}, fmt.Errorf("datefield_nearest: %v", err)
			}
			if args[0].Type() == sqlite.TypeNull {
				return sqlite.Value{}, nil
			}
			t, err := cal.ParseAny(args[0].Text())
			if err != nil {
				return sqlite.Value{}, nil
			}
			rounded, err := datefield.Nearest(cal, t, unit, int(args[2].Int64()))
			if err != nil {
				return sqlite.Value{}, fmt.Errorf("datefield_nearest: %v", err)
			}
			return sqlite.TextValue(cal.Format(rounded, datefield.ISODateTimeFormat)), nil
		},
	})
	if err != nil {
		return err
	}
	// datefield_round(date TEXT[, minutes INTEGER]) -> INTEGER | NULL
	// datefield_round(date TEXT, unit TEXT, size INTEGER) -> INTEGER | NULL
	// Read date and return it as Unix seconds,
	// optionally rounded to a multiple of minutes or of size units.
	err = conn.CreateFunction("datefield_round", &sqlite.FunctionImpl{
		NArgs:         -1,
		Deterministic: true,
		AllowIndirect: true,
		Scalar: func(ctx sqlite.Context, args []sqlite.Value) (sqlite.Value, error) {
			var step *datefield.Step
			switch len(args) {
			case 1:
			case 2:
				if args[1].Type() != sqlite.TypeNull {
					step = datefield.MinuteStep(int(args[1].Int64()))
				}
			case 3:
				unit, err := datefield.ParseUnit(args[1].Text())
				if err != nil {
					return sqlite.Value{}, fmt.Errorf("datefield_round: %v", err)
				}
				step = &datefield.Step{Unit: unit, Size: int(args[2].Int64())}
			default:
				return sqlite.Value{}, fmt.Errorf("datefield_round: takes 1 to 3 arguments (got %d)", len(args))
			}
			ts, ok := datefield.RoundTimestamp(cal, args[0].Text(), step)
			if !ok {
				return sqlite.Value{}, nil
			}
			return sqlite.IntegerValue(ts), nil
		},
	})
	if err != nil {
		return err
	}

	return nil
}
