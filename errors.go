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
	"errors"
	"fmt"
	"time"
)

// UnrecognizedTokenError is returned by [New]
// when a pattern contains a word that is not a date or time token.
type UnrecognizedTokenError struct {
	Pattern string
	Token   string
	Offset  int // in characters
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("pattern %q: unrecognized token %q at offset %d", e.Pattern, e.Token, e.Offset)
}

// IsUnrecognizedToken reports whether err is or wraps an [*UnrecognizedTokenError].
func IsUnrecognizedToken(err error) bool {
	return errors.As(err, new(*UnrecognizedTokenError))
}

// UnboundedRoundingError is returned by [Nearest]
// if no step in the search window is close enough to the value.
// It indicates a bug in the calendar, not bad input.
type UnboundedRoundingError struct {
	Value time.Time
	Unit  Unit
	Step  int
}

func (e *UnboundedRoundingError) Error() string {
	return fmt.Sprintf("round %v to nearest %d %v: no step within window", e.Value, e.Step, e.Unit)
}

// InvalidStepError is returned by [Nearest] for a unit or step size
// that cannot be rounded to.
type InvalidStepError struct {
	Unit Unit
	Step int
}

func (e *InvalidStepError) Error() string {
	switch {
	case e.Step < 1:
		return fmt.Sprintf("step size %d is not positive", e.Step)
	case e.Unit < Year || e.Unit >= Meridiem:
		return fmt.Sprintf("cannot round to %v", e.Unit)
	default:
		return fmt.Sprintf("step of %d %v is out of range", e.Step, e.Unit)
	}
}

// ParseError is returned by [TokenCalendar.Parse]
// when a value does not match a format.
type ParseError struct {
	Value  string
	Format string
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q as %q: %s", e.Value, e.Format, e.Msg)
}
