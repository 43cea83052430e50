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

	"github.com/spf13/cobra"
	"zombiezen.com/go/datefield"
	"zombiezen.com/go/log"
)

type nearestOptions struct {
	*globalConfig

	value string
	unit  string
	step  int
}

func newNearestCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:           "nearest [flags] VALUE",
		Short:         "Round a value to the nearest step",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	opts := &nearestOptions{globalConfig: g}
	c.Flags().StringVar(&opts.unit, "unit", "", "`unit` to round ("+unitOptions()+"; default from config or minute)")
	c.Flags().IntVar(&opts.step, "step", 0, "step `size` in units (default from config or 1)")
	registerUnitFlagCompletion(c, "unit")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		opts.value = args[0]
		return runNearest(cmd.Context(), opts)
	}
	return c
}

func runNearest(ctx context.Context, opts *nearestOptions) error {
	p, err := opts.compile(ctx)
	if err != nil {
		return err
	}
	step, err := resolveStep(opts.step, opts.unit, opts.globalConfig.step)
	if err != nil {
		return err
	}

	t, ok := p.Interpret(opts.value)
	if !ok {
		t, err = p.Calendar().ParseAny(opts.value)
		if err != nil {
			return fmt.Errorf("cannot interpret %q as %q", opts.value, p)
		}
		log.Debugf(ctx, "Read %q without the pattern as %v", opts.value, t)
	}
	rounded, err := datefield.Nearest(p.Calendar(), t, step.Unit, step.Size)
	if err != nil {
		return err
	}
	fmt.Println(p.ISO(rounded))
	return nil
}

// resolveStep picks the rounding step from flags,
// falling back to the configured step and then to one minute.
func resolveStep(size int, unit string, configured *datefield.Step) (*datefield.Step, error) {
	step := &datefield.Step{Unit: datefield.Minute, Size: 1}
	if configured != nil {
		*step = *configured
	}
	if unit != "" {
		var err error
		step.Unit, err = datefield.ParseUnit(unit)
		if err != nil {
			return nil, err
		}
	}
	if size != 0 {
		step.Size = size
	}
	if step.Size < 1 {
		return nil, fmt.Errorf("step size %d is not positive", step.Size)
	}
	return step, nil
}

type roundOptions struct {
	*globalConfig

	date    string
	unit    string
	size    int
	minutes int
}

func newRoundCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:           "round [flags] DATE",
		Short:         "Print a date as a Unix timestamp, optionally rounded",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	opts := &roundOptions{globalConfig: g}
	c.Flags().StringVar(&opts.unit, "unit", "", "`unit` to round ("+unitOptions()+")")
	c.Flags().IntVar(&opts.size, "size", 0, "round to a multiple of `n` units")
	c.Flags().IntVar(&opts.minutes, "minutes", 0, "round to a multiple of `n` minutes")
	c.MarkFlagsMutuallyExclusive("minutes", "unit")
	c.MarkFlagsMutuallyExclusive("minutes", "size")
	registerUnitFlagCompletion(c, "unit")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		opts.date = args[0]
		return runRound(cmd.Context(), opts)
	}
	return c
}

func runRound(ctx context.Context, opts *roundOptions) error {
	cal, err := opts.calendar()
	if err != nil {
		return err
	}

	var step *datefield.Step
	switch {
	case opts.minutes != 0:
		step = datefield.MinuteStep(opts.minutes)
	case opts.unit != "" || opts.size != 0:
		step, err = resolveStep(opts.size, opts.unit, opts.globalConfig.step)
		if err != nil {
			return err
		}
	default:
		step = opts.globalConfig.step
	}
	if step != nil {
		log.Debugf(ctx, "Rounding to %d %v", step.Size, step.Unit)
	}

	ts, ok := datefield.RoundTimestamp(cal, opts.date, step)
	if !ok {
		return fmt.Errorf("cannot round %q", opts.date)
	}
	fmt.Println(ts)
	return nil
}
