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
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/spf13/cobra"
	"zombiezen.com/go/datefield"
	"zombiezen.com/go/log"
)

type interpretation struct {
	Input     string `json:"input"`
	Value     string `json:"value,omitzero"`
	Variation string `json:"variation,omitzero"`
}

func newInterpretCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:           "interpret [flags] INPUT [...]",
		Short:         "Interpret loosely typed values",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	var format outputFormat
	registerOutputFormatFlagVar(c, &format)
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runInterpret(cmd.Context(), g, format, args)
	}
	return c
}

func runInterpret(ctx context.Context, g *globalConfig, format outputFormat, inputs []string) error {
	p, err := g.compile(ctx)
	if err != nil {
		return err
	}

	var w *csv.Writer
	if format == csvOutputFormat {
		w = csv.NewWriter(os.Stdout)
		w.Write([]string{"Input", "Value", "Variation"})
	}
	failed := 0
	for _, input := range inputs {
		result := interpretation{Input: input}
		if m, ok := p.Match(input); ok {
			log.Debugf(ctx, "%q matched %q", input, m.Variation)
			result.Value = p.ISO(m.Time)
			result.Variation = m.Variation
		} else {
			log.Debugf(ctx, "%q matched no variation", input)
			failed++
		}

		switch format {
		case plainOutputFormat:
			if result.Value == "" {
				fmt.Println(datefield.InvalidDate)
			} else {
				fmt.Println(result.Value)
			}
		case csvOutputFormat:
			if err := w.Write([]string{result.Input, result.Value, result.Variation}); err != nil {
				return err
			}
		case jsonOutputFormat:
			line, err := jsonv2.Marshal(result)
			if err != nil {
				return fmt.Errorf("input %q: %v", input, err)
			}
			line = append(line, '\n')
			if _, err := os.Stdout.Write(line); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unhandled format %v", format)
		}
	}
	if w != nil {
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d input(s) could not be interpreted as %q", failed, len(inputs), p)
	}
	return nil
}

func newFormatCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:           "format [flags] INPUT",
		Short:         "Rewrite a loosely typed value in the pattern",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	as := c.Flags().String("as", "", "token `format` to render in instead of the pattern")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runFormat(cmd.Context(), g, args[0], *as)
	}
	return c
}

func runFormat(ctx context.Context, g *globalConfig, input, format string) error {
	p, err := g.compile(ctx)
	if err != nil {
		return err
	}
	s, ok := p.Reformat(input, format)
	if !ok {
		return fmt.Errorf("cannot interpret %q as %q", input, p)
	}
	fmt.Println(s)
	return nil
}

func newISOCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:           "iso INPUT",
		Short:         "Show the canonical form of a value",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		p, err := g.compile(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(p.ISOString(args[0]))
		return nil
	}
	return c
}

func newVariationsCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:           "variations",
		Short:         "List the formats tried when interpreting, in order",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		p, err := g.compile(cmd.Context())
		if err != nil {
			return err
		}
		for _, v := range p.Variations() {
			fmt.Println(v)
		}
		return nil
	}
	return c
}

type segmentRecord struct {
	Unit      datefield.Unit `json:"unit"`
	Tokens    []string       `json:"tokens"`
	Start     int            `json:"start"`
	End       int            `json:"end"`
	Separator string         `json:"separator,omitzero"`
}

func newSegmentsCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:           "segments",
		Short:         "Show how the pattern is broken into segments",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	var format outputFormat
	registerOutputFormatFlagVar(c, &format)
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runSegments(cmd.Context(), g, format)
	}
	return c
}

func runSegments(ctx context.Context, g *globalConfig, format outputFormat) error {
	p, err := g.compile(ctx)
	if err != nil {
		return err
	}
	separators := p.Separators()

	var w *csv.Writer
	if format == csvOutputFormat {
		w = csv.NewWriter(os.Stdout)
		w.Write([]string{"Unit", "Tokens", "Start", "End", "Separator"})
	}
	for i, seg := range p.Segments() {
		rec := segmentRecord{
			Unit:   seg.Unit,
			Tokens: seg.Tokens,
			Start:  seg.Start,
			End:    seg.End,
		}
		// The separator that precedes the segment.
		if i > 0 {
			rec.Separator = separators[i-1]
		}

		switch format {
		case plainOutputFormat:
			fmt.Printf("%-8v %-8s %d-%d\n", rec.Unit, strings.Join(rec.Tokens, "|"), rec.Start, rec.End)
		case csvOutputFormat:
			row := []string{
				rec.Unit.String(),
				strings.Join(rec.Tokens, " "),
				strconv.Itoa(rec.Start),
				strconv.Itoa(rec.End),
				rec.Separator,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		case jsonOutputFormat:
			line, err := jsonv2.Marshal(rec)
			if err != nil {
				return fmt.Errorf("segment %d: %v", i, err)
			}
			line = append(line, '\n')
			if _, err := os.Stdout.Write(line); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unhandled format %v", format)
		}
	}
	if w != nil {
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
	}
	return nil
}

func newAtCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:           "at START [END]",
		Short:         "Show the segment under a cursor or selection",
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		start, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("start: %v", err)
		}
		end := 0
		if len(args) > 1 {
			end, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("end: %v", err)
			}
		}
		return runAt(cmd.Context(), g, start, end)
	}
	return c
}

func runAt(ctx context.Context, g *globalConfig, start, end int) error {
	p, err := g.compile(ctx)
	if err != nil {
		return err
	}
	sel, ok := p.At(start, end)
	switch {
	case !ok:
		return fmt.Errorf("no segment of %q at %d", p, start)
	case sel.Whole:
		fmt.Println("whole")
	default:
		fmt.Printf("%v %d-%d\n", sel.Segment.Unit, sel.Segment.Start, sel.Segment.End)
	}
	return nil
}
