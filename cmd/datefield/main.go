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
	"cmp"
	"context"
	"fmt"
	"iter"
	"os"
	"os/signal"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"zombiezen.com/go/datefield"
	"zombiezen.com/go/log"
)

const defaultPattern = "YYYY-MM-DD"

type globalConfig struct {
	configPath     string
	pattern        string
	location       string
	today          string
	ignoreLiterals bool

	// step is the default rounding step from the configuration file, if any.
	step *datefield.Step
}

// load merges the configuration file into any settings
// not given on the command line.
func (g *globalConfig) load(ctx context.Context, flags interface{ Changed(string) bool }) error {
	cfg := new(config)
	if g.configPath != "" {
		var err error
		cfg, err = readConfig(ctx, g.configPath)
		if err != nil {
			return err
		}
	}
	if !flags.Changed("pattern") {
		g.pattern = cmp.Or(cfg.Pattern, defaultPattern)
	}
	if !flags.Changed("location") {
		g.location = cfg.Location
	}
	if !flags.Changed("ignore-literals") {
		g.ignoreLiterals = cfg.IgnoreLiterals
	}
	if cfg.Step != nil {
		g.step = &datefield.Step{Unit: cfg.Step.Unit, Size: cfg.Step.Size}
	}
	return nil
}

func (g *globalConfig) calendar() (*datefield.TokenCalendar, error) {
	cal := new(datefield.TokenCalendar)
	if g.location != "" {
		loc, err := time.LoadLocation(g.location)
		if err != nil {
			return nil, fmt.Errorf("location: %v", err)
		}
		cal.Location = loc
	}
	if g.today != "" {
		d, err := parseToday(g.today)
		if err != nil {
			return nil, err
		}
		cal.Clock = fixedClock(d, cal.Location)
	}
	return cal, nil
}

func (g *globalConfig) compile(ctx context.Context) (*datefield.Pattern, error) {
	cal, err := g.calendar()
	if err != nil {
		return nil, err
	}
	p, err := datefield.New(g.pattern, &datefield.Options{
		Calendar:       cal,
		IgnoreLiterals: g.ignoreLiterals,
	})
	if err != nil {
		return nil, err
	}
	log.Debugf(ctx, "Pattern %q with reference date %v", p, localDateFromTime(cal.Now()))
	return p, nil
}

func main() {
	rootCommand := &cobra.Command{
		Use:           "datefield",
		Short:         "interpret loosely typed dates against a display pattern",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	g := new(globalConfig)
	showDebug := rootCommand.PersistentFlags().Bool("debug", false, "show debugging output")
	rootCommand.PersistentFlags().StringVar(&g.configPath, "config", os.Getenv("DATEFIELD_CONFIG"), "`path` to TOML configuration file")
	rootCommand.PersistentFlags().StringVarP(&g.pattern, "pattern", "p", "", "display `pattern` (default \""+defaultPattern+"\")")
	rootCommand.PersistentFlags().StringVar(&g.location, "location", "", "IANA time zone `name` (default UTC)")
	rootCommand.PersistentFlags().StringVar(&g.today, "today", "", "reference `date` for values that omit the year or day")
	rootCommand.PersistentFlags().BoolVar(&g.ignoreLiterals, "ignore-literals", false, "treat unknown words in the pattern as separators")
	rootCommand.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		initLogging(*showDebug)
		return g.load(cmd.Context(), cmd.Flags())
	}

	rootCommand.AddCommand(
		newAtCommand(g),
		newFormatCommand(g),
		newInterpretCommand(g),
		newISOCommand(g),
		newNearestCommand(g),
		newQueryCommand(g),
		newRoundCommand(g),
		newSegmentsCommand(g),
		newShellCommand(g),
		newVariationsCommand(g),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), sigterm...)
	err := rootCommand.ExecuteContext(ctx)
	cancel()
	if err != nil {
		initLogging(*showDebug)
		log.Errorf(context.Background(), "%v", err)
		os.Exit(1)
	}
}

// outputFormat is an enumeration of output formats for the CLI.
type outputFormat string

// Known output formats.
// Can be listed with [knownOutputFormats].
const (
	plainOutputFormat outputFormat = "plain"
	csvOutputFormat   outputFormat = "csv"
	jsonOutputFormat  outputFormat = "json"
)

// knownOutputFormats is an [iter.Seq] over all the known [outputFormat] values.
func knownOutputFormats(yield func(outputFormat) bool) {
	if !yield(plainOutputFormat) {
		return
	}
	if !yield(csvOutputFormat) {
		return
	}
	if !yield(jsonOutputFormat) {
		return
	}
}

func registerOutputFormatFlagVar(c *cobra.Command, p *outputFormat) {
	options := joinSeq(func(yield func(string) bool) {
		knownOutputFormats(func(f outputFormat) bool {
			return yield(string(f))
		})
	}, ", ", "or")

	*p = plainOutputFormat // set default
	const name = "format"
	c.Flags().Var(p, name, "output `format` ("+options+")")

	completions := slices.Collect(func(yield func(cobra.Completion) bool) {
		knownOutputFormats(func(f outputFormat) bool {
			return yield(cobra.Completion(f))
		})
	})
	c.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(completions, cobra.ShellCompDirectiveDefault))
}

func (f outputFormat) isKnown() bool {
	for known := range knownOutputFormats {
		if f == known {
			return true
		}
	}
	return false
}

func (f outputFormat) String() string {
	return string(f)
}

func (f *outputFormat) Set(s string) error {
	newValue := outputFormat(s)
	if !newValue.isKnown() {
		return fmt.Errorf("unknown format %q", s)
	}
	*f = newValue
	return nil
}

func (f outputFormat) Type() string {
	return "string"
}

// knownUnits is an [iter.Seq] over the units that can be rounded to.
func knownUnits(yield func(datefield.Unit) bool) {
	for u := datefield.Year; u <= datefield.Second; u++ {
		if !yield(u) {
			return
		}
	}
}

func registerUnitFlagCompletion(c *cobra.Command, name string) {
	completions := slices.Collect(func(yield func(cobra.Completion) bool) {
		knownUnits(func(u datefield.Unit) bool {
			return yield(cobra.Completion(u.String()))
		})
	})
	c.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(completions, cobra.ShellCompDirectiveDefault))
}

func unitOptions() string {
	return joinSeq(func(yield func(string) bool) {
		knownUnits(func(u datefield.Unit) bool {
			return yield(u.String())
		})
	}, ", ", "or")
}

func joinSeq(words iter.Seq[string], sep, conjunction string) string {
	sb := new(strings.Builder)
	next, stop := iter.Pull(words)
	defer stop()

	prev, ok := next()
	if !ok {
		return ""
	}

	n := 1
	for {
		next, ok := next()
		if !ok {
			break
		}
		if n > 1 {
			sb.WriteString(sep)
		}
		sb.WriteString(prev)
		prev = next

		if n < 3 {
			n++
		}
	}
	if n > 1 {
		switch {
		case conjunction == "" || n > 2:
			sb.WriteString(sep)
		case conjunction != "" && n == 2:
			sb.WriteByte(' ')
		}
		sb.WriteString(conjunction)
		if conjunction != "" {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(prev)
	return sb.String()
}

var initLogOnce sync.Once

func initLogging(showDebug bool) {
	initLogOnce.Do(func() {
		minLogLevel := log.Info
		if showDebug {
			minLogLevel = log.Debug
		}
		log.SetDefault(&log.LevelFilter{
			Min:    minLogLevel,
			Output: log.New(os.Stderr, "datefield: ", 0, nil),
		})
	})
}
