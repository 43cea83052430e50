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

	"github.com/BurntSushi/toml"
	"zombiezen.com/go/datefield"
	"zombiezen.com/go/log"
)

// config is the on-disk configuration file.
//
//	pattern = "DD.MM.YYYY HH:mm"
//	location = "Europe/Berlin"
//	ignore_literals = false
//
//	[step]
//	unit = "minute"
//	size = 5
type config struct {
	Pattern        string      `toml:"pattern"`
	Location       string      `toml:"location"`
	IgnoreLiterals bool        `toml:"ignore_literals"`
	Step           *stepConfig `toml:"step"`
}

type stepConfig struct {
	Unit datefield.Unit `toml:"unit"`
	Size int            `toml:"size"`
}

func readConfig(ctx context.Context, path string) (*config, error) {
	cfg := new(config)
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("read config: %v", err)
	}
	for _, key := range md.Undecoded() {
		log.Warnf(ctx, "%s: unknown key %s", path, key)
	}
	if err := cfg.validate(md); err != nil {
		return nil, fmt.Errorf("read config %s: %v", path, err)
	}
	return cfg, nil
}

func (cfg *config) validate(md toml.MetaData) error {
	if cfg.Step == nil {
		return nil
	}
	if !md.IsDefined("step", "unit") {
		cfg.Step.Unit = datefield.Minute
	}
	if !md.IsDefined("step", "size") {
		return fmt.Errorf("step.size missing")
	}
	if cfg.Step.Size < 1 {
		return fmt.Errorf("step.size = %d is not positive", cfg.Step.Size)
	}
	if cfg.Step.Unit == datefield.Meridiem {
		return fmt.Errorf("step.unit cannot be %v", cfg.Step.Unit)
	}
	return nil
}
