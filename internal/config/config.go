// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the configuration of the primes tool.
package config

import (
	"log/slog"
	"math"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Config is the root of the configuration.
type Config struct {
	Logger LoggerConfig `yaml:"logger"`
	Range  RangeConfig  `yaml:"range"`
	Digits DigitsConfig `yaml:"digits"`
}

// LoggerConfig selects the level and format of the logs.
type LoggerConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// RangeConfig describes the range of primes to print.
//
// Printing starts after the last prime p such that p < PrintStart or
// p <= GenStart, and stops at the first prime more than GenRange above
// GenStart. Offsets are printed relative to GenStart.
type RangeConfig struct {
	GenStart   uint64 `yaml:"gen_start"`
	PrintStart uint64 `yaml:"print_start"`
	GenRange   uint64 `yaml:"gen_range"`
}

// DigitsConfig sets the number of primes in the last digit distribution.
type DigitsConfig struct {
	Count int `yaml:"count"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Logger: LoggerConfig{
			Level: "INFO",
		},
		Range: RangeConfig{
			GenStart:   2365,
			PrintStart: 2000,
			GenRange:   200,
		},
		Digits: DigitsConfig{
			Count: 1_000_000,
		},
	}
}

// Load reads a YAML configuration file on top of the default configuration.
// If the file does not exist, the default configuration is returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("config file not found, using default config", "path", path)
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "cannot read config file %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Errorf("cannot parse config file %s:\n%v", path, err)
	}
	return cfg, nil
}

// SlogLevel returns the level of the logger.
func (c LoggerConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return lvl, errors.Errorf("invalid logger level %q", c.Level)
	}
	return lvl, nil
}

// Validate returns all the problems found in the configuration.
func (c *Config) Validate() error {
	var errs error
	if _, err := c.Logger.SlogLevel(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if c.Range.GenRange == 0 {
		errs = multierr.Append(errs, errors.Errorf("range.gen_range must be positive"))
	}
	if c.Range.GenStart > math.MaxUint64-c.Range.GenRange {
		errs = multierr.Append(errs, errors.Errorf("range.gen_start+range.gen_range overflows: %d+%d", c.Range.GenStart, c.Range.GenRange))
	}
	if c.Digits.Count <= 0 {
		errs = multierr.Append(errs, errors.Errorf("digits.count must be positive: got %d", c.Digits.Count))
	}
	return errs
}
