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

// Utility primes prints ranges of primes, last digit distributions and factorizations.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/gx-org/prime/internal/config"
	"github.com/gx-org/prime/internal/report"
	"github.com/gx-org/prime/prime"
	"github.com/gx-org/prime/tools/primeflag"
	"github.com/pkg/errors"
)

var (
	configPath = flag.String("config", "", "YAML configuration file")
	mode       = flag.String("mode", "range", "report to print")
	count      = flag.Int("n", 0, "number of primes in the digits report (overrides digits.count)")
	logLevel   = flag.String("log_level", "", "log level (overrides logger.level)")
	logJSON    = flag.Bool("log_json", false, "log in JSON (overrides logger.json)")
	toFactor   = primeflag.Uint64List("factor", "comma-separated values or lo-hi ranges to factor")
)

type runner func(ctx context.Context, w io.Writer, cfg *config.Config) error

var modes = map[string]runner{
	"range":  runRange,
	"digits": runDigits,
	"factor": runFactor,
}

func runRange(_ context.Context, w io.Writer, cfg *config.Config) error {
	n, err := report.Range(w, prime.New(), cfg.Range)
	if err != nil {
		return err
	}
	slog.Debug("range written", "lines", n)
	return nil
}

func runDigits(ctx context.Context, w io.Writer, cfg *config.Config) error {
	counts, err := report.Digits(ctx, prime.New(), cfg.Digits.Count)
	if err != nil {
		return err
	}
	return counts.Write(w)
}

func runFactor(_ context.Context, w io.Writer, _ *config.Config) error {
	if len(*toFactor) == 0 {
		return errors.Errorf("no value to factor: please use --factor to specify values")
	}
	return report.Factors(w, *toFactor)
}

func exit(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}
	if *count > 0 {
		cfg.Digits.Count = *count
	}
	if *logLevel != "" {
		cfg.Logger.Level = *logLevel
	}
	if *logJSON {
		cfg.Logger.JSON = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newLogger(w io.Writer, cfg config.LoggerConfig) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}

func main() {
	flag.Parse()
	run, ok := modes[*mode]
	if !ok {
		exit("unknown mode %q. Available modes are %v", *mode, slices.Sorted(maps.Keys(modes)))
	}
	cfg, err := loadConfig()
	if err != nil {
		exit("invalid configuration:\n%v", err)
	}
	logger, err := newLogger(os.Stderr, cfg.Logger)
	if err != nil {
		exit("cannot create logger: %v", err)
	}
	slog.SetDefault(logger)
	slog.Debug("logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	out := bufio.NewWriter(os.Stdout)
	err = run(ctx, out, cfg)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		cancel()
		exit("%s: %+v", *mode, err)
	}
}
