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

// Package report writes the reports of the primes tool.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	primeiter "github.com/gx-org/prime/base/iter"
	"github.com/gx-org/prime/factor"
	"github.com/gx-org/prime/internal/config"
	"github.com/gx-org/prime/prime"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Range positions the sequence before the range described by cfg and writes
// one line "<index>> +<offset> <prime>" per prime of the range.
// It returns the number of lines written.
func Range(w io.Writer, s *prime.Sequence, cfg config.RangeConfig) (int, error) {
	last, ok := s.LastWhere(func(x uint64) bool {
		return x < cfg.PrintStart || x <= cfg.GenStart
	})
	slog.Debug("sequence positioned", "last", last, "ok", ok, "len", s.Len())
	inRange := func(p uint64) bool {
		return subSat(p, cfg.GenStart) <= cfg.GenRange
	}
	i := 0
	for p := range primeiter.TakeWhile(inRange, s.All()) {
		i++
		if _, err := fmt.Fprintf(w, "%d> +%d %d\n", i, subSat(p, cfg.GenStart), p); err != nil {
			return i - 1, errors.Wrapf(err, "cannot write prime %d", p)
		}
	}
	return i, nil
}

func subSat(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}

// checkEvery is the number of primes generated between two context checks.
const checkEvery = 1 << 14

// DigitCounts counts primes by their last decimal digit.
type DigitCounts [10]int

// Total returns the number of primes counted.
func (c *DigitCounts) Total() int {
	n := 0
	for _, ci := range c {
		n += ci
	}
	return n
}

// Digits counts the last digits of the next n primes of the sequence.
func Digits(ctx context.Context, s *prime.Sequence, n int) (DigitCounts, error) {
	var counts DigitCounts
	start := time.Now()
	i := 0
	for p := range primeiter.Take[uint64](n, s.All()) {
		counts[p%10]++
		if i++; i%checkEvery != 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return counts, errors.Wrapf(err, "interrupted after %d primes", i)
		}
		slog.Debug("generating primes", "count", i, "last", p)
	}
	slog.Info("primes generated", "count", counts.Total(), "elapsed", time.Since(start))
	return counts, nil
}

// Write writes one line "<digit>: <ratio> <count>" per digit.
func (c *DigitCounts) Write(w io.Writer) error {
	total := c.Total()
	for digit, count := range c {
		ratio := 0.0
		if total > 0 {
			ratio = float64(count) / float64(total)
		}
		if _, err := fmt.Fprintf(w, "%d: %.2f %d\n", digit, ratio, count); err != nil {
			return err
		}
	}
	return nil
}

// Factors writes one line "<n>: <factorization>" per value.
// Zero has no factorization: if ns contains zeros, an error is returned
// before anything is written.
func Factors(w io.Writer, ns []uint64) error {
	var errs error
	for i, n := range ns {
		if n == 0 {
			errs = multierr.Append(errs, errors.Errorf("value %d: cannot factor 0", i))
		}
	}
	if errs != nil {
		return errs
	}
	for _, n := range ns {
		if _, err := fmt.Fprintf(w, "%d: %s\n", n, factor.Format(factor.Of(n))); err != nil {
			return err
		}
	}
	return nil
}
