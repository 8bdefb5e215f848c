// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package prime

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestIsqrt(t *testing.T) {
	const maxRoot = math.MaxUint32
	tests := []struct {
		x, want uint64
	}{
		{x: 0, want: 0},
		{x: 1, want: 1},
		{x: 3, want: 1},
		{x: 4, want: 2},
		{x: 99, want: 9},
		{x: 100, want: 10},
		{x: 1<<52 - 1, want: 1<<26 - 1},
		{x: (1<<26 + 1) * (1<<26 + 1), want: 1<<26 + 1},
		{x: (1<<26+1)*(1<<26+1) - 1, want: 1 << 26},
		{x: (1<<31 + 7) * (1<<31 + 7), want: 1<<31 + 7},
		{x: (1<<31+7)*(1<<31+7) - 1, want: 1<<31 + 6},
		{x: maxRoot * maxRoot, want: maxRoot},
		{x: maxRoot*maxRoot - 1, want: maxRoot - 1},
		{x: math.MaxUint64, want: maxRoot},
	}
	for _, test := range tests {
		if got := isqrt(test.x); got != test.want {
			t.Errorf("isqrt(%d): got %d but want %d", test.x, got, test.want)
		}
	}
}

func TestDivisionStopsAtSquareRoot(t *testing.T) {
	s := &Sequence{primes: []uint64{2, 3, 5, 7}}
	// 121 = 11*11 and 11 is not in the sequence yet: 11 itself is next.
	if got := s.Next(); got != 11 {
		t.Fatalf("got %d but want 11", got)
	}
	if s.divides(13) {
		t.Errorf("13 reported as divisible by one of %v", s)
	}
	if !s.divides(49) {
		t.Errorf("49 not reported as divisible by one of %v", s)
	}
}

func nextPanic(s *Sequence) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err = r.(error)
	}()
	s.Next()
	return nil
}

func TestOverflow(t *testing.T) {
	tests := []struct {
		primes []uint64
	}{
		{primes: []uint64{math.MaxUint64}},
		{primes: []uint64{math.MaxUint64 - 1}},
	}
	for _, test := range tests {
		s := &Sequence{primes: test.primes}
		err := nextPanic(s)
		if err == nil {
			t.Errorf("%v: Next did not panic", test.primes)
			continue
		}
		if errors.Cause(err) != ErrOverflow {
			t.Errorf("%v: got panic %v but want cause %v", test.primes, err, ErrOverflow)
		}
		if !cmp.Equal(s.primes, test.primes) {
			t.Errorf("sequence modified by a failed Next: got %v but want %v", s.primes, test.primes)
		}
	}
}

func TestNoOverflowBelowLimit(t *testing.T) {
	// The largest prime below 2^64 is 2^64-59. Seeding it alone makes every
	// next odd candidate pass the division test, which is enough to check
	// that candidates are generated up to the limit without wrapping.
	const largest = math.MaxUint64 - 58
	s := &Sequence{primes: []uint64{largest}}
	if got, want := s.Next(), uint64(largest+2); got != want {
		t.Errorf("got %d but want %d", got, want)
	}
}
