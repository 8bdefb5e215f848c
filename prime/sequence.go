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

// Package prime generates prime numbers lazily.
//
// A Sequence keeps every prime it has produced and uses them as trial
// divisors to find the next one. There is no upper bound to choose in
// advance: the sequence grows one prime per call to Next.
//
//	var primes prime.Sequence
//	primes.Next()          // 2
//	primes.Take(5)         // [3 5 7 11 13]
//	primes.NextAfter(1000) // 1009
package prime

import (
	"iter"
	"slices"

	primeiter "github.com/gx-org/prime/base/iter"
	"github.com/gx-org/prime/base/stringseq"
	"github.com/pkg/errors"
)

// ErrOverflow is the cause of the panic raised by Next when no candidate
// above the last prime can be represented as a uint64.
var ErrOverflow = errors.New("prime: candidate overflows uint64")

// Sequence is an unbounded, increasing sequence of primes.
//
// The zero value is an empty sequence ready to use.
// A Sequence is not safe for concurrent use.
type Sequence struct {
	primes []uint64
}

// New returns an empty sequence.
func New() *Sequence {
	return &Sequence{}
}

// Next appends the next prime to the sequence and returns it.
//
// Candidates above the last prime are tested by trial division against
// all the primes produced so far, up to the square root of the candidate.
// Next panics with an error caused by ErrOverflow if the search goes past
// the largest uint64.
func (s *Sequence) Next() uint64 {
	if len(s.primes) == 0 {
		s.primes = append(s.primes, 2)
		return 2
	}
	last := s.primes[len(s.primes)-1]
	cand := uint64(3)
	if last >= 3 {
		cand = last + 2
	}
	for ; ; cand += 2 {
		if cand <= last {
			panic(errors.Wrapf(ErrOverflow, "no prime candidate after %d", last))
		}
		if s.divides(cand) {
			continue
		}
		s.primes = append(s.primes, cand)
		return cand
	}
}

// divides returns true if a prime of the sequence divides c.
func (s *Sequence) divides(c uint64) bool {
	limit := isqrt(c)
	for _, p := range s.primes {
		if p > limit {
			return false
		}
		if c%p == 0 {
			return true
		}
	}
	return false
}

// All returns an infinite iterator over the next primes of the sequence.
// Each step of the iteration calls Next. The prime given to the loop body
// that breaks out of the iteration stays in the sequence.
func (s *Sequence) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}

// Take advances the sequence n times and returns the primes produced.
func (s *Sequence) Take(n int) []uint64 {
	return primeiter.Collect(primeiter.Take[uint64](n, s.All()))
}

// NextAfter advances the sequence until it produces a prime strictly
// greater than bound, and returns that prime.
// The primes produced on the way stay in the sequence.
func (s *Sequence) NextAfter(bound uint64) uint64 {
	for {
		if next := s.Next(); next > bound {
			return next
		}
	}
}

// LastWhere advances the sequence until it produces a prime for which f
// returns false. That prime is removed from the sequence, so that the next
// call to Next produces it again, and the new last prime of the sequence is
// returned. LastWhere returns false if the sequence is empty after the
// removal, that is if f is false for 2.
//
// f must eventually return false: LastWhere never returns otherwise.
func (s *Sequence) LastWhere(f func(uint64) bool) (uint64, bool) {
	for {
		if next := s.Next(); !f(next) {
			break
		}
	}
	s.primes = s.primes[:len(s.primes)-1]
	return s.Last()
}

// Last returns the last prime of the sequence without advancing it.
func (s *Sequence) Last() (uint64, bool) {
	if len(s.primes) == 0 {
		return 0, false
	}
	return s.primes[len(s.primes)-1], true
}

// Empty returns true if no prime has been produced.
func (s *Sequence) Empty() bool {
	return len(s.primes) == 0
}

// Len returns the number of primes in the sequence.
func (s *Sequence) Len() int {
	return len(s.primes)
}

// Primes returns a copy of the primes produced so far, in increasing order.
func (s *Sequence) Primes() []uint64 {
	return slices.Clone(s.primes)
}

// Equal returns true if both sequences have produced the same primes.
func (s *Sequence) Equal(other *Sequence) bool {
	return slices.Equal(s.primes, other.primes)
}

// Clone returns an independent copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{primes: slices.Clone(s.primes)}
}

// String returns the primes of the sequence, for debugging.
func (s *Sequence) String() string {
	return stringseq.Bracket(slices.Values(s.primes), " ", stringseq.Uint)
}
