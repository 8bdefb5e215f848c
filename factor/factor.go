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

// Package factor decomposes integers into their prime factors.
package factor

import (
	"fmt"
	"slices"

	"github.com/gx-org/prime/base/stringseq"
)

// Of returns the prime factors of n with multiplicity, in non-decreasing order.
//
// Trial divisors start at 2 and increase by one. Each divisor is divided out
// of n as many times as possible, so only primes are ever recorded.
// Of(1) returns no factor. n must not be zero: Of(0) does not terminate.
func Of(n uint64) []uint64 {
	var factors []uint64
	for d := uint64(2); n != 1; d++ {
		for n%d == 0 {
			n /= d
			factors = append(factors, d)
		}
		if n != 1 && d >= n/d {
			// n has no divisor up to its square root.
			factors = append(factors, n)
			break
		}
	}
	return factors
}

// Power is a prime raised to an exponent.
type Power struct {
	Prime uint64
	Exp   int
}

func (p Power) String() string {
	if p.Exp == 1 {
		return stringseq.Uint(p.Prime)
	}
	return fmt.Sprintf("%d^%d", p.Prime, p.Exp)
}

// Powers groups equal consecutive factors.
func Powers(factors []uint64) []Power {
	var powers []Power
	for _, f := range factors {
		if n := len(powers); n > 0 && powers[n-1].Prime == f {
			powers[n-1].Exp++
			continue
		}
		powers = append(powers, Power{Prime: f, Exp: 1})
	}
	return powers
}

// Product multiplies factors together. The product of no factor is 1.
// The result wraps around if it does not fit in a uint64.
func Product(factors []uint64) uint64 {
	p := uint64(1)
	for _, f := range factors {
		p *= f
	}
	return p
}

// Format returns a factorization as a product of powers, for example "2 * 3^2 * 7".
func Format(factors []uint64) string {
	if len(factors) == 0 {
		return "1"
	}
	return stringseq.Join(slices.Values(Powers(factors)), " * ", Power.String)
}
