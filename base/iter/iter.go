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

// Package iter provides common iterators.
package iter

import "golang.org/x/exp/constraints"

// Filter iterates over the elements of a sequence
// and excludes elements for which the filter returns false.
func Filter[T any](f func(T) bool, seq func(func(T) bool)) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for el := range seq {
			if !f(el) {
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}

// Take iterates over the first n elements of a sequence.
// The source sequence is not pulled beyond its n-th element.
func Take[T any](n int, seq func(func(T) bool)) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for el := range seq {
			if !yield(el) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// TakeWhile iterates over the elements of a sequence until f returns false.
// The first element for which f returns false is consumed from the source but not yielded.
func TakeWhile[T any](f func(T) bool, seq func(func(T) bool)) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for el := range seq {
			if !f(el) {
				return
			}
			if !yield(el) {
				return
			}
		}
	}
}

// Range iterates over the integers in [from, to].
// The range is inclusive so that it can reach the maximum value of T.
func Range[T constraints.Integer](from, to T) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		if from > to {
			return
		}
		for i := from; ; i++ {
			if !yield(i) || i == to {
				return
			}
		}
	}
}

// Collect returns the elements of a finite sequence in a slice.
func Collect[T any](seq func(func(T) bool)) []T {
	var s []T
	for el := range seq {
		s = append(s, el)
	}
	return s
}
