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

// Package stringseq provides functions for converting iterator sequences to strings.
package stringseq

import (
	"iter"
	"strconv"
	"strings"
)

// Append appends the elements of seq, formatted by f, to the given string builder.
// The separator string sep is placed between elements in the resulting string.
func Append[T any](b *strings.Builder, seq iter.Seq[T], sep string, f func(T) string) {
	n := 0
	for item := range seq {
		if n > 0 {
			b.WriteString(sep)
		}
		b.WriteString(f(item))
		n++
	}
}

// Join concatenates the elements of seq, formatted by f, to create a single string.
// The separator string sep is placed between elements in the resulting string.
func Join[T any](seq iter.Seq[T], sep string, f func(T) string) string {
	var b strings.Builder
	Append(&b, seq, sep, f)
	return b.String()
}

// Bracket is Join wrapped in square brackets.
func Bracket[T any](seq iter.Seq[T], sep string, f func(T) string) string {
	var b strings.Builder
	b.WriteString("[")
	Append(&b, seq, sep, f)
	b.WriteString("]")
	return b.String()
}

// Uint formats an unsigned integer in base 10.
func Uint(x uint64) string {
	return strconv.FormatUint(x, 10)
}
