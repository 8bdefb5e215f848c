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

// Package primeflag provides flag types for the primes tool.
package primeflag

import (
	"flag"
	"slices"
	"strconv"
	"strings"

	primeiter "github.com/gx-org/prime/base/iter"
	"github.com/gx-org/prime/base/stringseq"
	"github.com/pkg/errors"
)

// maxRange is the maximum number of values a single range can expand to.
const maxRange = 1 << 20

type uint64List struct {
	list *[]uint64
}

// NewUint64List returns a flag value appending to list.
// The value accepts comma-separated unsigned integers and inclusive
// ranges written lo-hi, for example "126,12345,2-10".
func NewUint64List(list *[]uint64) flag.Value {
	return &uint64List{list: list}
}

func (ul *uint64List) String() string {
	if ul.list == nil {
		return ""
	}
	return stringseq.Join(slices.Values(*ul.list), ",", stringseq.Uint)
}

func (ul *uint64List) Set(values string) error {
	for _, value := range strings.Split(values, ",") {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(value, "-")
		if !isRange {
			v, err := parse(value)
			if err != nil {
				return err
			}
			*ul.list = append(*ul.list, v)
			continue
		}
		from, err := parse(lo)
		if err != nil {
			return err
		}
		to, err := parse(hi)
		if err != nil {
			return err
		}
		if from > to {
			return errors.Errorf("invalid range %q: %d is greater than %d", value, from, to)
		}
		if to-from >= maxRange {
			return errors.Errorf("invalid range %q: more than %d values", value, maxRange)
		}
		*ul.list = append(*ul.list, primeiter.Collect(primeiter.Range(from, to))...)
	}
	return nil
}

func parse(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value %q", s)
	}
	return v, nil
}

// Uint64List returns a flag to pass a list of unsigned integers from the command line.
func Uint64List(name, doc string) *[]uint64 {
	var list []uint64
	flag.Var(NewUint64List(&list), name, doc)
	return &list
}
