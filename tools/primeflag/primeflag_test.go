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
package primeflag_test

import (
	"flag"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/prime/tools/primeflag"
)

func parse(args ...string) ([]uint64, error) {
	var list []uint64
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(primeflag.NewUint64List(&list), "factor", "values to factor")
	err := fs.Parse(args)
	return list, err
}

func TestUint64List(t *testing.T) {
	tests := []struct {
		args []string
		want []uint64
	}{
		{
			args: []string{"-factor", "126"},
			want: []uint64{126},
		},
		{
			args: []string{"-factor", "126, 12345,,"},
			want: []uint64{126, 12345},
		},
		{
			args: []string{"-factor", "1", "-factor", "2-5"},
			want: []uint64{1, 2, 3, 4, 5},
		},
		{
			args: []string{"-factor=18446744073709551614-18446744073709551615"},
			want: []uint64{18446744073709551614, 18446744073709551615},
		},
	}
	for _, test := range tests {
		got, err := parse(test.args...)
		if err != nil {
			t.Errorf("%v: %v", test.args, err)
			continue
		}
		if !cmp.Equal(got, test.want) {
			t.Errorf("%v: got %v but want %v", test.args, got, test.want)
		}
	}
}

func TestUint64ListErrors(t *testing.T) {
	for _, arg := range []string{
		"abc",
		"-3",
		"5-2",
		"1-x",
		"18446744073709551616",
		"0-2000000",
	} {
		if got, err := parse("-factor", arg); err == nil {
			t.Errorf("%q: got %v but want an error", arg, got)
		}
	}
}

func TestUint64ListString(t *testing.T) {
	list := []uint64{2, 3, 5}
	if got, want := primeflag.NewUint64List(&list).String(), "2,3,5"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
}
