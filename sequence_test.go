// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package diff_test

import (
	"testing"

	"github.com/seqpatch/diff"
)

func TestSliceOf(t *testing.T) {
	s := diff.SliceOf([]string{"a", "b", "c"})
	if got, want := s.Len(), 3; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := s.At(i); got != want {
			t.Errorf("At(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestSliceOfEmpty(t *testing.T) {
	s := diff.SliceOf[int](nil)
	if got, want := s.Len(), 0; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"both-empty", nil, nil, true},
		{"length-mismatch-shorter", []int{1, 2}, []int{1, 2, 3}, false},
		{"length-mismatch-longer", []int{1, 2, 3}, []int{1, 2}, false},
		{"pairwise-inequality", []int{1, 2, 3}, []int{1, 9, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diff.Equal(diff.SliceOf(tt.a), diff.SliceOf(tt.b))
			if got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualFunc(t *testing.T) {
	eqFold := func(a, b string) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			ac, bc := a[i], b[i]
			if 'A' <= ac && ac <= 'Z' {
				ac += 'a' - 'A'
			}
			if 'A' <= bc && bc <= 'Z' {
				bc += 'a' - 'A'
			}
			if ac != bc {
				return false
			}
		}
		return true
	}

	a := diff.SliceOf([]string{"Hello", "World"})
	b := diff.SliceOf([]string{"hello", "world"})
	if !diff.EqualFunc(a, b, eqFold) {
		t.Error("EqualFunc case-insensitive comparison = false, want true")
	}

	c := diff.SliceOf([]string{"hello", "there"})
	if diff.EqualFunc(a, c, eqFold) {
		t.Error("EqualFunc with a genuine pairwise difference = true, want false")
	}

	d := diff.SliceOf([]string{"hello"})
	if diff.EqualFunc(a, d, eqFold) {
		t.Error("EqualFunc with mismatched lengths = true, want false")
	}
}
