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

package commonrun_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seqpatch/diff/internal/commonrun"
	"github.com/seqpatch/diff/internal/cursor"
)

func TestAdvance(t *testing.T) {
	a := cursor.New([]string{"x", "x", "x", "y"})
	b := cursor.New([]string{"x", "x", "z"})
	eq := func(a, b string) bool { return a == b }

	n := commonrun.Advance(a, b, eq)
	require.Equal(t, 2, n)

	aOff, _ := a.Offset()
	bOff, _ := b.Offset()
	require.Equal(t, 2, aOff)
	require.Equal(t, 2, bOff)
}

func TestAdvanceStopsAtEnd(t *testing.T) {
	a := cursor.New([]int{1, 1, 1})
	b := cursor.New([]int{1, 1})
	n := commonrun.Advance(a, b, func(x, y int) bool { return x == y })
	require.Equal(t, 2, n)
	require.True(t, b.End())
	require.False(t, a.End())
}

func TestAdvanceEmpty(t *testing.T) {
	a := cursor.New[int](nil)
	b := cursor.New([]int{1, 2, 3})
	n := commonrun.Advance(a, b, func(x, y int) bool { return x == y })
	require.Equal(t, 0, n)
}
