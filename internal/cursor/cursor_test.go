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

package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seqpatch/diff/internal/cursor"
)

func TestCounting(t *testing.T) {
	c := cursor.New([]string{"a", "b"})
	require.False(t, c.End())

	off, ok := c.Offset()
	require.True(t, ok)
	require.Equal(t, 0, off)

	v, ok := c.Peek()
	require.True(t, ok)
	require.Equal(t, "a", v)

	c.Advance()
	off, ok = c.Offset()
	require.True(t, ok)
	require.Equal(t, 1, off)
	require.Equal(t, 1, c.Remaining())

	c.Advance()
	require.True(t, c.End())
	_, ok = c.Offset()
	require.False(t, ok)
	_, ok = c.Peek()
	require.False(t, ok)

	// Advancing past the end is a no-op, not an error.
	c.Advance()
	require.True(t, c.End())
}

func TestCountingEmpty(t *testing.T) {
	c := cursor.New[int](nil)
	require.True(t, c.End())
	require.Equal(t, 0, c.Remaining())
}
