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

// Package cursor wraps an ordered sequence with a zero-based positional
// offset, so callers above it never need to scan from the start to know
// where they are. It does not copy the underlying sequence.
package cursor

// Counting streams a slice alongside the zero-based offset of its current
// element. The end position carries no offset.
type Counting[T any] struct {
	s []T
	i int
}

// New returns a cursor positioned before the first element of s.
func New[T any](s []T) *Counting[T] {
	return &Counting[T]{s: s}
}

// End reports whether the cursor has moved past the last element.
func (c *Counting[T]) End() bool {
	return c.i >= len(c.s)
}

// Offset returns the current zero-based offset and true, or (0, false) at
// the end.
func (c *Counting[T]) Offset() (int, bool) {
	if c.End() {
		return 0, false
	}
	return c.i, true
}

// Peek returns the current element without advancing, and whether one
// exists.
func (c *Counting[T]) Peek() (T, bool) {
	var zero T
	if c.End() {
		return zero, false
	}
	return c.s[c.i], true
}

// Advance moves the cursor forward by one element; it is a no-op at the end.
func (c *Counting[T]) Advance() {
	if !c.End() {
		c.i++
	}
}

// Remaining returns the number of elements not yet consumed.
func (c *Counting[T]) Remaining() int {
	return len(c.s) - c.i
}
