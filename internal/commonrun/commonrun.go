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

// Package commonrun advances a pair of cursors in lock-step while an
// equivalence predicate holds. It is the hot path of the Myers solver: every
// diagonal extension invokes it, so it performs no buffering of its own and
// never advances past the end of either side.
package commonrun

import "github.com/seqpatch/diff/internal/cursor"

// Advance steps a and b forward together while eq(a's element, b's element)
// holds and neither cursor is at its end. It returns the number of elements
// consumed from each side; the two are always equal.
func Advance[A, B any](a *cursor.Counting[A], b *cursor.Counting[B], eq func(A, B) bool) int {
	n := 0
	for {
		av, aok := a.Peek()
		bv, bok := b.Peek()
		if !aok || !bok || !eq(av, bv) {
			return n
		}
		a.Advance()
		b.Advance()
		n++
	}
}
