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

package diff

import (
	"github.com/seqpatch/diff/internal/changelist"
	"github.com/seqpatch/diff/internal/myers"
)

// Diff compares base and target and returns the minimal [Difference]
// between them: applying it to base reproduces target.
//
// If base and target are identical, the result has zero changes. Diff
// always succeeds; there is no invalid input.
func Diff[T comparable](base, target []T) *Difference[T] {
	return DiffFunc(base, target, func(a, b T) bool { return a == b })
}

// DiffFunc compares base and target using eq and returns the minimal
// [Difference] between them. eq must be a pure equivalence relation
// (reflexive, symmetric, transitive); results are unspecified if it is
// not.
func DiffFunc[T any](base, target []T, eq func(a, b T) bool) *Difference[T] {
	path := myers.Solve(base, target, eq)
	entries := changelist.View(path)

	var removals, insertions []Change[T]
	for _, e := range entries {
		switch e.Kind {
		case changelist.Removed:
			for off := e.BaseStart; off < e.BaseEnd; off++ {
				removals = append(removals, Change[T]{
					Kind:           Remove,
					Offset:         off,
					Elem:           base[off],
					AssociatedWith: NoAssociation,
				})
			}
		case changelist.Inserted:
			for off := e.TargetStart; off < e.TargetEnd; off++ {
				insertions = append(insertions, Change[T]{
					Kind:           Insert,
					Offset:         off,
					Elem:           target[off],
					AssociatedWith: NoAssociation,
				})
			}
		}
	}

	return &Difference[T]{removals: removals, insertions: insertions}
}
