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

import "github.com/seqpatch/diff/internal/patch"

// Apply materializes the sequence that results from applying d to base, or
// returns [ErrIncompatibleBase] if d's offsets don't line up with base.
//
// Apply does not check that the elements base would remove match what d
// recorded removing: base-state compatibility is purely positional, which
// is what keeps Apply O(len(base) + d.Len()).
func Apply[T any](base []T, d *Difference[T]) ([]T, error) {
	removals := make([]patch.Removal[T], len(d.removals))
	for i, c := range d.removals {
		removals[i] = patch.Removal[T]{Offset: c.Offset, Elem: c.Elem}
	}
	insertions := make([]patch.Insertion[T], len(d.insertions))
	for i, c := range d.insertions {
		insertions[i] = patch.Insertion[T]{Offset: c.Offset, Elem: c.Elem}
	}

	out, err := patch.Apply(base, removals, insertions)
	if err != nil {
		return nil, ErrIncompatibleBase
	}
	return out, nil
}
