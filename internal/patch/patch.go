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

package patch

import "errors"

// ErrIncompatible is returned by Apply when removals/insertions reference
// offsets that base cannot satisfy: a remove offset at or beyond len(base),
// or an insert offset whose implied copy span runs past the end of base.
var ErrIncompatible = errors.New("patch: removals/insertions incompatible with base")

// Removal is a single removed element at Offset in base.
type Removal[T any] struct {
	Offset int
	Elem   T
}

// Insertion is a single inserted element at Offset in the target sequence.
type Insertion[T any] struct {
	Offset int
	Elem   T
}

// Apply materializes the target sequence from base and the given removals
// and insertions, which must each be sorted ascending by Offset (the same
// order changelist.View produces). It runs in a single forward pass over
// base: O(len(base) + len(removals) + len(insertions)).
//
// Compatibility is purely positional: Apply never compares base's elements
// against removals' Elem fields, it only uses their offsets to decide how
// many elements of base to copy verbatim before consuming or inserting one.
func Apply[T any](base []T, removals []Removal[T], insertions []Insertion[T]) ([]T, error) {
	n := len(base) - len(removals) + len(insertions)
	if n < 0 {
		return nil, ErrIncompatible
	}
	out := make([]T, 0, n)

	cursor := 0   // next unconsumed index into base
	removed := 0  // removals already applied
	inserted := 0 // insertions already applied

	for ri, ii := 0, 0; ri < len(removals) || ii < len(insertions); {
		takeRemove := ii >= len(insertions) ||
			(ri < len(removals) && removals[ri].Offset-ri <= insertions[ii].Offset-ii)

		if takeRemove {
			r := removals[ri]
			span := r.Offset - cursor
			if span < 0 || r.Offset >= len(base) {
				return nil, ErrIncompatible
			}
			out = append(out, base[cursor:cursor+span]...)
			cursor = r.Offset + 1
			removed++
			ri++
			continue
		}

		ins := insertions[ii]
		span := (ins.Offset + removed - inserted) - cursor
		if span < 0 || cursor+span > len(base) {
			return nil, ErrIncompatible
		}
		out = append(out, base[cursor:cursor+span]...)
		cursor += span
		out = append(out, ins.Elem)
		inserted++
		ii++
	}

	out = append(out, base[cursor:]...)
	return out, nil
}
