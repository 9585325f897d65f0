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
	"fmt"
	"iter"
	"sort"
)

// Difference is a validated, immutable set of [Change]s describing a state
// transition from a base sequence to a target sequence. Construct one with
// [Diff], [DiffFunc] or [FromChanges].
type Difference[T any] struct {
	// removals is sorted ascending by Offset; insertions is sorted
	// ascending by Offset. Both are stored once, in the shape the applier
	// needs; All and the public iteration order are derived views.
	removals   []Change[T]
	insertions []Change[T]
}

// FromChanges validates changes against the invariants of a Difference
// (distinct remove offsets, distinct insert offsets, symmetric
// associations) and, if they hold, returns the Difference they describe.
// It runs in O(k log k) where k = len(changes).
//
// FromChanges is the deserialization entry point: given the change records
// of a previously serialized Difference, it reconstructs and revalidates
// the value.
func FromChanges[T any](changes []Change[T]) (*Difference[T], error) {
	var removals, insertions []Change[T]
	for _, c := range changes {
		switch c.Kind {
		case Remove:
			removals = append(removals, c)
		case Insert:
			insertions = append(insertions, c)
		default:
			return nil, fmt.Errorf("%w: unknown kind %v", ErrMalformedDifference, c.Kind)
		}
	}

	sort.Slice(removals, func(i, j int) bool { return removals[i].Offset < removals[j].Offset })
	sort.Slice(insertions, func(i, j int) bool { return insertions[i].Offset < insertions[j].Offset })

	for i := 1; i < len(removals); i++ {
		if removals[i].Offset == removals[i-1].Offset {
			return nil, fmt.Errorf("%w: duplicate remove offset %d", ErrMalformedDifference, removals[i].Offset)
		}
	}
	for i := 1; i < len(insertions); i++ {
		if insertions[i].Offset == insertions[i-1].Offset {
			return nil, fmt.Errorf("%w: duplicate insert offset %d", ErrMalformedDifference, insertions[i].Offset)
		}
	}

	removeByOffset := make(map[int]int, len(removals))
	for i, c := range removals {
		removeByOffset[c.Offset] = i
	}
	insertByOffset := make(map[int]int, len(insertions))
	for i, c := range insertions {
		insertByOffset[c.Offset] = i
	}

	for _, r := range removals {
		if r.AssociatedWith == NoAssociation {
			continue
		}
		ii, ok := insertByOffset[r.AssociatedWith]
		if !ok || insertions[ii].AssociatedWith != r.Offset {
			return nil, fmt.Errorf("%w: remove@%d association is not symmetric", ErrMalformedDifference, r.Offset)
		}
	}
	for _, ins := range insertions {
		if ins.AssociatedWith == NoAssociation {
			continue
		}
		ri, ok := removeByOffset[ins.AssociatedWith]
		if !ok || removals[ri].AssociatedWith != ins.Offset {
			return nil, fmt.Errorf("%w: insert@%d association is not symmetric", ErrMalformedDifference, ins.Offset)
		}
	}

	return &Difference[T]{removals: removals, insertions: insertions}, nil
}

// Removals returns the remove changes, sorted ascending by base offset.
// The returned slice must not be modified.
func (d *Difference[T]) Removals() []Change[T] {
	return d.removals
}

// Insertions returns the insert changes, sorted ascending by target offset.
// The returned slice must not be modified.
func (d *Difference[T]) Insertions() []Change[T] {
	return d.insertions
}

// All iterates every change in the prescribed public order: all removes in
// descending base-offset order, then all inserts in ascending final-offset
// order. Applying changes one at a time to a mutable copy of the base in
// this order leaves every unconsumed change's offset valid.
func (d *Difference[T]) All() iter.Seq[Change[T]] {
	return func(yield func(Change[T]) bool) {
		for i := len(d.removals) - 1; i >= 0; i-- {
			if !yield(d.removals[i]) {
				return
			}
		}
		for _, c := range d.insertions {
			if !yield(c) {
				return
			}
		}
	}
}

// Len returns the total number of changes (removes plus inserts).
func (d *Difference[T]) Len() int {
	return len(d.removals) + len(d.insertions)
}

// allChanges returns every change: the removals followed by the insertions,
// each in ascending offset order.
func (d *Difference[T]) allChanges() []Change[T] {
	out := make([]Change[T], 0, d.Len())
	out = append(out, d.removals...)
	out = append(out, d.insertions...)
	return out
}
