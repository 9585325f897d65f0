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

// InferMoves returns a new Difference in which every element value that
// appears as exactly one remove and exactly one insert has those two
// changes linked via AssociatedWith. Elements appearing more than once on
// either side are left unassociated. Applying the result still reproduces
// the same target: associations are metadata only and never change what a
// Difference encodes, only what it additionally claims about it.
//
// This requires T to support ==, which [Difference] itself does not (its
// element type is otherwise unconstrained); that's why InferMoves is a
// free function rather than a method.
func InferMoves[T comparable](d *Difference[T]) *Difference[T] {
	removeIdx := make(map[T][]int)
	for i, c := range d.removals {
		removeIdx[c.Elem] = append(removeIdx[c.Elem], i)
	}
	insertIdx := make(map[T][]int)
	for i, c := range d.insertions {
		insertIdx[c.Elem] = append(insertIdx[c.Elem], i)
	}

	removals := make([]Change[T], len(d.removals))
	copy(removals, d.removals)
	insertions := make([]Change[T], len(d.insertions))
	copy(insertions, d.insertions)
	for i := range removals {
		removals[i].AssociatedWith = NoAssociation
	}
	for i := range insertions {
		insertions[i].AssociatedWith = NoAssociation
	}

	for elem, ris := range removeIdx {
		if len(ris) != 1 {
			continue
		}
		iis, ok := insertIdx[elem]
		if !ok || len(iis) != 1 {
			continue
		}
		ri, ii := ris[0], iis[0]
		removals[ri].AssociatedWith = insertions[ii].Offset
		insertions[ii].AssociatedWith = removals[ri].Offset
	}

	return &Difference[T]{removals: removals, insertions: insertions}
}
