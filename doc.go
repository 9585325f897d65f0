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

// Package diff computes and applies differences between ordered sequences
// of comparable elements.
//
// Given a base sequence and a target sequence, [Diff] produces a
// [Difference], a portable value that, when given to [Apply] together with
// the original base, reconstructs the target. A Difference is also a
// boundary value in its own right: it can be validated from an externally
// supplied list of changes with [FromChanges], inspected with
// [Difference.All], [Difference.Removals] and [Difference.Insertions], and
// augmented with move metadata using [InferMoves].
//
// The solver underlying [Diff] is Myers' O(ND) algorithm with a fixed,
// deterministic tie-break rule: it always produces the single canonical
// minimal script for a given pair of inputs, never a heuristic
// approximation. There is no option to trade minimality for speed; see the
// design notes in the package's internal/myers package for why that
// trade-off is deliberately not exposed here.
//
// Performance: solving is O((n+m)·D) time and O(D²) space, where D is the
// edit distance between base and target. Applying is O(len(base) + k) where
// k is the number of changes.
package diff
