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

// Package myers implements Myers' greedy O(ND) edit-script algorithm.
//
// Unlike znkr.io/diff's internal/myers, this package always computes the
// exact minimal edit script: there is no TOO_EXPENSIVE-style heuristic and
// no configuration surface, because the canonical script is part of the
// contract (a Difference's equality reflects state-transition equivalence,
// and move inference depends on a deterministic, reproducible script). The
// cost is O((N+M)D) time and O(D^2) space for the frontier, stored in an
// internal/matrix.Matrix so that the d-th row's D_(k) endpoints are
// addressable without reallocating the whole frontier on every iteration.
//
// The algorithm:
//
//  1. Strip the common prefix with internal/commonrun. If that exhausts
//     either input, the remainder is a single insert or remove run.
//  2. Otherwise, expand the frontier one d at a time. For each diagonal k in
//     [-d, d] (step 2), extend from whichever neighboring (d-1)-path reaches
//     further, preferring the delete branch on a tie (this is the tie-break
//     that makes the produced script canonical). Follow matches with
//     internal/commonrun as far as they go.
//  3. The first (x, y) to reach the bottom-right corner fixes the terminal
//     diagonal. Walk the frontier back from there to produce the ascending
//     sequence of waypoints that make up the edit path.
//
// Reference: Myers, E.W. An O(ND) difference algorithm and its variations.
// Algorithmica 1, 251-266 (1986). https://doi.org/10.1007/BF01840446
package myers
