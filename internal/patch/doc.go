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

// Package patch materializes a target sequence from a base sequence and a
// sorted list of removals/insertions in a single forward pass over the
// base, in O(len(base) + len(removals) + len(insertions)).
//
// It does not check that removed elements match what's recorded in the
// diff: base-state identity is purely positional, which is what keeps
// application linear and diffs a pure positional transform (see the open
// question in spec.md §9).
package patch
