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

import "errors"

// ErrMalformedDifference is returned by [FromChanges] when the supplied
// changes violate one of a Difference's invariants: duplicate offsets
// within a kind, or an association that isn't symmetric.
var ErrMalformedDifference = errors.New("diff: malformed difference")

// ErrIncompatibleBase is returned by [Apply] when a Difference's offsets
// don't line up with the supplied base sequence.
var ErrIncompatibleBase = errors.New("diff: difference incompatible with base")
