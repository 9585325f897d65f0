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

// Kind identifies which of the two Change variants a value holds.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Remove Kind = iota
	Insert
)

// NoAssociation is the value of [Change.AssociatedWith] for a change that
// has not been linked to a complementary change by [InferMoves].
const NoAssociation = -1

// Change is one element of a [Difference]: either a removal of element X
// from the base sequence or an insertion of element X into the target
// sequence.
//
//   - For Remove, Offset is the position of X in the base sequence.
//   - For Insert, Offset is the position of X in the target sequence.
//
// AssociatedWith is [NoAssociation] unless this change has been linked to a
// complementary change by [InferMoves], in which case it holds
// the offset of that complementary change. Associations are metadata only:
// they never affect what applying a Difference produces.
type Change[T any] struct {
	Kind           Kind
	Offset         int
	Elem           T
	AssociatedWith int
}
