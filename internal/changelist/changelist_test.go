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

package changelist_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/seqpatch/diff/internal/changelist"
	"github.com/seqpatch/diff/internal/myers"
)

func TestView(t *testing.T) {
	// XABCD -> XYCD: match X (0,1), remove AB (1,3), insert Y (1,2), match CD (3,5)(2,4)
	path := myers.Path{
		{0, 0}, {1, 1}, {3, 1}, {3, 2}, {5, 4},
	}
	got := changelist.View(path)
	want := []changelist.Entry{
		{Kind: changelist.Matched, BaseStart: 0, BaseEnd: 1, TargetStart: 0, TargetEnd: 1},
		{Kind: changelist.Removed, BaseStart: 1, BaseEnd: 3},
		{Kind: changelist.Inserted, TargetStart: 1, TargetEnd: 2},
		{Kind: changelist.Matched, BaseStart: 3, BaseEnd: 5, TargetStart: 2, TargetEnd: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("View() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]int{1, 2}, changelist.RemoveOffsets(got)); diff != "" {
		t.Errorf("RemoveOffsets() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, changelist.InsertOffsets(got)); diff != "" {
		t.Errorf("InsertOffsets() mismatch (-want +got):\n%s", diff)
	}
}

func TestViewEmptyPath(t *testing.T) {
	if got := changelist.View(nil); got != nil {
		t.Errorf("View(nil) = %v, want nil", got)
	}
	if got := changelist.View(myers.Path{{0, 0}}); got != nil {
		t.Errorf("View(single-point) = %v, want nil", got)
	}
}
