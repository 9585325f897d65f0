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

// Package changelist interprets a myers.Path as a sequence of remove,
// insert and match ranges, and expands the remove/insert ranges into
// per-position offsets.
package changelist

import "github.com/seqpatch/diff/internal/myers"

// Kind identifies the kind of a single entry in a change list.
type Kind int

const (
	Matched Kind = iota
	Removed
	Inserted
)

// Entry is one element of the view over a path: either a run of matches
// (present in both base and target) or a run removed from base / inserted
// into target.
type Entry struct {
	Kind        Kind
	BaseStart   int // valid for Matched and Removed
	BaseEnd     int
	TargetStart int // valid for Matched and Inserted
	TargetEnd   int
}

// View interprets path as a sequence of Matched/Removed/Inserted entries.
// Entry i is derived from waypoints i and i+1 of path: both axes advancing
// means a match, only x advancing means a remove, only y advancing means an
// insert.
func View(path myers.Path) []Entry {
	if len(path) < 2 {
		return nil
	}
	entries := make([]Entry, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		switch {
		case a.X != b.X && a.Y == b.Y:
			entries = append(entries, Entry{Kind: Removed, BaseStart: a.X, BaseEnd: b.X})
		case a.X == b.X && a.Y != b.Y:
			entries = append(entries, Entry{Kind: Inserted, TargetStart: a.Y, TargetEnd: b.Y})
		default:
			entries = append(entries, Entry{Kind: Matched, BaseStart: a.X, BaseEnd: b.X, TargetStart: a.Y, TargetEnd: b.Y})
		}
	}
	return entries
}

// RemoveOffsets returns the base offsets of every Removed entry, in
// ascending order.
func RemoveOffsets(entries []Entry) []int {
	var offsets []int
	for _, e := range entries {
		if e.Kind != Removed {
			continue
		}
		for o := e.BaseStart; o < e.BaseEnd; o++ {
			offsets = append(offsets, o)
		}
	}
	return offsets
}

// InsertOffsets returns the target offsets of every Inserted entry, in
// ascending order.
func InsertOffsets(entries []Entry) []int {
	var offsets []int
	for _, e := range entries {
		if e.Kind != Inserted {
			continue
		}
		for o := e.TargetStart; o < e.TargetEnd; o++ {
			offsets = append(offsets, o)
		}
	}
	return offsets
}
