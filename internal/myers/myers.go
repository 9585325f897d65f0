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

package myers

import (
	"github.com/seqpatch/diff/internal/commonrun"
	"github.com/seqpatch/diff/internal/cursor"
	"github.com/seqpatch/diff/internal/matrix"
)

// Point is a waypoint (x, y) into the edit graph: x indexes into the base
// sequence, y into the target.
type Point struct {
	X, Y int
}

// Path is an ascending sequence of waypoints from (0, 0) to (len(x), len(y)).
// Consecutive waypoints differ either horizontally (a remove run), vertically
// (an insert run) or diagonally (a match run).
type Path []Point

// Solve computes the canonical minimal edit path between x and y under eq.
func Solve[T any](x, y []T, eq func(a, b T) bool) Path {
	cx, cy := cursor.New(x), cursor.New(y)
	prefix := commonrun.Advance(cx, cy, eq)

	switch {
	case prefix == len(x) && prefix == len(y):
		// Identical inputs (including both empty): the whole thing is one
		// match run, possibly of zero length.
		return collapse(Path{{0, 0}, {prefix, prefix}})
	case prefix == len(x):
		// x is exhausted: the remainder of y is a pure insert run.
		return collapse(Path{{0, 0}, {prefix, prefix}, {prefix, len(y)}})
	case prefix == len(y):
		// y is exhausted: the remainder of x is a pure remove run.
		return collapse(Path{{0, 0}, {prefix, prefix}, {len(x), prefix}})
	}

	xs, ys := x[prefix:], y[prefix:]
	sub := solveCore(xs, ys, eq)

	path := make(Path, 0, len(sub)+1)
	if prefix > 0 {
		path = append(path, Point{0, 0})
	}
	for _, p := range sub {
		path = append(path, Point{p.X + prefix, p.Y + prefix})
	}
	return collapse(path)
}

// solveCore runs the Myers algorithm on inputs known to share no common
// prefix or suffix of interest (x[0] != y[0], both non-empty).
func solveCore[T any](x, y []T, eq func(a, b T) bool) Path {
	N, M := len(x), len(y)

	frontier := matrix.New[Point](0)
	frontier.AppendRow(Point{}) // row 0: the d=0 endpoint, (0, 0), since x[0] != y[0]

	at := func(d, k int) Point {
		c := (k + d) / 2
		return frontier.Row(d)[c]
	}
	set := func(d, k int, p Point) {
		c := (k + d) / 2
		frontier.Row(d)[c] = p
	}

	for d := 1; ; d++ {
		frontier.AppendRow(Point{})
		for k := -d; k <= d; k += 2 {
			insert := k == -d || (k != d && at(d-1, k-1).X < at(d-1, k+1).X)

			var px, py int
			if insert {
				prev := at(d-1, k+1)
				px, py = prev.X, prev.Y+1
			} else {
				prev := at(d-1, k-1)
				px, py = prev.X+1, prev.Y
			}

			// Endpoints off the edge of the grid have nothing left to match.
			cx, cy := cursor.New(x[min(px, N):]), cursor.New(y[min(py, M):])
			n := commonrun.Advance(cx, cy, eq)
			sx, sy := px+n, py+n

			set(d, k, Point{sx, sy})

			if sx >= N && sy >= M {
				return backtrack(frontier, d, k, N, M)
			}
		}
	}
}

// backtrack walks the frontier back from (N, M) on the terminal diagonal k
// at cost d, producing the ascending waypoint path.
func backtrack(frontier *matrix.Matrix[Point], d, k, N, M int) Path {
	at := func(dd, kk int) Point {
		c := (kk + dd) / 2
		return frontier.Row(dd)[c]
	}

	path := make(Path, 0, 2*d+2)
	path = append(path, Point{N, M})

	x, y := N, M
	for ; d > 0; d-- {
		insert := k == -d || (k != d && at(d-1, k-1).X < at(d-1, k+1).X)

		var px, py, ex, ey int
		if insert {
			prev := at(d-1, k+1)
			px, py = prev.X, prev.Y
			ex, ey = px, py+1
			k = k + 1
		} else {
			prev := at(d-1, k-1)
			px, py = prev.X, prev.Y
			ex, ey = px+1, py
			k = k - 1
		}

		if ex != x || ey != y {
			path = append(path, Point{ex, ey})
		}
		path = append(path, Point{px, py})
		x, y = px, py
	}

	// path was built from the end backward; reverse it in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return collapse(path)
}

// collapse drops waypoints that are collinear with their neighbors, merging
// adjacent runs of the same kind (match/remove/insert) into a single edge,
// and removes accidental zero-length duplicates.
func collapse(path Path) Path {
	if len(path) == 0 {
		return path
	}
	deduped := path[:1]
	for _, p := range path[1:] {
		if p != deduped[len(deduped)-1] {
			deduped = append(deduped, p)
		}
	}
	if len(deduped) < 3 {
		return deduped
	}

	sign := func(d int) int {
		switch {
		case d > 0:
			return 1
		case d < 0:
			return -1
		default:
			return 0
		}
	}

	out := make(Path, 0, len(deduped))
	out = append(out, deduped[0])
	for i := 1; i < len(deduped)-1; i++ {
		prev := out[len(out)-1]
		cur := deduped[i]
		next := deduped[i+1]
		d1x, d1y := sign(cur.X-prev.X), sign(cur.Y-prev.Y)
		d2x, d2y := sign(next.X-cur.X), sign(next.Y-cur.Y)
		if d1x == d2x && d1y == d2y {
			continue // cur is collinear with prev and next; drop it.
		}
		out = append(out, cur)
	}
	out = append(out, deduped[len(deduped)-1])
	return out
}
