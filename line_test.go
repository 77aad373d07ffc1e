// seehuhn.de/go/grafik - scan conversion and viewing pipeline
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package grafik

import (
	"errors"
	"slices"
	"testing"
)

type pixel struct{ x, y int }

func linePixels(x1, y1, x2, y2 int) []pixel {
	var res []pixel
	DrawLine(x1, y1, x2, y2, func(x, y int) {
		res = append(res, pixel{x, y})
	})
	return res
}

func TestLineKnown(t *testing.T) {
	cases := []struct {
		x1, y1, x2, y2 int
		want           []pixel
	}{
		{0, 0, 4, 2, []pixel{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
		{4, 2, 0, 0, []pixel{{4, 2}, {3, 2}, {2, 1}, {1, 1}, {0, 0}}},
		{0, 0, 3, 0, []pixel{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{0, 0, 0, -3, []pixel{{0, 0}, {0, -1}, {0, -2}, {0, -3}}},
		{0, 0, 3, 3, []pixel{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{1, 1, 2, 2, []pixel{{1, 1}, {2, 2}}},
		{5, 5, 5, 5, nil},
	}
	for _, c := range cases {
		got := linePixels(c.x1, c.y1, c.x2, c.y2)
		if !slices.Equal(got, c.want) {
			t.Errorf("line (%d,%d)-(%d,%d): got %v, want %v",
				c.x1, c.y1, c.x2, c.y2, got, c.want)
		}
	}
}

// TestLineProperties checks every line between points of a small grid.
func TestLineProperties(t *testing.T) {
	const n = 6
	for x1 := -n; x1 <= n; x1++ {
		for y1 := -n; y1 <= n; y1++ {
			for x2 := -n; x2 <= n; x2++ {
				for y2 := -n; y2 <= n; y2++ {
					checkLineProperties(t, x1, y1, x2, y2)
				}
			}
		}
	}
}

func checkLineProperties(t *testing.T, x1, y1, x2, y2 int) {
	t.Helper()

	got := linePixels(x1, y1, x2, y2)
	if x1 == x2 && y1 == y2 {
		if len(got) != 0 {
			t.Errorf("point (%d,%d): got %d pixels", x1, y1, len(got))
		}
		return
	}

	dx, dy := abs(x2-x1), abs(y2-y1)
	if len(got) != max(dx, dy)+1 {
		t.Errorf("line (%d,%d)-(%d,%d): %d pixels, want %d",
			x1, y1, x2, y2, len(got), max(dx, dy)+1)
		return
	}
	if got[0] != (pixel{x1, y1}) || got[len(got)-1] != (pixel{x2, y2}) {
		t.Errorf("line (%d,%d)-(%d,%d): end points %v, %v",
			x1, y1, x2, y2, got[0], got[len(got)-1])
	}

	// 8-connected, monotone steps along the dominant axis
	for i := 1; i < len(got); i++ {
		sx, sy := got[i].x-got[i-1].x, got[i].y-got[i-1].y
		if abs(sx) > 1 || abs(sy) > 1 {
			t.Errorf("line (%d,%d)-(%d,%d): gap between %v and %v",
				x1, y1, x2, y2, got[i-1], got[i])
		}
		if dx > dy && sx == 0 || dx <= dy && sy == 0 {
			t.Errorf("line (%d,%d)-(%d,%d): no progress from %v to %v",
				x1, y1, x2, y2, got[i-1], got[i])
		}
	}

	// the pixel set does not depend on the direction
	rev := linePixels(x2, y2, x1, y1)
	slices.Reverse(rev)
	if !slices.Equal(got, rev) {
		t.Errorf("line (%d,%d)-(%d,%d): not symmetric: %v vs %v",
			x1, y1, x2, y2, got, rev)
	}
}

func TestLineStepping(t *testing.T) {
	var r LineRasterizer
	if r.MoreFragments() {
		t.Fatal("zero value has fragments")
	}

	r.Init(0, 0, 2, 1)
	var got []pixel
	for r.MoreFragments() {
		got = append(got, pixel{r.X(), r.Y()})
		r.NextFragment()
	}
	want := []pixel{{0, 0}, {1, 1}, {2, 1}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// stepping past the end has no effect
	r.NextFragment()
	if r.MoreFragments() {
		t.Error("exhausted rasterizer has fragments")
	}

	// reuse for a second line
	r.Init(3, 3, 3, 5)
	n := 0
	for range r.Fragments() {
		n++
	}
	if n != 3 {
		t.Errorf("reused rasterizer: %d pixels, want 3", n)
	}
}

func TestLineInvalidState(t *testing.T) {
	var r LineRasterizer
	r.Init(1, 1, 1, 1)

	defer func() {
		v := recover()
		err, ok := v.(error)
		if !ok || !errors.Is(err, ErrInvalidState) {
			t.Errorf("expected ErrInvalidState panic, got %v", v)
		}
	}()
	r.X()
}

func TestLineFragmentsStop(t *testing.T) {
	var r LineRasterizer
	r.Init(0, 0, 10, 0)
	for x := range r.Fragments() {
		if x == 3 {
			break
		}
	}
	// breaking out leaves the rasterizer at the current pixel
	if !r.MoreFragments() || r.X() != 3 {
		t.Errorf("after break: valid=%v", r.MoreFragments())
	}
}
