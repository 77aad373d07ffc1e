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
	"cmp"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// FillTriangleSpans scan-converts the triangle with the given integer
// vertices.  For every covered scanline, emit is called once with the
// inclusive pixel range xMin..xMax.  Scanlines are reported in increasing y.
//
// The scanline through the lowest vertex is included, the scanline through
// the highest vertex is not.  A triangle whose vertices all lie on one
// scanline produces no output.
func FillTriangleSpans(x1, y1, x2, y2, x3, y3 int, emit func(y, xMin, xMax int)) {
	pts := [3]vec.Vec2{
		{X: float64(x1), Y: float64(y1)},
		{X: float64(x2), Y: float64(y2)},
		{X: float64(x3), Y: float64(y3)},
	}
	slices.SortStableFunc(pts[:], func(a, b vec.Vec2) int {
		return cmp.Compare(a.Y, b.Y)
	})
	ax, ay := int(pts[0].X), int(pts[0].Y)
	bx, by := int(pts[1].X), int(pts[1].Y)
	cx, cy := int(pts[2].X), int(pts[2].Y)

	if ay == cy {
		return
	}

	// After sorting and the check above, every segment passed to the
	// rasterizers strictly increases in y.
	var left, right EdgeRasterizer
	switch {
	case by == ay: // flat top
		_ = left.Init(ax, ay, cx, cy)
		_ = right.Init(bx, by, cx, cy)
	case by == cy: // flat bottom
		_ = left.Init(ax, ay, bx, by)
		_ = right.Init(ax, ay, cx, cy)
	default:
		_ = left.Init(ax, ay, cx, cy)
		_ = right.InitChain(ax, ay, bx, by, cx, cy)
	}

	for left.MoreFragments() && right.MoreFragments() {
		xl, xr := left.X(), right.X()
		if xl > xr {
			xl, xr = xr, xl
		}
		emit(left.Y(), xl, xr)

		left.NextFragment()
		right.NextFragment()
	}
}

// FillTriangle calls plot for every pixel of the triangle, row by row from
// left to right.  See FillTriangleSpans for which pixels are covered.
func FillTriangle(x1, y1, x2, y2, x3, y3 int, plot func(x, y int)) {
	FillTriangleSpans(x1, y1, x2, y2, x3, y3, func(y, xMin, xMax int) {
		for x := xMin; x <= xMax; x++ {
			plot(x, y)
		}
	})
}
