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

import "iter"

// lineRegime records which axis a line steps along every iteration.
type lineRegime uint8

const (
	regimeNone lineRegime = iota
	xDominant
	yDominant
)

// LineRasterizer converts a line segment between two integer points into a
// sequence of pixels, using only integer additions and comparisons.
//
// The zero value has no fragments.  Call Init to start a new line; the same
// instance can be reused for any number of lines.
//
// A LineRasterizer is not safe for concurrent use.
type LineRasterizer struct {
	xStart, yStart int // first pixel
	xStop, yStop   int // last pixel
	x, y           int // current pixel

	xStep, yStep int // +1 or -1 along each axis

	abs2dx int // 2*|dx|
	abs2dy int // 2*|dy|

	// d is the decision variable.  A positive value means the ideal line
	// has passed the midpoint between the two candidate pixels.
	d int

	// leftRight breaks ties at d == 0.  It is set when the dominant axis is
	// traversed in positive direction, which makes the pixel set independent
	// of the order of the end points.
	leftRight bool

	regime lineRegime
	valid  bool
}

// Init prepares the rasterizer for the line from (x1, y1) to (x2, y2).
// Both end points are part of the line.  A line whose end points coincide
// has no fragments.
func (r *LineRasterizer) Init(x1, y1, x2, y2 int) {
	r.xStart, r.yStart = x1, y1
	r.xStop, r.yStop = x2, y2
	r.x, r.y = x1, y1

	dx := x2 - x1
	dy := y2 - y1
	r.abs2dx = abs(dx) << 1
	r.abs2dy = abs(dy) << 1

	r.xStep = 1
	if dx < 0 {
		r.xStep = -1
	}
	r.yStep = 1
	if dy < 0 {
		r.yStep = -1
	}

	if r.abs2dx > r.abs2dy {
		r.regime = xDominant
		r.leftRight = r.xStep > 0
		r.d = r.abs2dy - (r.abs2dx >> 1)
		r.valid = x1 != x2
	} else {
		r.regime = yDominant
		r.leftRight = r.yStep > 0
		r.d = r.abs2dx - (r.abs2dy >> 1)
		r.valid = y1 != y2
	}
}

// MoreFragments reports whether X and Y currently describe a pixel of the line.
func (r *LineRasterizer) MoreFragments() bool {
	return r.valid
}

// NextFragment advances to the next pixel of the line.
// Calling NextFragment after the last pixel has no effect.
func (r *LineRasterizer) NextFragment() {
	if !r.valid {
		return
	}
	switch r.regime {
	case xDominant:
		r.stepX()
	case yDominant:
		r.stepY()
	}
}

// stepX advances one pixel along x.
func (r *LineRasterizer) stepX() {
	if r.x == r.xStop {
		r.valid = false
		return
	}
	if r.d > 0 || (r.d == 0 && r.leftRight) {
		r.y += r.yStep
		r.d -= r.abs2dx
	}
	r.x += r.xStep
	r.d += r.abs2dy
}

// stepY advances one pixel along y.
func (r *LineRasterizer) stepY() {
	if r.y == r.yStop {
		r.valid = false
		return
	}
	if r.d > 0 || (r.d == 0 && r.leftRight) {
		r.x += r.xStep
		r.d -= r.abs2dy
	}
	r.y += r.yStep
	r.d += r.abs2dx
}

// X returns the x coordinate of the current pixel.
// It panics with ErrInvalidState if MoreFragments reports false.
func (r *LineRasterizer) X() int {
	if !r.valid {
		panic(ErrInvalidState)
	}
	return r.x
}

// Y returns the y coordinate of the current pixel.
// It panics with ErrInvalidState if MoreFragments reports false.
func (r *LineRasterizer) Y() int {
	if !r.valid {
		panic(ErrInvalidState)
	}
	return r.y
}

// Fragments returns the remaining pixels of the line as an iterator.
// Ranging over the result advances the rasterizer.
func (r *LineRasterizer) Fragments() iter.Seq2[int, int] {
	return func(yield func(x, y int) bool) {
		for r.valid {
			if !yield(r.x, r.y) {
				return
			}
			r.NextFragment()
		}
	}
}

// DrawLine calls plot for every pixel of the line from (x1, y1) to (x2, y2),
// in order from the first end point to the second.
func DrawLine(x1, y1, x2, y2 int, plot func(x, y int)) {
	var r LineRasterizer
	r.Init(x1, y1, x2, y2)
	for x, y := range r.Fragments() {
		plot(x, y)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
