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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// outlineFlatness is the curve flattening tolerance in pixels.
const outlineFlatness = 0.25

// outliner holds the state of one StrokeOutline call.
type outliner struct {
	plot func(x, y int)

	current vec.Vec2 // current point
	subpath vec.Vec2 // start of the current subpath

	// last plotted pixel, to avoid plotting shared vertices twice
	lastX, lastY int
	havePixel    bool

	// first plotted pixel of the current subpath
	startX, startY int
	haveStart      bool
}

// StrokeOutline draws the outline of p as one pixel wide lines, using the
// line rasterizer for every segment.  Vertices are rounded to the nearest
// pixel.  Quadratic and cubic segments are flattened into lines first.
// Pixels shared by consecutive segments are plotted once.
func StrokeOutline(p path.Path, plot func(x, y int)) {
	o := &outliner{plot: plot}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			o.current = pts[0]
			o.subpath = pts[0]
			o.havePixel = false
			o.haveStart = false
		case path.CmdLineTo:
			o.lineTo(pts[0], false)
		case path.CmdQuadTo:
			flattenQuadratic(o.current, pts[0], pts[1], o.emitFlat)
		case path.CmdCubeTo:
			flattenCubic(o.current, pts[0], pts[1], pts[2], o.emitFlat)
		case path.CmdClose:
			if o.current != o.subpath {
				o.lineTo(o.subpath, true)
			}
			// The current point is back at the start pixel, which has
			// already been plotted.
			o.current = o.subpath
			o.lastX, o.lastY = o.startX, o.startY
			o.havePixel = o.haveStart
		}
	}
}

func (o *outliner) emitFlat(_, to vec.Vec2) {
	o.lineTo(to, false)
}

// lineTo rasterizes the segment from the current point to p.  If closing is
// set, the final pixel is dropped when it coincides with the first pixel of
// the subpath.
func (o *outliner) lineTo(p vec.Vec2, closing bool) {
	x0, y0 := roundPixel(o.current)
	x1, y1 := roundPixel(p)
	o.current = p

	if x0 == x1 && y0 == y1 {
		if !o.havePixel {
			o.emit(x0, y0)
		}
		return
	}

	var r LineRasterizer
	r.Init(x0, y0, x1, y1)
	for x, y := range r.Fragments() {
		if o.havePixel && x == o.lastX && y == o.lastY {
			continue
		}
		if closing && o.haveStart && x == o.startX && y == o.startY {
			continue
		}
		o.emit(x, y)
	}
}

func (o *outliner) emit(x, y int) {
	o.plot(x, y)
	o.lastX, o.lastY = x, y
	o.havePixel = true
	if !o.haveStart {
		o.startX, o.startY = x, y
		o.haveStart = true
	}
}

func roundPixel(p vec.Vec2) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// The two flattening functions follow the area-coverage rasterizer of
// seehuhn.de/go/render, without its transformation step.

// flattenQuadratic splits the quadratic Bézier curve p0, p1, p2 into line
// segments no further than outlineFlatness from the curve.
func flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// deviation of the curve from its chord, at t = 1/2
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if dev := e.Length(); dev > outlineFlatness {
		n = int(math.Ceil(math.Sqrt(dev / outlineFlatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

// flattenCubic splits the cubic Bézier curve p0, ..., p3 into line segments,
// choosing the segment count by Wang's formula.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	dd1 := p0.Sub(p1.Mul(2)).Add(p2)
	dd2 := p1.Sub(p2.Mul(2)).Add(p3)

	n := 1
	if m := max(dd1.Length(), dd2.Length()); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*outlineFlatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
}
