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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498307936

var outlineCases = []TestCase{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Op:     Outline{Path: triangle(10, 50, 32, 10, 54, 50)},
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Op:     Outline{Path: rectangle(10, 10, 54, 44)},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Op:     Outline{Path: fivePointStar(32, 32, 25)},
	},
	{
		Name:   "house",
		Width:  64,
		Height: 64,
		Op:     Outline{Path: house(12, 6, 40, 26, 20)},
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Op:     Outline{Path: circle(32, 32, 24)},
	},
	{
		Name:   "quadratic_open",
		Width:  64,
		Height: 64,
		Op:     Outline{Path: quadraticOpen(6, 10, 32, 70, 58, 10)},
	},
	{
		Name:   "sub_pixel",
		Width:  16,
		Height: 16,
		Op:     Outline{Path: rectangle(7.2, 7.1, 7.4, 7.3)},
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(x1, y1)}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{pt(x2, y2)}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{pt(x3, y3)}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(x1, y1)}) {
			return
		}
		for _, p := range []vec.Vec2{pt(x2, y1), pt(x2, y2), pt(x1, y2)} {
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		pts := make([]vec.Vec2, 5)
		for i := range 5 {
			angle := float64(i)*2*math.Pi/5 + math.Pi/2
			pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		}

		// 0 -> 2 -> 4 -> 1 -> 3 -> 0
		order := []int{0, 2, 4, 1, 3}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[order[0]]}) {
			return
		}
		for _, i := range order[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pts[i]}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// house builds the front of a house: a square body of the given width and
// height with its lower left corner at (x, y), and a gable of height roof.
// The door is drawn as a second, open subpath.
func house(x, y, w, h, roof float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(x, y)}) {
			return
		}
		body := []vec.Vec2{
			pt(x+w, y),
			pt(x+w, y+h),
			pt(x+w/2, y+h+roof),
			pt(x, y+h),
		}
		for _, p := range body {
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
		if !yield(path.CmdClose, nil) {
			return
		}

		dw := w / 5
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(x+w/2-dw/2, y)}) {
			return
		}
		door := []vec.Vec2{
			pt(x+w/2-dw/2, y+h/2),
			pt(x+w/2+dw/2, y+h/2),
			pt(x+w/2+dw/2, y),
		}
		for _, p := range door {
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
	}
}

// circle builds an approximate circle using four cubic Bézier curves.
func circle(cx, cy, r float64) path.Path {
	k := r * kappa
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(cx+r, cy)}) {
			return
		}
		quadrants := [][]vec.Vec2{
			{pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)},
			{pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)},
			{pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)},
			{pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)},
		}
		for _, q := range quadrants {
			if !yield(path.CmdCubeTo, q) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// quadraticOpen builds an open path consisting of a single quadratic
// Bézier curve.
func quadraticOpen(x1, y1, cx, cy, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(x1, y1)}) {
			return
		}
		yield(path.CmdQuadTo, []vec.Vec2{pt(cx, cy), pt(x2, y2)})
	}
}
