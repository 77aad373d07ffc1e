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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rasterization test.
// Coordinates are in pixels, with y growing upwards.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Width  int       // canvas width in pixels
	Height int       // canvas height in pixels
	Op     Operation // what to draw
}

// Operation is the rasterization operation described by a test case.
type Operation interface {
	isOperation()
}

// Line draws the segment between two integer points.
type Line struct {
	X1, Y1 int
	X2, Y2 int
}

func (Line) isOperation() {}

// Triangle fills the triangle with the given integer vertices.
type Triangle struct {
	X1, Y1 int
	X2, Y2 int
	X3, Y3 int
}

func (Triangle) isOperation() {}

// Outline draws the outline of a path as one pixel wide lines.
type Outline struct {
	Path path.Path
}

func (Outline) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
