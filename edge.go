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

import "fmt"

// EdgeRasterizer walks a polygon edge one scanline at a time, reporting the
// x coordinate of the edge on each row.  It can follow a chain of two
// segments, so that the long side of a triangle and the two short sides can
// be traversed in lockstep.
//
// Each segment must strictly increase in y.  The row containing the final
// vertex of the chain is not reported; the neighbouring triangle owns it.
//
// The zero value has no fragments.  An EdgeRasterizer is not safe for
// concurrent use.
type EdgeRasterizer struct {
	// second segment of a chain, only used while chained is set
	x2, y2 int
	x3, y3 int

	y       int // current scanline
	x       int // x of the edge on the current scanline
	yStop   int // end of the current segment (exclusive)
	xStep   int // +1 or -1
	num     int // |dx|
	den     int // dy, always positive
	acc     int // accumulator, x advances whenever acc exceeds den
	valid   bool
	chained bool
}

// Init prepares the rasterizer for the single segment from (x1, y1) to
// (x2, y2).  It returns ErrNonAscendingEdge unless y1 < y2; in that case
// the rasterizer is left without fragments.
func (r *EdgeRasterizer) Init(x1, y1, x2, y2 int) error {
	r.chained = false
	return r.initSegment(x1, y1, x2, y2)
}

// InitChain prepares the rasterizer for the segment (x1, y1)-(x2, y2),
// followed by (x2, y2)-(x3, y3).  Both segments must strictly increase in y.
func (r *EdgeRasterizer) InitChain(x1, y1, x2, y2, x3, y3 int) error {
	if y3 <= y2 {
		r.valid = false
		r.chained = false
		return fmt.Errorf("segment (%d,%d)-(%d,%d): %w", x2, y2, x3, y3, ErrNonAscendingEdge)
	}
	r.x2, r.y2 = x2, y2
	r.x3, r.y3 = x3, y3
	r.chained = true
	if err := r.initSegment(x1, y1, x2, y2); err != nil {
		r.chained = false
		return err
	}
	return nil
}

func (r *EdgeRasterizer) initSegment(x1, y1, x2, y2 int) error {
	dy := y2 - y1
	if dy <= 0 {
		r.valid = false
		return fmt.Errorf("segment (%d,%d)-(%d,%d): %w", x1, y1, x2, y2, ErrNonAscendingEdge)
	}
	dx := x2 - x1

	r.x, r.y = x1, y1
	r.yStop = y2
	r.xStep = 1
	if dx < 0 {
		r.xStep = -1
	}
	r.num = abs(dx)
	r.den = dy
	if r.xStep > 0 {
		r.acc = r.den
	} else {
		r.acc = 1
	}
	r.valid = true
	return nil
}

// MoreFragments reports whether X and Y currently describe a point of the edge.
func (r *EdgeRasterizer) MoreFragments() bool {
	return r.valid
}

// NextFragment advances to the next scanline.  At the end of the first
// segment of a chain the rasterizer continues with the second segment.
// Calling NextFragment after the last scanline has no effect.
func (r *EdgeRasterizer) NextFragment() {
	if !r.valid {
		return
	}
	r.y++
	if r.y >= r.yStop {
		if !r.chained {
			r.valid = false
			return
		}
		r.chained = false
		// y3 > y2 was checked by InitChain
		_ = r.initSegment(r.x2, r.y2, r.x3, r.y3)
		return
	}

	r.acc += r.num
	for r.acc > r.den {
		r.x += r.xStep
		r.acc -= r.den
	}
}

// X returns the x coordinate of the edge on the current scanline.
// It panics with ErrInvalidState if MoreFragments reports false.
func (r *EdgeRasterizer) X() int {
	if !r.valid {
		panic(ErrInvalidState)
	}
	return r.x
}

// Y returns the current scanline.
// It panics with ErrInvalidState if MoreFragments reports false.
func (r *EdgeRasterizer) Y() int {
	if !r.valid {
		panic(ErrInvalidState)
	}
	return r.y
}
