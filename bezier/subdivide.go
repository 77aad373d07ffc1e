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

package bezier

import (
	"errors"
	"fmt"

	"seehuhn.de/go/grafik"
)

// ErrLevels is returned when a negative number of subdivision levels is
// requested.
var ErrLevels = errors.New("bezier: negative subdivision level")

// splitLeft and splitRight compute the control points of the first and
// second half of a cubic Bézier curve by de Casteljau halving.
var (
	splitLeft = newMatrix([4][4]float32{
		{1, 0, 0, 0},
		{0.5, 0.5, 0, 0},
		{0.25, 0.5, 0.25, 0},
		{0.125, 0.375, 0.375, 0.125},
	})
	splitRight = newMatrix([4][4]float32{
		{0.125, 0.375, 0.375, 0.125},
		{0, 0.25, 0.5, 0.25},
		{0, 0, 0.5, 0.5},
		{0, 0, 0, 1},
	})
)

// DLB and DRB are the subdivision matrices, applied from the right to the
// geometry matrix: the left half of a patch in t is G·DLB, the right half
// is G·DRB.  Their transposes act on the s direction.
var (
	DLB = transpose(splitLeft)
	DRB = transpose(splitRight)
)

// Split divides the patch at s = 1/2 and t = 1/2.  The results are, in order,
// G11 = DLBᵗ·G·DLB, G12 = DRBᵗ·G·DLB, G21 = DLBᵗ·G·DRB and G22 = DRBᵗ·G·DRB.
// Together they describe the same surface as p.
func (p Patch) Split() [4]Patch {
	sl := p.LeftMulMatrix(&splitLeft)
	sr := p.LeftMulMatrix(&splitRight)
	return [4]Patch{
		sl.MulMatrix(&DLB),
		sr.MulMatrix(&DLB),
		sl.MulMatrix(&DRB),
		sr.MulMatrix(&DRB),
	}
}

// Subdivide splits every patch the given number of times.  The result has
// len(patches)·4^levels elements; the four children of a patch replace it
// in place, in the order returned by Split.  Level 0 returns a copy of the
// input.
func Subdivide(patches []Patch, levels int) ([]Patch, error) {
	if levels < 0 {
		return nil, fmt.Errorf("%d levels: %w", levels, ErrLevels)
	}

	cur := make([]Patch, len(patches))
	copy(cur, patches)
	for level := range levels {
		next := make([]Patch, 0, 4*len(cur))
		for _, p := range cur {
			children := p.Split()
			next = append(next, children[:]...)
		}
		cur = next
		grafik.Logger().Debug("subdivided", "level", level+1, "patches", len(cur))
	}
	return cur, nil
}
