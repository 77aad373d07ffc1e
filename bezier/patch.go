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
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
)

// Patch is the geometry matrix of a bicubic Bézier patch, four rows of four
// control points.  The parameter s runs along the rows (first index), the
// parameter t along the columns (second index).
//
// The zero value is the patch with all control points at the origin.
// Patches are values; assigning a Patch copies all sixteen points.
type Patch [4]Row

// NewPatch returns the patch with the given control points in row-major
// order, g11, g12, ..., g44.
func NewPatch(g [16]math32.Vector3) Patch {
	var p Patch
	for i := range 4 {
		copy(p[i][:], g[4*i:4*i+4])
	}
	return p
}

// At returns the control point G_ij, 1 <= i, j <= 4.
func (p Patch) At(i, j int) math32.Vector3 {
	checkIndex(i)
	return p[i-1].At(j)
}

// Set replaces the control point G_ij, 1 <= i, j <= 4.
func (p *Patch) Set(i, j int, v math32.Vector3) {
	checkIndex(i)
	p[i-1].Set(j, v)
}

// Row returns the i'th row of the geometry matrix.
func (p Patch) Row(i int) Row {
	checkIndex(i)
	return p[i-1]
}

// SetRow replaces the i'th row of the geometry matrix.
func (p *Patch) SetRow(i int, r Row) {
	checkIndex(i)
	p[i-1] = r
}

// Column returns the j'th column of the geometry matrix.
func (p Patch) Column(j int) Column {
	checkIndex(j)
	var c Column
	for i := range 4 {
		c[i] = p[i][j-1]
	}
	return c
}

// Corners returns the four corner points G11, G41, G44 and G14.
// These are the points of the surface at (s, t) = (0, 0), (1, 0), (1, 1)
// and (0, 1).
func (p Patch) Corners() [4]math32.Vector3 {
	return [4]math32.Vector3{p[0][0], p[3][0], p[3][3], p[0][3]}
}

// String formats the geometry matrix, one row per line.
func (p Patch) String() string {
	b := &strings.Builder{}
	for i := range 4 {
		b.WriteByte(' ')
		for j := range 4 {
			if j > 0 {
				b.WriteString(" | ")
			}
			v := p[i][j]
			fmt.Fprintf(b, "[%6.4g %6.4g %6.4g]", v.X, v.Y, v.Z)
		}
		b.WriteString(" \n")
	}
	return b.String()
}
