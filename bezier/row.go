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

	"cogentcore.org/core/math32"
)

// Row is one row of the geometry matrix of a patch: four control points.
// Indices are one-based, following the usual G11 ... G44 notation.
type Row [4]math32.Vector3

// At returns the i'th control point, 1 <= i <= 4.
func (r Row) At(i int) math32.Vector3 {
	checkIndex(i)
	return r[i-1]
}

// Set replaces the i'th control point, 1 <= i <= 4.
func (r *Row) Set(i int, v math32.Vector3) {
	checkIndex(i)
	r[i-1] = v
}

// MulVector returns the sum of r_i * v_i.
func (r Row) MulVector(v math32.Vector4) math32.Vector3 {
	return combine([4]math32.Vector3(r), v)
}

// Column is one column of the geometry matrix of a patch.
// Indices are one-based.
type Column [4]math32.Vector3

// At returns the i'th control point, 1 <= i <= 4.
func (c Column) At(i int) math32.Vector3 {
	checkIndex(i)
	return c[i-1]
}

// Set replaces the i'th control point, 1 <= i <= 4.
func (c *Column) Set(i int, v math32.Vector3) {
	checkIndex(i)
	c[i-1] = v
}

// LeftMulVector returns the sum of v_i * c_i.
func (c Column) LeftMulVector(v math32.Vector4) math32.Vector3 {
	return combine([4]math32.Vector3(c), v)
}

func combine(pts [4]math32.Vector3, v math32.Vector4) math32.Vector3 {
	var res math32.Vector3
	for k, p := range pts {
		res = res.Add(p.MulScalar(component(v, k)))
	}
	return res
}

// component returns the k'th (zero-based) component of v.
func component(v math32.Vector4, k int) float32 {
	switch k {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

func checkIndex(i int) {
	if i < 1 || i > 4 {
		panic(fmt.Sprintf("bezier: index %d out of range [1,4]", i))
	}
}
