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

import "cogentcore.org/core/math32"

// MulMatrix returns the product p·m, where m is an ordinary 4×4 matrix
// such as a basis matrix.  Entry (i, j) of the result is the dot product of
// row i of p with column j of m.
func (p Patch) MulMatrix(m *math32.Matrix4) Patch {
	var res Patch
	for i := range 4 {
		for j := range 4 {
			var sum math32.Vector3
			for k := range 4 {
				sum = sum.Add(p[i][k].MulScalar(entry(m, k, j)))
			}
			res[i][j] = sum
		}
	}
	return res
}

// LeftMulMatrix returns the product m·p.
func (p Patch) LeftMulMatrix(m *math32.Matrix4) Patch {
	var res Patch
	for i := range 4 {
		for j := range 4 {
			var sum math32.Vector3
			for k := range 4 {
				sum = sum.Add(p[k][j].MulScalar(entry(m, i, k)))
			}
			res[i][j] = sum
		}
	}
	return res
}

// MulVector returns the column p·v.
func (p Patch) MulVector(v math32.Vector4) Column {
	var res Column
	for i := range 4 {
		res[i] = p[i].MulVector(v)
	}
	return res
}

// LeftMulVector returns the row vᵗ·p.
func (p Patch) LeftMulVector(v math32.Vector4) Row {
	var res Row
	for j := range 4 {
		res[j] = p.Column(j + 1).LeftMulVector(v)
	}
	return res
}

// entry returns the element in row r and column c (both zero-based) of the
// column-major matrix m.
func entry(m *math32.Matrix4, r, c int) float32 {
	return m[c*4+r]
}

// newMatrix converts a matrix given row by row into column-major storage.
func newMatrix(rows [4][4]float32) math32.Matrix4 {
	var m math32.Matrix4
	for r := range 4 {
		for c := range 4 {
			m[c*4+r] = rows[r][c]
		}
	}
	return m
}

func transpose(m math32.Matrix4) math32.Matrix4 {
	var res math32.Matrix4
	for r := range 4 {
		for c := range 4 {
			res[c*4+r] = m[r*4+c]
		}
	}
	return res
}
