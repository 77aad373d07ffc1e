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

package camera

import "cogentcore.org/core/math32"

// fromRows converts a matrix given row by row into the column-major
// storage of math32.Matrix4.
func fromRows(rows [4][4]float32) math32.Matrix4 {
	var m math32.Matrix4
	for r := range 4 {
		for c := range 4 {
			m[c*4+r] = rows[r][c]
		}
	}
	return m
}

func identity() math32.Matrix4 {
	return fromRows([4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

func translate(v math32.Vector3) math32.Matrix4 {
	return fromRows([4][4]float32{
		{1, 0, 0, v.X},
		{0, 1, 0, v.Y},
		{0, 0, 1, v.Z},
		{0, 0, 0, 1},
	})
}

func scale(x, y, z float32) math32.Matrix4 {
	return fromRows([4][4]float32{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	})
}

// mul returns the product ms[0]·ms[1]·...
func mul(ms ...math32.Matrix4) math32.Matrix4 {
	res := identity()
	for i := range ms {
		var tmp math32.Matrix4
		tmp.MulMatrices(&res, &ms[i])
		res = tmp
	}
	return res
}

func inverse(m math32.Matrix4) (math32.Matrix4, error) {
	inv, err := m.Inverse()
	if err != nil {
		return math32.Matrix4{}, err
	}
	return *inv, nil
}

// apply returns m·(x, y, z, 1).
func apply(m *math32.Matrix4, p math32.Vector3) math32.Vector4 {
	return math32.Vec4(p.X, p.Y, p.Z, 1).MulMatrix4(m)
}
