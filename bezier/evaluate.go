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

// BasisMatrix is the Bézier basis matrix M.  A point of the patch is
// S·M·G·Mᵗ·Tᵗ, where S = (s³, s², s, 1) and T = (t³, t², t, 1).
var BasisMatrix = newMatrix([4][4]float32{
	{-1, 3, -3, 1},
	{3, -6, 3, 0},
	{-3, 3, 0, 0},
	{1, 0, 0, 0},
})

// ParameterVector returns (t³, t², t, 1).
func ParameterVector(t float32) math32.Vector4 {
	return math32.Vec4(t*t*t, t*t, t, 1)
}

// Bernstein returns the four cubic Bernstein polynomials at t.
func Bernstein(t float32) math32.Vector4 {
	u := 1 - t
	return math32.Vec4(u*u*u, 3*t*u*u, 3*t*t*u, t*t*t)
}

// Evaluate returns the point of the surface at parameters (s, t), where
// s selects the row and t the column direction.  Both parameters range
// over [0, 1]; Evaluate(0, 0) is G11 and Evaluate(1, 1) is G44.
func (p Patch) Evaluate(s, t float32) math32.Vector3 {
	return p.LeftMulVector(Bernstein(s)).MulVector(Bernstein(t))
}
