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
	"cogentcore.org/core/math32"

	"seehuhn.de/go/grafik/mesh"
)

// Tessellate approximates every patch by the two triangles spanned by its
// corner points, (G11, G41, G44) and (G11, G44, G14).  Each corner gets the
// normalized cross product of the two triangle edges leaving it; degenerate
// triangles get zero normals.
//
// The approximation gets better as the patches get smaller, so Tessellate
// is normally called on the output of Subdivide.
func Tessellate(patches []Patch) *mesh.Mesh {
	m := &mesh.Mesh{}
	for _, p := range patches {
		c := p.Corners()
		addTriangle(m, c[0], c[1], c[2])
		addTriangle(m, c[0], c[2], c[3])
	}
	return m
}

// TessellateControlGrid triangulates the control net of every patch: each
// of the nine quadrilaterals between neighbouring control points is split
// into two triangles, giving 18 triangles per patch.
func TessellateControlGrid(patches []Patch) *mesh.Mesh {
	m := &mesh.Mesh{}
	for _, p := range patches {
		for i := range 3 {
			for j := range 3 {
				a, b := p[i][j], p[i+1][j]
				c, d := p[i+1][j+1], p[i][j+1]
				addTriangle(m, a, b, c)
				addTriangle(m, a, c, d)
			}
		}
	}
	return m
}

func addTriangle(m *mesh.Mesh, a, b, c math32.Vector3) {
	// math32.Normal(x, y, z) is the normal at the middle vertex y.
	na := math32.Normal(c, a, b)
	nb := math32.Normal(a, b, c)
	nc := math32.Normal(b, c, a)
	m.AddTriangle(a, b, c, na, nb, nc)
}
