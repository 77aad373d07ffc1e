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

// Package mesh holds triangle lists in the flat layout used for GPU vertex
// buffers, and converts them for export.
package mesh

import (
	"encoding/json"
	"io"

	"cogentcore.org/core/math32"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Mesh is a list of triangles with one normal per corner.
//
// Vertices and Normals hold three floats per corner and three corners per
// triangle.  Entry i of both slices belongs to the same corner.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
}

// AddTriangle appends the triangle (a, b, c) with corner normals na, nb, nc.
func (m *Mesh) AddTriangle(a, b, c, na, nb, nc math32.Vector3) {
	m.Vertices = append(m.Vertices, a.X, a.Y, a.Z, b.X, b.Y, b.Z, c.X, c.Y, c.Z)
	m.Normals = append(m.Normals, na.X, na.Y, na.Z, nb.X, nb.Y, nb.Z, nc.X, nc.Y, nc.Z)
}

// Append adds all triangles of other to m.
func (m *Mesh) Append(other *Mesh) {
	m.Vertices = append(m.Vertices, other.Vertices...)
	m.Normals = append(m.Normals, other.Normals...)
}

// VertexCount returns the number of triangle corners.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 9
}

// Vertex returns the position of corner i.
func (m *Mesh) Vertex(i int) math32.Vector3 {
	return math32.Vec3(m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2])
}

// Normal returns the normal of corner i.
func (m *Mesh) Normal(i int) math32.Vector3 {
	return math32.Vec3(m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2])
}

// Triangles converts the mesh to sdfx triangles.  Normals are dropped.
func (m *Mesh) Triangles() []*sdf.Triangle3 {
	n := m.TriangleCount()
	res := make([]*sdf.Triangle3, 0, n)
	for i := range n {
		var tri sdf.Triangle3
		for j := range 3 {
			v := m.Vertex(3*i + j)
			tri[j] = v3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
		}
		res = append(res, &tri)
	}
	return res
}

// SaveSTL writes the mesh to the named file in binary STL format.
func (m *Mesh) SaveSTL(path string) error {
	return render.SaveSTL(path, m.Triangles())
}

// WriteJSON writes the mesh as a JSON object with "vertices" and "normals"
// arrays.
func (m *Mesh) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(m)
}
