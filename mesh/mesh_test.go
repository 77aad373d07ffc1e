package mesh

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitTriangle() *Mesh {
	m := &Mesh{}
	up := math32.Vec3(0, 0, 1)
	m.AddTriangle(math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), up, up, up)
	return m
}

func TestAddTriangle(t *testing.T) {
	m := unitTriangle()
	assert.Equal(t, 1, m.TriangleCount())
	assert.Equal(t, 3, m.VertexCount())
	assert.Len(t, m.Normals, len(m.Vertices))
	assert.Equal(t, math32.Vec3(1, 0, 0), m.Vertex(1))
	assert.Equal(t, math32.Vec3(0, 0, 1), m.Normal(2))

	m.Append(unitTriangle())
	assert.Equal(t, 2, m.TriangleCount())
	assert.Equal(t, math32.Vec3(0, 1, 0), m.Vertex(5))
}

func TestTriangles(t *testing.T) {
	m := unitTriangle()
	tris := m.Triangles()
	require.Len(t, tris, 1)
	assert.Equal(t, 1.0, tris[0][1].X)
	assert.Equal(t, 1.0, tris[0][2].Y)
	assert.Equal(t, 0.0, tris[0][0].Z)
}

func TestJSON(t *testing.T) {
	m := unitTriangle()
	buf := &bytes.Buffer{}
	require.NoError(t, m.WriteJSON(buf))

	var back Mesh
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, m.Vertices, back.Vertices)
	assert.Equal(t, m.Normals, back.Normals)
	assert.Contains(t, buf.String(), `"vertices"`)
}

func TestSaveSTL(t *testing.T) {
	name := filepath.Join(t.TempDir(), "tri.stl")
	m := unitTriangle()
	m.Append(unitTriangle())
	require.NoError(t, m.SaveSTL(name))

	fi, err := os.Stat(name)
	require.NoError(t, err)
	// binary STL: 80 byte header, triangle count, 50 bytes per triangle
	assert.Equal(t, int64(84+2*50), fi.Size())
}
