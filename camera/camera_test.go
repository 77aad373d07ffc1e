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

import (
	"errors"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/rect"
)

func testParams() Params {
	return Params{
		VRP:    math32.Vec3(0, 0, 0),
		VPN:    math32.Vec3(0, 0, 1),
		VUP:    math32.Vec3(0, 1, 0),
		PRP:    math32.Vec3(0, 0, 50),
		Window: rect.Rect{LLx: -10, LLy: -10, URx: 10, URy: 10},
		Front:  20,
		Back:   -50,
		Width:  200,
		Height: 100,
	}
}

func at(m math32.Matrix4, r, c int) float32 {
	return m[c*4+r]
}

func assertIdentity(t *testing.T, m math32.Matrix4, name string) {
	t.Helper()
	for r := range 4 {
		for c := range 4 {
			want := float32(0)
			if r == c {
				want = 1
			}
			assert.InDelta(t, want, at(m, r, c), 1e-4, "%s (%d,%d)", name, r, c)
		}
	}
}

func TestOrientation(t *testing.T) {
	p := testParams()
	p.VPN = math32.Vec3(1, 0, 0)
	p.VUP = math32.Vec3(0, 0, 1)
	c, err := New(p)
	require.NoError(t, err)

	r := c.R()
	want := [3][3]float32{
		{0, 1, 0}, // Rx = vup × Rz
		{0, 0, 1}, // Ry = Rz × Rx
		{1, 0, 0}, // Rz = vpn
	}
	for i := range 3 {
		for j := range 3 {
			assert.InDelta(t, want[i][j], at(r, i, j), 1e-6, "R(%d,%d)", i, j)
		}
	}

	var rrt math32.Matrix4
	rt := transposed(r)
	rrt.MulMatrices(&r, &rt)
	assertIdentity(t, rrt, "R·Rᵗ")
}

func transposed(m math32.Matrix4) math32.Matrix4 {
	var res math32.Matrix4
	for r := range 4 {
		for c := range 4 {
			res[c*4+r] = m[r*4+c]
		}
	}
	return res
}

func TestInverses(t *testing.T) {
	p := testParams()
	p.VRP = math32.Vec3(1, 2, 3)
	p.VPN = math32.Vec3(1, 1, 2)
	p.PRP = math32.Vec3(2, -3, 40)
	c, err := New(p)
	require.NoError(t, err)

	pairs := []struct {
		name   string
		m, inv math32.Matrix4
	}{
		{"view orientation", c.ViewOrientation(), c.InvViewOrientation()},
		{"view projection", c.ViewProjection(), c.InvViewProjection()},
		{"window viewport", c.WindowViewport(), c.InvWindowViewport()},
		{"current", c.CurrentTransformation(), c.InvCurrentTransformation()},
	}
	for _, pair := range pairs {
		var prod math32.Matrix4
		prod.MulMatrices(&pair.inv, &pair.m)
		assertIdentity(t, prod, pair.name)
	}
}

func TestMatrices(t *testing.T) {
	c, err := New(testParams())
	require.NoError(t, err)

	// Zmax = (20-50)/(-50-50) = 0.3
	m := c.Mperpar()
	assert.InDelta(t, 1/1.3, at(m, 2, 2), 1e-6)
	assert.InDelta(t, -0.3/1.3, at(m, 2, 3), 1e-6)
	assert.Equal(t, float32(-1), at(m, 3, 2))
	assert.Equal(t, float32(0), at(m, 3, 3))

	wv := c.WindowViewport()
	assert.Equal(t, float32(100), at(wv, 0, 0))
	assert.Equal(t, float32(50), at(wv, 1, 1))
	assert.Equal(t, float32(100), at(wv, 0, 3))
	assert.Equal(t, float32(50), at(wv, 1, 3))

	// no shear for a centred projection reference point
	vp := c.ViewProjection()
	assert.InDelta(t, 0.05, at(vp, 0, 0), 1e-6)
	assert.InDelta(t, 0, at(vp, 0, 2), 1e-6)
	assert.InDelta(t, 0.01, at(vp, 2, 2), 1e-6)
}

func TestProject(t *testing.T) {
	c, err := New(testParams())
	require.NoError(t, err)

	cases := []struct {
		p    math32.Vector3
		x, y float32
	}{
		{math32.Vec3(0, 0, 0), 100, 50},
		{math32.Vec3(10, 10, 0), 200, 100},
		{math32.Vec3(-10, -10, 0), 0, 0},
		{math32.Vec3(5, 5, -50), 125, 62.5}, // back plane, half size
	}
	for _, cc := range cases {
		x, y := c.Project(cc.p)
		assert.InDelta(t, cc.x, x, 1e-3, "%v", cc.p)
		assert.InDelta(t, cc.y, y, 1e-3, "%v", cc.p)
	}
}

func TestObliqueProjection(t *testing.T) {
	p := testParams()
	p.VRP = math32.Vec3(5, 0, 0)
	p.PRP = math32.Vec3(2, 4, 50)
	c, err := New(p)
	require.NoError(t, err)

	// the window centre stays fixed under the shear
	x, y := c.Project(math32.Vec3(5, 0, 0))
	assert.InDelta(t, 100, x, 1e-3)
	assert.InDelta(t, 50, y, 1e-3)
}

func TestSetters(t *testing.T) {
	c, err := New(testParams())
	require.NoError(t, err)

	require.NoError(t, c.SetVRP(math32.Vec3(5, 0, 0)))
	x, y := c.Project(math32.Vec3(5, 0, 0))
	assert.InDelta(t, 100, x, 1e-3)
	assert.InDelta(t, 50, y, 1e-3)
	assert.Equal(t, math32.Vec3(5, 0, 0), c.Params().VRP)

	require.NoError(t, c.SetViewport(400, 400))
	x, y = c.Project(math32.Vec3(15, 10, 0))
	assert.InDelta(t, 400, x, 1e-3)
	assert.InDelta(t, 400, y, 1e-3)

	require.NoError(t, c.SetWindow(rect.Rect{LLx: -20, LLy: -20, URx: 20, URy: 20}))
	x, _ = c.Project(math32.Vec3(15, 0, 0))
	assert.InDelta(t, 300, x, 1e-3)

	require.NoError(t, c.SetClipPlanes(10, -100))
	require.NoError(t, c.SetPRP(math32.Vec3(0, 0, 30)))
	require.NoError(t, c.SetVUP(math32.Vec3(1, 1, 0)))
	require.NoError(t, c.SetVPN(math32.Vec3(0, 1, 1)))

	var prod math32.Matrix4
	cur, inv := c.CurrentTransformation(), c.InvCurrentTransformation()
	prod.MulMatrices(&inv, &cur)
	assertIdentity(t, prod, "current after setters")
}

func TestSetterAtomic(t *testing.T) {
	c, err := New(testParams())
	require.NoError(t, err)
	before := *c

	checks := []error{
		c.SetVPN(math32.Vector3{}),
		c.SetVUP(math32.Vec3(0, 0, 3)),
		c.SetPRP(math32.Vec3(1, 1, 0)),
		c.SetClipPlanes(20, 50),
		c.SetWindow(rect.Rect{LLx: 1, LLy: 1, URx: 1, URy: 2}),
		c.SetViewport(0, 100),
	}
	for i, err := range checks {
		assert.True(t, errors.Is(err, ErrDegenerate), "setter %d: %v", i, err)
	}
	assert.Equal(t, before, *c)
}

func TestDegenerate(t *testing.T) {
	cases := []struct {
		name   string
		change func(p *Params)
	}{
		{"zero_vpn", func(p *Params) { p.VPN = math32.Vector3{} }},
		{"parallel_vup", func(p *Params) { p.VUP = math32.Vec3(0, 0, -2) }},
		{"zero_vup", func(p *Params) { p.VUP = math32.Vector3{} }},
		{"prp_in_view_plane", func(p *Params) { p.PRP = math32.Vec3(3, 3, 0) }},
		{"back_at_prp", func(p *Params) { p.Back = 50 }},
		{"front_at_prp", func(p *Params) { p.Front = 50 }},
		{"zmax_minus_one", func(p *Params) { p.Front, p.Back = 100, 0 }},
		{"empty_window", func(p *Params) { p.Window = rect.Rect{LLx: 0, LLy: 0, URx: 0, URy: 1} }},
		{"inverted_window", func(p *Params) { p.Window = rect.Rect{LLx: 1, LLy: 0, URx: 0, URy: 1} }},
		{"no_viewport", func(p *Params) { p.Width = 0 }},
		{"negative_viewport", func(p *Params) { p.Height = -3 }},
	}
	for _, cc := range cases {
		t.Run(cc.name, func(t *testing.T) {
			p := testParams()
			cc.change(&p)
			c, err := New(p)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrDegenerate), "got %v", err)
		})
	}
}
