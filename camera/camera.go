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

// Package camera implements a synthetic camera for the classical viewing
// pipeline: world coordinates are mapped to the view reference coordinate
// system, sheared and scaled into the canonical perspective view volume,
// transformed into a parallel view volume and finally mapped to the viewport.
package camera

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/grafik"
)

// ErrDegenerate is returned for camera parameters which do not define an
// invertible viewing pipeline.
var ErrDegenerate = errors.New("camera: degenerate viewing pipeline")

// Params are the input parameters of a camera.
type Params struct {
	VRP math32.Vector3 // view reference point, in world coordinates
	VPN math32.Vector3 // view-plane normal
	VUP math32.Vector3 // view-up vector
	PRP math32.Vector3 // projection reference point, in view coordinates

	// Window is the visible part of the view plane, in view coordinates.
	Window rect.Rect

	// Front and Back are the z coordinates of the clipping planes, in view
	// coordinates.
	Front, Back float32

	// Width and Height are the size of the viewport in pixels.
	Width, Height int
}

// Camera holds the parameters of a camera together with the matrices of
// the viewing pipeline derived from them.
//
// All matrices are recomputed whenever a parameter changes.  A setter which
// would make the pipeline degenerate returns an error and leaves the camera
// unchanged.
//
// A Camera is not safe for concurrent use.
type Camera struct {
	params Params
	m      pipeline
}

type pipeline struct {
	r, t math32.Matrix4

	viewOrientation, invViewOrientation math32.Matrix4
	viewProjection, invViewProjection   math32.Matrix4
	mperpar                             math32.Matrix4
	windowViewport, invWindowViewport   math32.Matrix4
	current, invCurrent                 math32.Matrix4
}

// New returns a camera for the given parameters.
func New(p Params) (*Camera, error) {
	m, err := compute(&p)
	if err != nil {
		return nil, err
	}
	return &Camera{params: p, m: *m}, nil
}

// update applies change to a copy of the parameters and installs the new
// pipeline if it is valid.
func (c *Camera) update(change func(p *Params)) error {
	p := c.params
	change(&p)
	m, err := compute(&p)
	if err != nil {
		return err
	}
	c.params = p
	c.m = *m
	return nil
}

func compute(p *Params) (*pipeline, error) {
	m := &pipeline{}

	// view orientation
	if p.VPN.LengthSquared() == 0 {
		return nil, fmt.Errorf("zero view-plane normal: %w", ErrDegenerate)
	}
	rz := p.VPN.Normal()
	rx := p.VUP.Cross(rz)
	if rx.LengthSquared() == 0 {
		return nil, fmt.Errorf("view-up vector parallel to view-plane normal: %w", ErrDegenerate)
	}
	rx = rx.Normal()
	ry := rz.Cross(rx).Normal()
	m.r = fromRows([4][4]float32{
		{rx.X, rx.Y, rx.Z, 0},
		{ry.X, ry.Y, ry.Z, 0},
		{rz.X, rz.Y, rz.Z, 0},
		{0, 0, 0, 1},
	})
	m.t = translate(p.VRP.MulScalar(-1))
	m.viewOrientation = mul(m.r, m.t)

	// view projection
	prp := p.PRP
	llx, lly := float32(p.Window.LLx), float32(p.Window.LLy)
	urx, ury := float32(p.Window.URx), float32(p.Window.URy)
	if urx <= llx || ury <= lly {
		return nil, fmt.Errorf("empty window: %w", ErrDegenerate)
	}
	cw := math32.Vec3((llx+urx)/2, (lly+ury)/2, 0)
	dop := prp.Sub(cw)
	if dop.Z == 0 {
		return nil, fmt.Errorf("projection reference point in the view plane: %w", ErrDegenerate)
	}
	sh := identity()
	sh[8] = -dop.X / dop.Z // row 0, column 2
	sh[9] = -dop.Y / dop.Z // row 1, column 2

	depth := p.Back - prp.Z
	if depth == 0 {
		return nil, fmt.Errorf("back plane through the projection reference point: %w", ErrDegenerate)
	}
	sx := -2 * prp.Z / ((urx - llx) * depth)
	sy := -2 * prp.Z / ((ury - lly) * depth)
	sz := -1 / depth
	sper := scale(sx, sy, sz)
	m.viewProjection = mul(sper, sh, translate(prp.MulScalar(-1)))

	// perspective to parallel
	zmax := (p.Front - prp.Z) / depth
	if zmax == 0 || 1+zmax == 0 {
		return nil, fmt.Errorf("front plane at z=%g: %w", p.Front, ErrDegenerate)
	}
	m.mperpar = fromRows([4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1 / (1 + zmax), -zmax / (1 + zmax)},
		{0, 0, -1, 0},
	})

	// window to viewport
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("viewport %dx%d: %w", p.Width, p.Height, ErrDegenerate)
	}
	m.windowViewport = mul(
		scale(float32(p.Width)/2, float32(p.Height)/2, 1),
		translate(math32.Vec3(1, 1, 0)))

	m.current = mul(m.mperpar, mul(m.viewProjection, m.r, m.t))

	var err error
	if m.invViewOrientation, err = inverse(m.viewOrientation); err != nil {
		return nil, fmt.Errorf("view orientation: %w: %w", ErrDegenerate, err)
	}
	if m.invViewProjection, err = inverse(m.viewProjection); err != nil {
		return nil, fmt.Errorf("view projection: %w: %w", ErrDegenerate, err)
	}
	if m.invWindowViewport, err = inverse(m.windowViewport); err != nil {
		return nil, fmt.Errorf("window viewport: %w: %w", ErrDegenerate, err)
	}
	if m.invCurrent, err = inverse(m.current); err != nil {
		return nil, fmt.Errorf("current transformation: %w: %w", ErrDegenerate, err)
	}

	grafik.Logger().Debug("camera pipeline computed",
		"vrp", p.VRP, "vpn", p.VPN, "vup", p.VUP, "prp", p.PRP,
		"zmax", zmax, "viewport", fmt.Sprintf("%dx%d", p.Width, p.Height))
	return m, nil
}

// Params returns the current camera parameters.
func (c *Camera) Params() Params { return c.params }

// R returns the rotation aligning the view-plane normal with the z axis.
func (c *Camera) R() math32.Matrix4 { return c.m.r }

// T returns the translation moving the view reference point to the origin.
func (c *Camera) T() math32.Matrix4 { return c.m.t }

// ViewOrientation returns R·T, mapping world to view coordinates.
func (c *Camera) ViewOrientation() math32.Matrix4 { return c.m.viewOrientation }

// InvViewOrientation returns the inverse of ViewOrientation.
func (c *Camera) InvViewOrientation() math32.Matrix4 { return c.m.invViewOrientation }

// ViewProjection returns Sper·Sh·Tprp, mapping view coordinates into the
// canonical perspective view volume.
func (c *Camera) ViewProjection() math32.Matrix4 { return c.m.viewProjection }

// InvViewProjection returns the inverse of ViewProjection.
func (c *Camera) InvViewProjection() math32.Matrix4 { return c.m.invViewProjection }

// Mperpar returns the matrix mapping the canonical perspective view volume
// to the canonical parallel view volume.
func (c *Camera) Mperpar() math32.Matrix4 { return c.m.mperpar }

// WindowViewport returns the matrix mapping [-1,1]² to the viewport.
func (c *Camera) WindowViewport() math32.Matrix4 { return c.m.windowViewport }

// InvWindowViewport returns the inverse of WindowViewport.
func (c *Camera) InvWindowViewport() math32.Matrix4 { return c.m.invWindowViewport }

// CurrentTransformation returns Mperpar·ViewProjection·R·T.
// The window to viewport mapping is not included.
func (c *Camera) CurrentTransformation() math32.Matrix4 { return c.m.current }

// InvCurrentTransformation returns the inverse of CurrentTransformation.
func (c *Camera) InvCurrentTransformation() math32.Matrix4 { return c.m.invCurrent }

// SetVRP changes the view reference point.
func (c *Camera) SetVRP(v math32.Vector3) error {
	return c.update(func(p *Params) { p.VRP = v })
}

// SetVPN changes the view-plane normal.
func (c *Camera) SetVPN(v math32.Vector3) error {
	return c.update(func(p *Params) { p.VPN = v })
}

// SetVUP changes the view-up vector.
func (c *Camera) SetVUP(v math32.Vector3) error {
	return c.update(func(p *Params) { p.VUP = v })
}

// SetPRP changes the projection reference point.
func (c *Camera) SetPRP(v math32.Vector3) error {
	return c.update(func(p *Params) { p.PRP = v })
}

// SetWindow changes the window on the view plane.
func (c *Camera) SetWindow(w rect.Rect) error {
	return c.update(func(p *Params) { p.Window = w })
}

// SetClipPlanes changes the front and back clipping planes.
func (c *Camera) SetClipPlanes(front, back float32) error {
	return c.update(func(p *Params) { p.Front, p.Back = front, back })
}

// SetViewport changes the size of the viewport.
func (c *Camera) SetViewport(width, height int) error {
	return c.update(func(p *Params) { p.Width, p.Height = width, height })
}

// Project maps a point in world coordinates to viewport coordinates,
// applying the current transformation, the homogeneous division and the
// window to viewport mapping.
//
// Points in the plane through the projection reference point parallel to
// the view plane have no image; for these the results are not finite.
func (c *Camera) Project(p math32.Vector3) (x, y float32) {
	h := apply(&c.m.current, p)
	v := apply(&c.m.windowViewport, math32.Vec3(h.X/h.W, h.Y/h.W, h.Z/h.W))
	return v.X, v.Y
}
