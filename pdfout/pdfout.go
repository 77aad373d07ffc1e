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

// Package pdfout writes rasterized images and projected meshes to PDF files.
//
// Pages are measured in pixels, scaled by a cell size given in PDF points.
// The PDF coordinate system has its origin in the lower left corner, like
// the pixel coordinates used by the rasterizers.
package pdfout

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/grafik/camera"
	"seehuhn.de/go/grafik/canvas"
	"seehuhn.de/go/grafik/mesh"
)

// Page is a single page PDF document under construction.
type Page struct {
	page *document.Page
}

// Create starts a new single page PDF file for an image of width×height
// pixels, each drawn as a square of cell points.
func Create(name string, width, height int, cell float64) (*Page, error) {
	paper := &pdf.Rectangle{
		URx: float64(width) * cell,
		URy: float64(height) * cell,
	}
	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	// from here on, one unit is one pixel
	page.Transform(matrix.Scale(cell, cell))
	return &Page{page: page}, nil
}

// Pixels paints every pixel of c as a filled square.  Colours are
// converted to gray levels.  Runs of equal pixels along a scanline are
// merged into one rectangle.
func (p *Page) Pixels(c *canvas.Canvas) {
	w, h := c.Width(), c.Height()
	for y := range h {
		x := 0
		for x < w {
			col := c.At(x, y)
			run := 1
			for x+run < w && c.At(x+run, y) == col {
				run++
			}
			p.page.SetFillColor(pdfcolor.DeviceGray(gray(col)))
			p.page.Rectangle(float64(x), float64(y), float64(run), 1)
			p.page.Fill()
			x += run
		}
	}
}

// StrokePath draws the path with a thin line in the given gray level.
// Path coordinates are in pixels, with integer coordinates at pixel centres.
func (p *Page) StrokePath(pp path.Path, level float64) {
	const c = 0.5 // pixel centre offset
	p.page.SetStrokeColor(pdfcolor.DeviceGray(level))
	p.page.SetLineWidth(0.1)
	p.page.SetLineCap(graphics.LineCapRound)
	p.page.SetLineJoin(graphics.LineJoinRound)

	for cmd, pts := range pp.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			p.page.MoveTo(pts[0].X+c, pts[0].Y+c)
		case path.CmdLineTo:
			p.page.LineTo(pts[0].X+c, pts[0].Y+c)
		case path.CmdCubeTo:
			p.page.CurveTo(pts[0].X+c, pts[0].Y+c, pts[1].X+c, pts[1].Y+c, pts[2].X+c, pts[2].Y+c)
		case path.CmdClose:
			p.page.ClosePath()
		}
	}
	p.page.Stroke()
}

// Wireframe projects every triangle of m through cam and strokes its
// edges.  Viewport coordinates are in pixels.  Triangles with a corner
// which has no image in the viewport are skipped.
func (p *Page) Wireframe(m *mesh.Mesh, cam *camera.Camera, level float64) {
	p.page.SetStrokeColor(pdfcolor.DeviceGray(level))
	p.page.SetLineWidth(0.25)
	p.page.SetLineJoin(graphics.LineJoinRound)

	drawn := 0
	for i := range m.TriangleCount() {
		var xy [3][2]float64
		ok := true
		for j := range 3 {
			x, y := cam.Project(m.Vertex(3*i + j))
			xy[j] = [2]float64{float64(x), float64(y)}
			ok = ok && finite(xy[j][0]) && finite(xy[j][1])
		}
		if !ok {
			continue
		}
		p.page.MoveTo(xy[0][0], xy[0][1])
		p.page.LineTo(xy[1][0], xy[1][1])
		p.page.LineTo(xy[2][0], xy[2][1])
		p.page.ClosePath()
		drawn++
	}
	if drawn > 0 {
		p.page.Stroke()
	}
}

// Close finishes the page and writes the file.
func (p *Page) Close() error {
	return p.page.Close()
}

// WriteCanvas writes c to the named PDF file.
func WriteCanvas(name string, c *canvas.Canvas, cell float64) error {
	page, err := Create(name, c.Width(), c.Height(), cell)
	if err != nil {
		return err
	}
	page.Pixels(c)
	return page.Close()
}

// WriteWireframe writes the wireframe of m, as seen by cam, to the named
// PDF file.  The page has the size of the camera viewport, in points.
func WriteWireframe(name string, m *mesh.Mesh, cam *camera.Camera) error {
	params := cam.Params()
	page, err := Create(name, params.Width, params.Height, 1)
	if err != nil {
		return err
	}
	page.page.SetFillColor(pdfcolor.DeviceGray(1))
	page.page.Rectangle(0, 0, float64(params.Width), float64(params.Height))
	page.page.Fill()
	page.Wireframe(m, cam, 0)
	return page.Close()
}

// gray converts a colour to a gray level in [0, 1].
func gray(c color.RGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
