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

// Package canvas provides an in-memory pixel sink for the rasterizers.
//
// Pixel coordinates have their origin in the lower left corner, with y
// growing upwards.  Pixels outside the canvas are silently dropped.
package canvas

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Canvas is an RGB image with a current drawing colour.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	col color.RGBA
}

// New returns a canvas of the given size, cleared to bg.  The drawing
// colour is opaque white.
func New(width, height int, bg color.RGBA) *Canvas {
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		col: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	c.Clear(bg)
	return c
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Clear sets every pixel to col.
func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// SetColor sets the colour used by Plot and Span.
func (c *Canvas) SetColor(col color.RGBA) {
	c.col = col
}

// Plot sets the pixel (x, y) to the current colour.
func (c *Canvas) Plot(x, y int) {
	row := c.img.Rect.Dy() - 1 - y
	if x < 0 || x >= c.img.Rect.Dx() || row < 0 || y < 0 {
		return
	}
	c.img.SetRGBA(x, row, c.col)
}

// Span sets the pixels xMin, ..., xMax on scanline y to the current colour.
func (c *Canvas) Span(y, xMin, xMax int) {
	xMin = max(xMin, 0)
	xMax = min(xMax, c.img.Rect.Dx()-1)
	for x := xMin; x <= xMax; x++ {
		c.Plot(x, y)
	}
}

// At returns the colour of pixel (x, y).  Pixels outside the canvas are
// transparent black.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, c.img.Rect.Dy()-1-y)
}

// Image returns the canvas as an image, with the usual image orientation
// (row 0 at the top).  The image shares its pixels with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Scaled returns a copy of the canvas where every pixel is enlarged to a
// cell of cell×cell pixels.
func (c *Canvas) Scaled(cell int) *image.RGBA {
	cell = max(cell, 1)
	b := c.img.Rect
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*cell, b.Dy()*cell))
	draw.NearestNeighbor.Scale(dst, dst.Rect, c.img, b, draw.Src, nil)
	return dst
}

// WritePNG writes the canvas, scaled by cell, in PNG format.
func (c *Canvas) WritePNG(w io.Writer, cell int) error {
	return png.Encode(w, c.Scaled(cell))
}

// SavePNG writes the canvas, scaled by cell, to the named PNG file.
func (c *Canvas) SavePNG(name string, cell int) (err error) {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return c.WritePNG(fd, cell)
}
