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

// Command genpdf generates review images for the rasterizer test cases.
// Every case is written as a PDF, with the exact geometry drawn on top of
// the pixels, and as an enlarged PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/grafik"
	"seehuhn.de/go/grafik/canvas"
	"seehuhn.de/go/grafik/pdfout"
	"seehuhn.de/go/grafik/testcases"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func main() {
	refDir := flag.String("d", "testdata/reference", "output directory")
	cell := flag.Int("cell", 10, "size of one pixel in the output")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			base := filepath.Join(*refDir, name)
			if err := generate(tc, base, *cell); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

func generate(tc testcases.TestCase, base string, cell int) error {
	c := canvas.New(tc.Width, tc.Height, black)
	c.SetColor(white)

	var geometry path.Path
	switch op := tc.Op.(type) {
	case testcases.Line:
		grafik.DrawLine(op.X1, op.Y1, op.X2, op.Y2, c.Plot)
		geometry = polyline(false, op.X1, op.Y1, op.X2, op.Y2)
	case testcases.Triangle:
		grafik.FillTriangleSpans(op.X1, op.Y1, op.X2, op.Y2, op.X3, op.Y3, c.Span)
		geometry = polyline(true, op.X1, op.Y1, op.X2, op.Y2, op.X3, op.Y3)
	case testcases.Outline:
		grafik.StrokeOutline(op.Path, c.Plot)
		geometry = op.Path
	}

	page, err := pdfout.Create(base+".pdf", tc.Width, tc.Height, float64(cell))
	if err != nil {
		return err
	}
	page.Pixels(c)
	if geometry != nil {
		page.StrokePath(geometry, 0.5)
	}
	if err := page.Close(); err != nil {
		return err
	}

	return c.SavePNG(base+".png", cell)
}

// polyline returns the path through the given integer points.
func polyline(closed bool, coords ...int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := 0; i+1 < len(coords); i += 2 {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			p := vec.Vec2{X: float64(coords[i]), Y: float64(coords[i+1])}
			if !yield(cmd, []vec.Vec2{p}) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}
