// Package grafik implements incremental integer scan conversion of lines,
// polygon edges and triangles.
//
// The rasterizers report pixels through callbacks.  Sub-packages add a
// synthetic camera (camera), bicubic Bézier patches (bezier), triangle
// meshes (mesh) and pixel sinks (canvas, pdfout).
package grafik

//go:generate go run ./testcases/export -o testdata/cases.json

import "seehuhn.de/go/grafik/testcases"

// RenderExample rasterizes a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order, and pixel
// (x, y) is stored at buf[y*stride+x].  Covered pixels are set to 255.
// Pixels outside the width and height of the buffer are ignored.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) {
	plot := func(x, y int) {
		if x < 0 || y < 0 || x >= width || y >= height {
			return
		}
		buf[y*stride+x] = 255
	}

	switch op := tc.Op.(type) {
	case testcases.Line:
		DrawLine(op.X1, op.Y1, op.X2, op.Y2, plot)
	case testcases.Triangle:
		FillTriangle(op.X1, op.Y1, op.X2, op.Y2, op.X3, op.Y3, plot)
	case testcases.Outline:
		StrokeOutline(op.Path, plot)
	default:
		Logger().Warn("unknown operation", "case", tc.Name)
	}
}
