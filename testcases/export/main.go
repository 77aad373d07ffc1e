// Command export writes the test cases, together with the pixels the
// rasterizers produce for them, to a JSON file.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/grafik"
	"seehuhn.de/go/grafik/testcases"
)

func main() {
	outName := flag.String("o", "testdata/cases.json", "output file name")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := write(*outName, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func write(name string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type jsonTestCase struct {
	Name   string        `json:"name"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Op     string        `json:"op"`
	Points [][2]int      `json:"points,omitempty"`
	Path   []jsonSegment `json:"path,omitempty"`
	Pixels [][2]int      `json:"pixels"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Pixels: [][2]int{},
	}
	plot := func(x, y int) {
		jtc.Pixels = append(jtc.Pixels, [2]int{x, y})
	}

	switch op := tc.Op.(type) {
	case testcases.Line:
		jtc.Op = "line"
		jtc.Points = [][2]int{{op.X1, op.Y1}, {op.X2, op.Y2}}
		grafik.DrawLine(op.X1, op.Y1, op.X2, op.Y2, plot)
	case testcases.Triangle:
		jtc.Op = "triangle"
		jtc.Points = [][2]int{{op.X1, op.Y1}, {op.X2, op.Y2}, {op.X3, op.Y3}}
		grafik.FillTriangle(op.X1, op.Y1, op.X2, op.Y2, op.X3, op.Y3, plot)
	case testcases.Outline:
		jtc.Op = "outline"
		jtc.Path = pathToJSON(op.Path)
		grafik.StrokeOutline(op.Path, plot)
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
