package grafik

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/grafik/testcases"
)

func TestExamples(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				w, h := tc.Width, tc.Height
				buf := make([]byte, w*h)
				RenderExample(tc, buf, w, h, w)

				var err error
				switch op := tc.Op.(type) {
				case testcases.Line:
					err = checkLine(op, buf, w)
				case testcases.Triangle:
					err = checkTriangle(op, buf, w, h)
				case testcases.Outline:
					err = checkOutline(buf)
				}
				if err != nil {
					writeDebugImage(name, buf, w, h)
					t.Error(err)
				}
			})
		}
	}
}

func TestExampleNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range testcases.All {
		for _, tc := range cases {
			for _, c := range tc.Name {
				if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_') {
					t.Errorf("%s: invalid character %q in name", tc.Name, c)
				}
			}
			name := category + "_" + tc.Name
			if seen[name] {
				t.Errorf("duplicate test case %s", name)
			}
			seen[name] = true
			if tc.Width <= 0 || tc.Height <= 0 {
				t.Errorf("%s: invalid size %dx%d", name, tc.Width, tc.Height)
			}
		}
	}
}

// checkLine verifies pixel count and end points of a rendered line.
func checkLine(op testcases.Line, buf []byte, w int) error {
	want := max(abs(op.X2-op.X1), abs(op.Y2-op.Y1)) + 1
	if op.X1 == op.X2 && op.Y1 == op.Y2 {
		want = 0
	}
	if got := countSet(buf); got != want {
		return fmt.Errorf("%d pixels set, want %d", got, want)
	}
	if want > 0 {
		if buf[op.Y1*w+op.X1] == 0 || buf[op.Y2*w+op.X2] == 0 {
			return fmt.Errorf("end points not covered")
		}
	}
	return nil
}

// checkTriangle verifies that a rendered triangle covers one contiguous run
// per scanline in [yMin, yMax) and nothing else.
func checkTriangle(op testcases.Triangle, buf []byte, w, h int) error {
	yMin := min(op.Y1, op.Y2, op.Y3)
	yMax := max(op.Y1, op.Y2, op.Y3)
	for y := range h {
		runs := 0
		inRun := false
		for x := range w {
			set := buf[y*w+x] != 0
			if set && !inRun {
				runs++
			}
			inRun = set
		}
		wantRuns := 1
		if y < yMin || y >= yMax {
			wantRuns = 0
		}
		if runs != wantRuns {
			return fmt.Errorf("row %d: %d runs, want %d", y, runs, wantRuns)
		}
	}
	return nil
}

func checkOutline(buf []byte) error {
	if countSet(buf) == 0 {
		return fmt.Errorf("no pixels set")
	}
	return nil
}

func countSet(buf []byte) int {
	n := 0
	for _, b := range buf {
		if b != 0 {
			n++
		}
	}
	return n
}

// writeDebugImage stores a failed rendering, flipped so that y grows upwards.
func writeDebugImage(name string, buf []byte, w, h int) {
	os.MkdirAll("debug", 0755)

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetGray(x, h-1-y, color.Gray{Y: buf[y*w+x]})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
