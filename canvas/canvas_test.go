package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/grafik"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestPlot(t *testing.T) {
	c := New(4, 3, black)
	assert.Equal(t, 4, c.Width())
	assert.Equal(t, 3, c.Height())
	assert.Equal(t, black, c.At(2, 2))

	c.SetColor(red)
	c.Plot(0, 0)
	assert.Equal(t, red, c.At(0, 0))
	// y grows upwards: pixel (0, 0) is in the bottom image row
	assert.Equal(t, red, c.Image().RGBAAt(0, 2))

	// out of range pixels are dropped
	c.Plot(-1, 0)
	c.Plot(4, 0)
	c.Plot(0, 3)
	c.Plot(0, -1)
	n := 0
	for y := range 3 {
		for x := range 4 {
			if c.At(x, y) == red {
				n++
			}
		}
	}
	assert.Equal(t, 1, n)
}

func TestSpan(t *testing.T) {
	c := New(5, 2, black)
	c.SetColor(red)
	c.Span(1, -3, 2)
	for x := range 5 {
		want := black
		if x <= 2 {
			want = red
		}
		assert.Equal(t, want, c.At(x, 1), "x=%d", x)
		assert.Equal(t, black, c.At(x, 0), "x=%d", x)
	}
}

func TestRasterizers(t *testing.T) {
	c := New(16, 16, black)
	c.SetColor(red)
	grafik.FillTriangleSpans(0, 0, 15, 0, 0, 15, c.Span)
	grafik.DrawLine(0, 15, 15, 15, c.Plot)
	assert.Equal(t, red, c.At(0, 0))
	assert.Equal(t, red, c.At(14, 0))
	assert.Equal(t, red, c.At(15, 15))
	assert.Equal(t, black, c.At(15, 14))
}

func TestScaled(t *testing.T) {
	c := New(2, 2, black)
	c.SetColor(red)
	c.Plot(1, 1) // top right

	img := c.Scaled(3)
	assert.Equal(t, 6, img.Rect.Dx())
	assert.Equal(t, 6, img.Rect.Dy())
	for y := range 6 {
		for x := range 6 {
			want := black
			if x >= 3 && y < 3 {
				want = red
			}
			assert.Equal(t, want, img.RGBAAt(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestWritePNG(t *testing.T) {
	c := New(3, 2, black)
	buf := &bytes.Buffer{}
	require.NoError(t, c.WritePNG(buf, 4))
	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	name := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, c.SavePNG(name, 1))
}
