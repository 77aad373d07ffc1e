package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/grafik"
	"seehuhn.de/go/grafik/canvas"
	"seehuhn.de/go/grafik/internal/config"
	"seehuhn.de/go/grafik/pdfout"
)

// rasterFlags are the options shared by the line and triangle commands.
type rasterFlags struct {
	out    string
	cell   int
	width  int
	height int
}

func (f *rasterFlags) register(cmd *cobra.Command, out string) {
	flags := cmd.Flags()
	flags.StringVarP(&f.out, "output", "o", out, "output file (.png or .pdf)")
	flags.IntVar(&f.cell, "cell", 0, "size of one pixel in the output (default from scene)")
	flags.IntVar(&f.width, "width", 0, "canvas width in pixels (default from scene)")
	flags.IntVar(&f.height, "height", 0, "canvas height in pixels (default from scene)")
}

func (a *app) newLineCmd() *cobra.Command {
	f := &rasterFlags{}
	cmd := &cobra.Command{
		Use:   "line X1 Y1 X2 Y2",
		Short: "draw a line with the Bresenham rasterizer",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			c, err := a.newCanvas(f)
			if err != nil {
				return err
			}
			grafik.DrawLine(v[0], v[1], v[2], v[3], c.Plot)
			return a.save(c, f)
		},
	}
	f.register(cmd, "line.png")
	return cmd
}

func (a *app) newTriangleCmd() *cobra.Command {
	f := &rasterFlags{}
	cmd := &cobra.Command{
		Use:   "triangle X1 Y1 X2 Y2 X3 Y3",
		Short: "fill a triangle with the edge rasterizers",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			c, err := a.newCanvas(f)
			if err != nil {
				return err
			}
			grafik.FillTriangleSpans(v[0], v[1], v[2], v[3], v[4], v[5], c.Span)
			return a.save(c, f)
		},
	}
	f.register(cmd, "triangle.png")
	return cmd
}

func (a *app) newCanvas(f *rasterFlags) (*canvas.Canvas, error) {
	s := a.scene.Canvas
	if f.width > 0 {
		s.Width = f.width
	}
	if f.height > 0 {
		s.Height = f.height
	}
	if f.cell > 0 {
		s.Cell = f.cell
	}
	f.width, f.height, f.cell = s.Width, s.Height, s.Cell

	bg, err := config.ParseColor(s.Background)
	if err != nil {
		return nil, err
	}
	fg, err := config.ParseColor(s.Color)
	if err != nil {
		return nil, err
	}
	c := canvas.New(s.Width, s.Height, bg)
	c.SetColor(fg)
	return c, nil
}

func (a *app) save(c *canvas.Canvas, f *rasterFlags) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(f.out)); ext {
	case ".png":
		err = c.SavePNG(f.out, f.cell)
	case ".pdf":
		err = pdfout.WriteCanvas(f.out, c, float64(f.cell))
	default:
		return fmt.Errorf("%s: unsupported output format %q", f.out, ext)
	}
	if err != nil {
		return err
	}
	grafik.Logger().Info("image written", "file", f.out,
		"width", c.Width(), "height", c.Height(), "cell", f.cell)
	return nil
}

func parseInts(args []string) ([]int, error) {
	res := make([]int, len(args))
	for i, arg := range args {
		x, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", arg)
		}
		res[i] = x
	}
	return res, nil
}
