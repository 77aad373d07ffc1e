package main

import (
	"fmt"
	"io"

	"cogentcore.org/core/math32"
	"github.com/spf13/cobra"

	"seehuhn.de/go/grafik/camera"
)

func (a *app) newCameraCmd() *cobra.Command {
	var inverse bool
	cmd := &cobra.Command{
		Use:   "camera",
		Short: "print the matrices of the viewing pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cam, err := camera.New(a.scene.Camera.Params())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			p := cam.Params()
			fmt.Fprintf(w, "VRP %v\nVPN %v\nVUP %v\nPRP %v\n", p.VRP, p.VPN, p.VUP, p.PRP)
			fmt.Fprintf(w, "window [%g,%g]x[%g,%g]  front %g  back %g  viewport %dx%d\n\n",
				p.Window.LLx, p.Window.URx, p.Window.LLy, p.Window.URy,
				p.Front, p.Back, p.Width, p.Height)

			printMatrix(w, "R", cam.R())
			printMatrix(w, "T", cam.T())
			printMatrix(w, "view orientation", cam.ViewOrientation())
			printMatrix(w, "view projection", cam.ViewProjection())
			printMatrix(w, "Mperpar", cam.Mperpar())
			printMatrix(w, "window viewport", cam.WindowViewport())
			printMatrix(w, "current transformation", cam.CurrentTransformation())
			if inverse {
				printMatrix(w, "inverse view orientation", cam.InvViewOrientation())
				printMatrix(w, "inverse view projection", cam.InvViewProjection())
				printMatrix(w, "inverse window viewport", cam.InvWindowViewport())
				printMatrix(w, "inverse current transformation", cam.InvCurrentTransformation())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&inverse, "inverse", false, "also print the inverse matrices")
	return cmd
}

// printMatrix writes m row by row.  math32 stores matrices column-major.
func printMatrix(w io.Writer, name string, m math32.Matrix4) {
	fmt.Fprintf(w, "%s:\n", name)
	for r := range 4 {
		fmt.Fprintf(w, "  %10.4f %10.4f %10.4f %10.4f\n", m[r], m[4+r], m[8+r], m[12+r])
	}
	fmt.Fprintln(w)
}
