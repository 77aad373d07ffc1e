package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/grafik"
	"seehuhn.de/go/grafik/bezier"
	"seehuhn.de/go/grafik/bezier/patchfile"
	"seehuhn.de/go/grafik/camera"
	"seehuhn.de/go/grafik/mesh"
	"seehuhn.de/go/grafik/pdfout"
)

func (a *app) newPatchesCmd() *cobra.Command {
	var (
		out    string
		levels int
		grid   bool
	)
	cmd := &cobra.Command{
		Use:   "patches [FILE]",
		Short: "subdivide and tessellate a Bézier patch file",
		Long: `Read a Bézier patch file, subdivide every patch the given number of
times and write the resulting triangle mesh.  The output format is
chosen by the file name extension: .json and .stl write the mesh, .pdf
draws its wireframe as seen by the scene camera.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.scene.Patches
			if len(args) > 0 {
				p.File = args[0]
			}
			if cmd.Flags().Changed("levels") {
				p.Levels = levels
			}
			if cmd.Flags().Changed("grid") {
				p.Grid = grid
			}
			if p.File == "" {
				return errors.New("no patch file given")
			}

			f, err := patchfile.ReadFile(p.File)
			if err != nil {
				return err
			}
			patches, err := bezier.Subdivide(f.Patches(), p.Levels)
			if err != nil {
				return err
			}

			var m *mesh.Mesh
			if p.Grid {
				m = bezier.TessellateControlGrid(patches)
			} else {
				m = bezier.Tessellate(patches)
			}
			grafik.Logger().Info("mesh built", "file", p.File,
				"groups", len(f.Groups), "patches", len(patches), "triangles", m.TriangleCount())

			return a.writeMesh(out, m)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&out, "output", "o", "patches.json", "output file (.json, .stl or .pdf)")
	flags.IntVarP(&levels, "levels", "l", 0, "number of subdivision levels (default from scene)")
	flags.BoolVar(&grid, "grid", false, "triangulate the control net instead of the corners")
	return cmd
}

func (a *app) writeMesh(name string, m *mesh.Mesh) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		err = writeJSON(name, m)
	case ".stl":
		err = m.SaveSTL(name)
	case ".pdf":
		var cam *camera.Camera
		cam, err = camera.New(a.scene.Camera.Params())
		if err == nil {
			err = pdfout.WriteWireframe(name, m, cam)
		}
	default:
		return fmt.Errorf("%s: unsupported output format %q", name, ext)
	}
	if err != nil {
		return err
	}
	grafik.Logger().Info("mesh written", "file", name)
	return nil
}

func writeJSON(name string, m *mesh.Mesh) (err error) {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return m.WriteJSON(fd)
}
