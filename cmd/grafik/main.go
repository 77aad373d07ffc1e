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

// Command grafik draws lines and triangles on an enlarged pixel grid,
// tessellates Bézier patch files and prints the matrices of the viewing
// pipeline.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/grafik"
	"seehuhn.de/go/grafik/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "grafik:", err)
		os.Exit(1)
	}
}

// app is the state shared by all subcommands.
type app struct {
	configFile string
	verbose    bool

	scene *config.Scene
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "grafik",
		Short:         "scan conversion and viewing pipeline experiments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "scene file (.toml, .yaml or .yml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		a.newLineCmd(),
		a.newTriangleCmd(),
		a.newPatchesCmd(),
		a.newCameraCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.verbose {
		h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		grafik.SetLogger(slog.New(h))
	} else {
		grafik.SetLogger(nil)
	}

	if a.configFile == "" {
		a.scene = config.Default()
		return nil
	}
	scene, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	grafik.Logger().Info("scene loaded", "file", a.configFile)
	a.scene = scene
	return nil
}
