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

// Package config loads scene descriptions for the grafik command.
//
// A scene fixes the camera, the patch input and the pixel canvas.  Files
// are TOML or YAML, selected by the file name extension.  Values missing
// from a file keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/grafik/camera"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("config: invalid scene")

// Scene is the content of a configuration file.
type Scene struct {
	Camera  Camera  `toml:"camera" yaml:"camera"`
	Patches Patches `toml:"patches" yaml:"patches"`
	Canvas  Canvas  `toml:"canvas" yaml:"canvas"`
}

// Camera holds the input parameters of the synthetic camera.
type Camera struct {
	VRP    [3]float32 `toml:"vrp" yaml:"vrp"`
	VPN    [3]float32 `toml:"vpn" yaml:"vpn"`
	VUP    [3]float32 `toml:"vup" yaml:"vup"`
	PRP    [3]float32 `toml:"prp" yaml:"prp"`
	Window [4]float64 `toml:"window" yaml:"window"` // llx, lly, urx, ury
	Front  float32    `toml:"front" yaml:"front"`
	Back   float32    `toml:"back" yaml:"back"`
	Width  int        `toml:"width" yaml:"width"`
	Height int        `toml:"height" yaml:"height"`
}

// Patches selects the Bézier patch input and its processing.
type Patches struct {
	File   string `toml:"file" yaml:"file"`
	Levels int    `toml:"levels" yaml:"levels"`
	Grid   bool   `toml:"grid" yaml:"grid"` // triangulate the control net
}

// Canvas describes the pixel grid used for rasterization output.
type Canvas struct {
	Width      int    `toml:"width" yaml:"width"`
	Height     int    `toml:"height" yaml:"height"`
	Cell       int    `toml:"cell" yaml:"cell"` // output pixels per canvas pixel
	Color      string `toml:"color" yaml:"color"`
	Background string `toml:"background" yaml:"background"`
}

// Default returns the built-in scene: an 800×600 viewport looking at the
// origin from an oblique direction, and a canvas of 15 pixel cells drawing
// red on black.
func Default() *Scene {
	return &Scene{
		Camera: Camera{
			VRP:    [3]float32{0, 0, 0},
			VPN:    [3]float32{1, 0.5, 0.6},
			VUP:    [3]float32{0, 0, 1},
			PRP:    [3]float32{0, 0, 20},
			Window: [4]float64{-4, -3, 4, 3},
			Front:  10,
			Back:   -10,
			Width:  800,
			Height: 600,
		},
		Patches: Patches{
			Levels: 2,
		},
		Canvas: Canvas{
			Width:      53,
			Height:     40,
			Cell:       15,
			Color:      "#ff0000",
			Background: "#000000",
		},
	}
}

// Load reads the named scene file on top of the defaults.  Files ending in
// ".toml" are read as TOML, files ending in ".yaml" or ".yml" as YAML.
// Unknown keys are an error.
func Load(name string) (*Scene, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	s := Default()
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(s)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(s)
	default:
		return nil, fmt.Errorf("%s: unsupported file type %q", name, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// Validate checks the values which can be checked without building the
// camera.
func (s *Scene) Validate() error {
	if s.Patches.Levels < 0 {
		return fmt.Errorf("%w: negative subdivision level %d", ErrInvalid, s.Patches.Levels)
	}
	c := &s.Canvas
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Cell <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalid, c.Cell)
	}
	if _, err := ParseColor(c.Color); err != nil {
		return fmt.Errorf("%w: canvas color: %w", ErrInvalid, err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("%w: canvas background: %w", ErrInvalid, err)
	}
	if s.Camera.Width <= 0 || s.Camera.Height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalid, s.Camera.Width, s.Camera.Height)
	}
	return nil
}

// Params converts the camera section into camera parameters.
func (c *Camera) Params() camera.Params {
	return camera.Params{
		VRP:    vec3(c.VRP),
		VPN:    vec3(c.VPN),
		VUP:    vec3(c.VUP),
		PRP:    vec3(c.PRP),
		Window: rect.Rect{LLx: c.Window[0], LLy: c.Window[1], URx: c.Window[2], URy: c.Window[3]},
		Front:  c.Front,
		Back:   c.Back,
		Width:  c.Width,
		Height: c.Height,
	}
}

func vec3(v [3]float32) math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}

// ParseColor parses an opaque colour.  Any form understood by
// [colors.FromString] is accepted, e.g. "#ff0000", "#f00", "red" or
// "rgb(255,0,0)".
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, errors.New("empty color")
	}
	c, err := colors.FromString(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if c.A != 255 {
		return color.RGBA{}, fmt.Errorf("color %q is not opaque", s)
	}
	return c, nil
}
