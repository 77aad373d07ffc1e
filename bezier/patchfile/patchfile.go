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

// Package patchfile reads bicubic Bézier patches from the text format used
// by the Utah teapot data set.
//
// A file starts with the number of vertices, followed by one line
// "index x y z" per vertex, with indices counting up from 1.  The rest of
// the file consists of named groups of patches.  A group starts with a
// comment line "# name", followed by patch lines of 17 integers: the patch
// number and the sixteen vertex indices of the geometry matrix in row-major
// order.  Lines starting with "#" are comments everywhere else.
package patchfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"

	"seehuhn.de/go/grafik"
	"seehuhn.de/go/grafik/bezier"
)

// ErrSyntax is wrapped by every ParseError.
var ErrSyntax = errors.New("patchfile: syntax error")

// State is the state of the parser, identifying what it expects next.
type State int

const (
	StateVertexCount   State = iota // waiting for the number of vertices
	StateVertices                   // reading vertex lines
	StatePatchName                  // waiting for "# name"
	StateSearchPatches              // name seen, waiting for the first patch line
	StatePatchRows                  // reading patch lines
)

func (s State) String() string {
	switch s {
	case StateVertexCount:
		return "vertex count"
	case StateVertices:
		return "vertices"
	case StatePatchName:
		return "patch name"
	case StateSearchPatches:
		return "search patches"
	case StatePatchRows:
		return "patch rows"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseError describes a malformed line.
type ParseError struct {
	Line  int    // line number, starting at 1; 0 for end of file
	Text  string // the offending line
	State State  // parser state when the line was read
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("patchfile: end of file: %s", e.Msg)
	}
	return fmt.Sprintf("patchfile: line %d: %s: %q", e.Line, e.Msg, e.Text)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// File is the content of a patch file.
type File struct {
	Vertices []math32.Vector3
	Groups   []Group
}

// Group is a named set of patches, for example the lid of the teapot.
type Group struct {
	Name    string
	Numbers []int // patch numbers, as given in the file
	Patches []bezier.Patch
}

// Patches returns the patches of all groups, in file order.
func (f *File) Patches() []bezier.Patch {
	var res []bezier.Patch
	for _, g := range f.Groups {
		res = append(res, g.Patches...)
	}
	return res
}

// ReadFile reads and parses the named patch file.
func ReadFile(name string) (*File, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Parse(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// Parse reads a patch file from r.  Either the complete file is returned,
// or an error; on syntax errors the error is a *ParseError.
func Parse(r io.Reader) (*File, error) {
	p := &parser{state: StateVertexCount, f: &File{}}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.lineNo++
		if err := p.line(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	switch p.state {
	case StateVertexCount:
		return nil, p.eofError("missing vertex count")
	case StateVertices:
		return nil, p.eofError(fmt.Sprintf("found %d of %d vertices", len(p.f.Vertices), p.nVertices))
	}
	p.finishGroup()

	logger := grafik.Logger()
	logger.Debug("patch file read",
		"vertices", len(p.f.Vertices),
		"groups", len(p.f.Groups),
		"patches", len(p.f.Patches()))
	return p.f, nil
}

type parser struct {
	state  State
	lineNo int
	text   string

	nVertices int
	f         *File
	group     *Group
}

func (p *parser) line(text string) error {
	p.text = text
	line := strings.TrimSpace(text)
	if line == "" {
		return nil
	}
	comment := line[0] == '#'

	switch p.state {
	case StateVertexCount:
		if comment {
			return nil
		}
		fields, err := p.fields(line, 1)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return p.syntaxError("invalid vertex count")
		}
		p.nVertices = n
		p.f.Vertices = make([]math32.Vector3, 0, n)
		p.state = StateVertices
		if n == 0 {
			p.state = StatePatchName
		}

	case StateVertices:
		if comment {
			return nil
		}
		fields, err := p.fields(line, 4)
		if err != nil {
			return err
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return p.syntaxError("invalid vertex index")
		}
		if idx != len(p.f.Vertices)+1 {
			return p.syntaxError(fmt.Sprintf("vertex index %d, expected %d", idx, len(p.f.Vertices)+1))
		}
		var xyz [3]float32
		for i := range xyz {
			x, err := strconv.ParseFloat(fields[i+1], 32)
			if err != nil {
				return p.syntaxError("invalid vertex coordinate")
			}
			xyz[i] = float32(x)
		}
		p.f.Vertices = append(p.f.Vertices, math32.Vec3(xyz[0], xyz[1], xyz[2]))
		if len(p.f.Vertices) == p.nVertices {
			p.state = StatePatchName
		}

	case StatePatchName:
		if !comment {
			return p.syntaxError("expected patch name")
		}
		p.name(line)

	case StateSearchPatches, StatePatchRows:
		if comment {
			if p.state == StatePatchRows {
				p.finishGroup()
				p.state = StatePatchName
				p.name(line)
			}
			return nil
		}
		p.state = StatePatchRows
		return p.patch(line)
	}
	return nil
}

// name handles a comment line while a group name is expected.  Comment
// lines of at most two characters are ignored.
func (p *parser) name(line string) {
	fields := strings.Fields(line[1:])
	if len(line) <= 2 || len(fields) == 0 {
		return
	}
	p.group = &Group{Name: fields[0]}
	p.state = StateSearchPatches
}

func (p *parser) patch(line string) error {
	fields, err := p.fields(line, 17)
	if err != nil {
		return err
	}
	var nums [17]int
	for i, s := range fields {
		n, err := strconv.Atoi(s)
		if err != nil {
			return p.syntaxError("invalid integer")
		}
		nums[i] = n
	}

	var g [16]math32.Vector3
	for i, idx := range nums[1:] {
		if idx < 1 || idx > len(p.f.Vertices) {
			return p.syntaxError(fmt.Sprintf("vertex index %d out of range [1,%d]", idx, len(p.f.Vertices)))
		}
		g[i] = p.f.Vertices[idx-1]
	}
	p.group.Numbers = append(p.group.Numbers, nums[0])
	p.group.Patches = append(p.group.Patches, bezier.NewPatch(g))
	return nil
}

func (p *parser) finishGroup() {
	if p.group == nil {
		return
	}
	grafik.Logger().Debug("patch group", "name", p.group.Name, "patches", len(p.group.Patches))
	p.f.Groups = append(p.f.Groups, *p.group)
	p.group = nil
}

func (p *parser) fields(line string, n int) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, p.syntaxError(fmt.Sprintf("expected %d fields, found %d", n, len(fields)))
	}
	return fields, nil
}

func (p *parser) syntaxError(msg string) error {
	return &ParseError{Line: p.lineNo, Text: p.text, State: p.state, Msg: msg}
}

func (p *parser) eofError(msg string) error {
	return &ParseError{State: p.state, Msg: msg}
}
