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

package testcases

var lineCases = []TestCase{
	{Name: "horizontal", Width: 32, Height: 16, Op: Line{X1: 2, Y1: 8, X2: 29, Y2: 8}},
	{Name: "vertical", Width: 16, Height: 32, Op: Line{X1: 8, Y1: 2, X2: 8, Y2: 29}},
	{Name: "diagonal", Width: 32, Height: 32, Op: Line{X1: 2, Y1: 2, X2: 29, Y2: 29}},
	{Name: "antidiagonal", Width: 32, Height: 32, Op: Line{X1: 29, Y1: 2, X2: 2, Y2: 29}},
	{Name: "shallow", Width: 64, Height: 32, Op: Line{X1: 2, Y1: 4, X2: 61, Y2: 21}},
	{Name: "shallow_reversed", Width: 64, Height: 32, Op: Line{X1: 61, Y1: 21, X2: 2, Y2: 4}},
	{Name: "steep", Width: 32, Height: 64, Op: Line{X1: 4, Y1: 2, X2: 21, Y2: 61}},
	{Name: "steep_down", Width: 32, Height: 64, Op: Line{X1: 21, Y1: 61, X2: 27, Y2: 3}},
	{Name: "tie", Width: 16, Height: 16, Op: Line{X1: 0, Y1: 0, X2: 4, Y2: 2}},
	{Name: "single_step", Width: 8, Height: 8, Op: Line{X1: 3, Y1: 3, X2: 4, Y2: 4}},
	{Name: "point", Width: 8, Height: 8, Op: Line{X1: 3, Y1: 3, X2: 3, Y2: 3}},
}
