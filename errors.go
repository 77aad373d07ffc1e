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

package grafik

import "errors"

var (
	// ErrInvalidState is the panic value used when the current pixel of an
	// exhausted or uninitialized rasterizer is requested.
	ErrInvalidState = errors.New("grafik: rasterizer has no current fragment")

	// ErrNonAscendingEdge is returned when an edge segment does not strictly
	// increase in y.  The edge rasterizer divides by the vertical extent.
	ErrNonAscendingEdge = errors.New("grafik: edge segment must strictly increase in y")
)
