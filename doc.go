// seehuhn.de/go/cells - anti-aliased cell rasterization
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

// Package cells converts polygon edges into anti-aliasing cells.
//
// Edges are given in sub-pixel fixed point coordinates. For every pixel
// touched by an edge, a [Builder] accumulates two integers, cover and
// area, which together give the exact fraction of the pixel covered by
// the polygon. Once all edges are added, [Builder.Finalize] groups the
// cells by row and orders every row by x. The rows can then be read with
// [Builder.RowCells], or converted into coverage spans using
// [Builder.SweepRow].
//
// [Filler] is a front end which flattens paths from seehuhn.de/go/geom
// and emits coverage row by row.
package cells
