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

package cells

import "math"

// Style is an opaque tag attached to cells. Styles are only ever
// compared for equality.
type Style uint32

// unset is the coordinate of a cell which has not been placed yet.
const unset = math.MaxInt32

// Cell holds the accumulated coverage of one pixel.
//
// Cover is the signed vertical extent, in sub-pixel units, of all edge
// pieces inside the pixel. Area is the sum of these extents, each
// weighted by twice the horizontal sub-pixel position of the piece.
// Together they give the exact coverage of the pixel: the pixel is
// covered by (cover_left*2*scale - Area) / (2*scale*scale), where
// cover_left is the sum of Cover over all cells of the row up to and
// including this one.
type Cell struct {
	X, Y  int32
	Cover int32
	Area  int32
	Style Style
}

// IsSet reports whether the cell has been assigned pixel coordinates.
func (c *Cell) IsSet() bool {
	return c.X != unset || c.Y != unset
}

// Merger decides when consecutive edge contributions go into the same
// cell, and how styles are carried into new cells.
type Merger interface {
	// Initial returns c to the unplaced state with no coverage.
	Initial(c *Cell)

	// ApplyStyle stamps the style of a newly started cell.
	ApplyStyle(c *Cell, s Style)

	// Mergeable reports whether a contribution at pixel (x, y) with
	// style s can be added to c.
	Mergeable(c *Cell, x, y int32, s Style) bool
}

// PlainCells is the Merger for callers which do not use styles. All
// cells carry style 0 and cell identity is given by the pixel position.
type PlainCells struct{}

// Initial implements the [Merger] interface.
func (PlainCells) Initial(c *Cell) {
	*c = Cell{X: unset, Y: unset}
}

// ApplyStyle implements the [Merger] interface.
func (PlainCells) ApplyStyle(*Cell, Style) {}

// Mergeable implements the [Merger] interface.
func (PlainCells) Mergeable(c *Cell, x, y int32, _ Style) bool {
	return c.X == x && c.Y == y
}

// StyledCells is a Merger which keeps contributions of different styles
// in separate cells.
type StyledCells struct{}

// Initial implements the [Merger] interface.
func (StyledCells) Initial(c *Cell) {
	*c = Cell{X: unset, Y: unset}
}

// ApplyStyle implements the [Merger] interface.
func (StyledCells) ApplyStyle(c *Cell, s Style) {
	c.Style = s
}

// Mergeable implements the [Merger] interface.
func (StyledCells) Mergeable(c *Cell, x, y int32, s Style) bool {
	return c.X == x && c.Y == y && c.Style == s
}
