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

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Precision describes the sub-pixel fixed point format of edge
// coordinates. A coordinate v represents the real value v/Scale().
type Precision struct {
	// Shift is the number of fractional bits.
	Shift uint
}

// MaxShift is the largest supported number of fractional bits. A single
// pass of an edge through a cell adds at most 2·Scale()² to its area,
// which must fit into an int32 with room for several passes.
const MaxShift = 12

// DefaultPrecision uses 8 fractional bits, so that one pixel is 256
// sub-pixel units.
var DefaultPrecision = Precision{Shift: 8}

// dxLimitPixels is the largest horizontal extent, in whole pixels, which
// a segment may have before it is split in two.
const dxLimitPixels = 1 << 14

// Scale returns the number of sub-pixel units per pixel.
func (p Precision) Scale() int32 {
	return 1 << p.Shift
}

// Mask selects the fractional part of a sub-pixel coordinate.
func (p Precision) Mask() int32 {
	return p.Scale() - 1
}

// DXLimit is the horizontal extent, in sub-pixel units, from which on
// segments are bisected before rasterization.
func (p Precision) DXLimit() int64 {
	return dxLimitPixels << p.Shift
}

// pixel returns the pixel index containing the sub-pixel coordinate v.
func (p Precision) pixel(v int32) int32 {
	return v >> p.Shift
}

// frac returns the sub-pixel offset of v within its pixel.
func (p Precision) frac(v int32) int32 {
	return v & p.Mask()
}

// FromFloat converts a coordinate in pixel units to sub-pixel units,
// rounding to the nearest representable value. Values outside the int32
// range are clamped.
func (p Precision) FromFloat(v float64) int32 {
	v = math.Round(v * float64(p.Scale()))
	if v >= math.MaxInt32 {
		return math.MaxInt32
	} else if v <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// FromFixed converts a 26.6 fixed point value to sub-pixel units.
func (p Precision) FromFixed(v fixed.Int26_6) int32 {
	const fixedShift = 6
	if p.Shift >= fixedShift {
		return int32(v) << (p.Shift - fixedShift)
	}
	return int32(v) >> (fixedShift - p.Shift)
}
