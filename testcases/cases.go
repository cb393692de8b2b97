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

package testcases

import "seehuhn.de/go/geom/matrix"

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "thin_sliver",
		Path:   triangle(2, 30, 62, 31, 2, 31.5),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

var curveCases = []TestCase{
	{
		Name:   "circle",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 12),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "quadratic",
		Path:   quadraticShape(8, 56, 32, -8, 56, 56),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "rotate_30",
		Path:   rectangle(-16, -16, 16, 16),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "shear_scale",
		Path:   triangle(-10, -10, 10, -10, 0, 10),
		Width:  64,
		Height: 128,
		Rule:   NonZero,
		CTM:    matrix.Scale(1, 2).Translate(32, 64),
	},
}

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(20, 20, 24, 24, 0.5),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "tiny_square",
		Path:   offsetRectangle(31.2, 31.3, 0.5, 0.4, 0),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

var subpathCases = []TestCase{
	{
		Name:   "ring_nonzero",
		Path:   ring(32, 32, 26, 12),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "concentric_evenodd",
		Path:   concentricRectangles(32, 32, 28, 14),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "grid",
		Path:   rectangleGrid(6, 6, 64, 64, 2),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// hugeCases have edges which are much wider than the canvas, so that
// the rasterizer has to split them before walking them.
var hugeCases = []TestCase{
	{
		Name:   "wide_triangle",
		Path:   triangle(-40000, 60, 40064, 60, 32, 4),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "wide_band",
		Path:   rectangle(-30000, 20.5, 30000, 40.25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}
