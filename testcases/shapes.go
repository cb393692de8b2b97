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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

// triangle builds a closed triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return addRectangle(&path.Data{}, x1, y1, x2, y2, false)
}

// offsetRectangle builds a w×h rectangle at (x1, y1), with a subpixel
// offset applied to all coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) *path.Data {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}

// addRectangle appends a rectangle as a new subpath. If reverse is set,
// the rectangle is traversed in the opposite direction.
func addRectangle(p *path.Data, x1, y1, x2, y2 float64, reverse bool) *path.Data {
	if reverse {
		return p.
			MoveTo(pt(x1, y1)).
			LineTo(pt(x1, y2)).
			LineTo(pt(x2, y2)).
			LineTo(pt(x2, y1)).
			Close()
	}
	return p.
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// concentricRectangles builds two nested squares around (cx, cy), both
// traversed in the same direction.
func concentricRectangles(cx, cy, outer, inner float64) *path.Data {
	p := addRectangle(&path.Data{}, cx-outer, cy-outer, cx+outer, cy+outer, false)
	return addRectangle(p, cx-inner, cy-inner, cx+inner, cy+inner, false)
}

// rectangleGrid builds a grid of rectangles separated by gap.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			p = addRectangle(p,
				float64(col)*cellW+gap/2, float64(row)*cellH+gap/2,
				float64(col+1)*cellW-gap/2, float64(row+1)*cellH-gap/2,
				(row+col)%2 == 1)
		}
	}
	return p
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	var pts [5]vec.Vec2
	for i := range pts {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := (&path.Data{}).MoveTo(pts[0])
	for _, i := range []int{2, 4, 1, 3} {
		p = p.LineTo(pts[i])
	}
	return p.Close()
}

// circle builds an approximate circle using four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bézier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	return addEllipse(&path.Data{}, cx, cy, rx, ry)
}

func addEllipse(p *path.Data, cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa
	return p.
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// ring builds an annulus: the inner circle runs against the outer one,
// so that the hole stays empty under the nonzero rule.
func ring(cx, cy, outer, inner float64) *path.Data {
	// a negative radius in x mirrors the inner circle
	p := addEllipse(&path.Data{}, cx, cy, outer, outer)
	return addEllipse(p, cx, cy, -inner, inner)
}

// quadraticShape builds a closed shape bounded by one quadratic Bézier.
func quadraticShape(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}
