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

// Package flatten approximates Bézier curves by line segments.
package flatten

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Quadratic flattens the quadratic Bézier curve p0, p1, p2 and calls emit
// for each line segment. The distance between the curve and the segments
// stays below tol, measured in the units of the points.
func Quadratic(p0, p1, p2 vec.Vec2, tol float64, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()

	n := 1
	if e > tol {
		n = int(math.Ceil(math.Sqrt(e / tol)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		if i == n {
			emit(prev, p2)
			break
		}
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Cubic flattens the cubic Bézier curve p0, p1, p2, p3 and calls emit for
// each line segment. The segment count follows Wang's formula for the
// tolerance tol.
func Cubic(p0, p1, p2, p3 vec.Vec2, tol float64, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()

	n := 1
	if m := max(d1, d2); m > 0 {
		// n = ceil(sqrt(3 * m / (4 * tol)))
		if nf := math.Sqrt(3 * m / (4 * tol)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		if i == n {
			emit(prev, p3)
			break
		}
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}
