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

import "golang.org/x/image/math/fixed"

// Line adds the edge from (x1, y1) to (x2, y2) to the shape. The
// coordinates are in sub-pixel units, see [Precision].
//
// The edge is walked row by row and, within each row, pixel by pixel.
// All divisions are exact integer divisions with the remainder carried
// to the next step, so that the cover of all cells along the edge adds
// up to exactly y2-y1.
func (b *Builder) Line(x1, y1, x2, y2 int32) {
	dx := int64(x2) - int64(x1)
	if limit := b.prec.DXLimit(); dx >= limit || dx <= -limit {
		cx := int32((int64(x1) + int64(x2)) >> 1)
		cy := int32((int64(y1) + int64(y2)) >> 1)
		b.Line(x1, y1, cx, cy)
		b.Line(cx, cy, x2, y2)
		return
	}

	p := b.prec
	scale := p.Scale()
	dy := int64(y2) - int64(y1)
	ex1 := p.pixel(x1)
	ex2 := p.pixel(x2)
	ey1 := p.pixel(y1)
	ey2 := p.pixel(y2)
	fy1 := p.frac(y1)
	fy2 := p.frac(y2)

	b.extend(ex1, ey1, ex2, ey2)
	b.setCurrentCell(ex1, ey1)

	if ey1 == ey2 {
		b.hline(ey1, x1, fy1, x2, fy2)
		return
	}

	incr := int32(1)

	if dx == 0 {
		// vertical edge: one cell per row, all in column ex1
		twoFx := p.frac(x1) << 1
		first := scale
		if dy < 0 {
			first = 0
			incr = -1
		}

		delta := first - fy1
		b.cur.Cover += delta
		b.cur.Area += twoFx * delta
		ey1 += incr
		b.setCurrentCell(ex1, ey1)

		delta = first + first - scale
		area := twoFx * delta
		for ey1 != ey2 {
			b.cur.Cover += delta
			b.cur.Area += area
			ey1 += incr
			b.setCurrentCell(ex1, ey1)
		}

		delta = fy2 - scale + first
		b.cur.Cover += delta
		b.cur.Area += twoFx * delta
		return
	}

	// sloped edge spanning several rows
	first := scale
	xMask := int64(scale-fy1) * dx
	if dy < 0 {
		xMask = int64(fy1) * dx
		first = 0
		incr = -1
		dy = -dy
	}

	delta := xMask / dy
	mod := xMask % dy
	if mod < 0 {
		delta--
		mod += dy
	}

	xFrom := x1 + int32(delta)
	b.hline(ey1, x1, fy1, xFrom, first)
	ey1 += incr
	b.setCurrentCell(p.pixel(xFrom), ey1)

	if ey1 != ey2 {
		xMask = int64(scale) * dx
		lift := xMask / dy
		rem := xMask % dy
		if rem < 0 {
			lift--
			rem += dy
		}
		mod -= dy
		for ey1 != ey2 {
			delta = lift
			mod += rem
			if mod >= 0 {
				mod -= dy
				delta++
			}

			xTo := xFrom + int32(delta)
			b.hline(ey1, xFrom, scale-first, xTo, first)
			xFrom = xTo
			ey1 += incr
			b.setCurrentCell(p.pixel(xFrom), ey1)
		}
	}
	b.hline(ey1, xFrom, scale-first, x2, fy2)
}

// LineFixed adds an edge whose end points are given in 26.6 fixed point
// pixel coordinates.
func (b *Builder) LineFixed(from, to fixed.Point26_6) {
	p := b.prec
	b.Line(p.FromFixed(from.X), p.FromFixed(from.Y), p.FromFixed(to.X), p.FromFixed(to.Y))
}

// hline adds the part of an edge which lies inside pixel row ey. The
// edge runs from x1 to x2 (sub-pixel units) horizontally, and from y1 to
// y2 (sub-pixel offsets inside the row) vertically.
func (b *Builder) hline(ey, x1, y1, x2, y2 int32) {
	p := b.prec
	scale := p.Scale()
	fx1 := p.frac(x1)
	fx2 := p.frac(x2)
	ex1 := p.pixel(x1)
	ex2 := p.pixel(x2)

	// horizontal move: no coverage
	if y1 == y2 {
		b.setCurrentCell(ex2, ey)
		return
	}

	if ex1 == ex2 {
		delta := y2 - y1
		b.cur.Cover += delta
		b.cur.Area += (fx1 + fx2) * delta
		return
	}

	// The edge crosses at least one vertical pixel boundary. Walk the
	// columns in the direction of dx.
	first := scale
	incr := int32(1)
	yMask := int64(scale-fx1) * int64(y2-y1)
	dx := int64(x2) - int64(x1)
	if dx < 0 {
		yMask = int64(fx1) * int64(y2-y1)
		first = 0
		incr = -1
		dx = -dx
	}

	delta := yMask / dx
	mod := yMask % dx
	if mod < 0 {
		mod += dx
		delta--
	}

	b.cur.Area += (fx1 + first) * int32(delta)
	b.cur.Cover += int32(delta)
	ex1 += incr
	b.setCurrentCell(ex1, ey)
	y1 += int32(delta)

	if ex1 != ex2 {
		yMask = int64(scale) * int64(y2-y1+int32(delta))
		lift := yMask / dx
		rem := yMask % dx
		if rem < 0 {
			lift--
			rem += dx
		}
		mod -= dx
		for ex1 != ex2 {
			delta = lift
			mod += rem
			if mod >= 0 {
				mod -= dx
				delta++
			}

			b.cur.Area += scale * int32(delta)
			b.cur.Cover += int32(delta)
			y1 += int32(delta)
			ex1 += incr
			b.setCurrentCell(ex1, ey)
		}
	}

	delta32 := y2 - y1
	b.cur.Cover += delta32
	b.cur.Area += (fx2 + scale - first) * delta32
}
