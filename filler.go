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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cells/internal/flatten"
)

// defaultFlatness is the default curve flattening tolerance in device
// pixels.
const defaultFlatness = 0.25

// Filler fills vector paths by feeding their outlines into a [Builder]
// and sweeping the resulting cells. Create one instance and reuse it for
// multiple paths; internal buffers grow as needed but never shrink.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned. Edges are clipped before
	// they reach the cell builder, so that geometry far outside Clip
	// costs no cells.
	Clip rect.Rect

	// Flatness controls curve approximation accuracy in device pixels.
	// Must be positive.
	Flatness float64

	b        *Builder
	coverage []float32 // one row of output, indexed by x - clip x min
}

// NewFiller returns a Filler with the given clip rectangle. The cell
// builder is configured using opt, which may be nil.
func NewFiller(clip rect.Rect, opt *Options) *Filler {
	return &Filler{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		b:        NewBuilder(opt),
	}
}

// Reset restores the default parameters with the given clip rectangle,
// keeping allocated memory.
func (f *Filler) Reset(clip rect.Rect) {
	f.CTM = matrix.Identity
	f.Clip = clip
	f.Flatness = defaultFlatness
	f.b.Reset()
	f.coverage = f.coverage[:0]
}

// Builder returns the cell builder used by f. After a fill, it holds the
// finalized cells of the last path.
func (f *Filler) Builder() *Builder {
	return f.b
}

// FillNonZero fills the path using the nonzero winding rule. The emit
// callback receives coverage row-by-row; its slice argument is valid only
// during the call.
func (f *Filler) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	f.fill(p, NonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule. The emit callback
// receives coverage row-by-row; its slice argument is valid only during
// the call.
func (f *Filler) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	f.fill(p, EvenOdd, emit)
}

// Fill fills the path using the given rule.
func (f *Filler) Fill(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	f.fill(p, rule, emit)
}

// Contains reports whether the device pixel (x, y) receives any
// coverage when p is filled using the given rule. Pixels outside Clip
// are never contained.
func (f *Filler) Contains(p *path.Data, rule FillRule, x, y int) bool {
	f.collectPathEdges(p)
	return f.b.HitTest(x, y, rule)
}

func (f *Filler) fill(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	f.collectPathEdges(p)
	f.b.Finalize()

	_, minY, _, maxY := f.b.Bounds()
	clipXMin := int(f.Clip.LLx)
	clipXMax := int(f.Clip.URx)
	yMin := max(minY, int(f.Clip.LLy))
	yMax := min(maxY, int(f.Clip.URy)-1)
	width := clipXMax - clipXMin
	if width <= 0 || yMin > yMax {
		return
	}
	f.coverage = slices.Grow(f.coverage[:0], width)[:width]
	clear(f.coverage)

	sink := &rowSink{xMin: clipXMin, coverage: f.coverage}
	for y := yMin; y <= yMax; y++ {
		sink.reset()
		if err := f.b.SweepRow(y, rule, sink); err != nil {
			return
		}
		if sink.lo >= sink.hi {
			continue
		}
		if trimmed, offset := trimZeros(f.coverage[sink.lo:sink.hi]); trimmed != nil {
			emit(y, clipXMin+sink.lo+offset, trimmed)
		}
	}
}

// collectPathEdges resets the builder and feeds it all edges of p in
// device space. Open subpaths are closed implicitly.
func (f *Filler) collectPathEdges(p *path.Data) {
	f.b.Reset()

	var current vec.Vec2 // current point (device space)
	var subpath vec.Vec2 // subpath start (device space)
	closeSubpath := func() {
		if current != subpath {
			f.addEdge(current, subpath)
		}
		current = subpath
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current = f.toDevice(p.Coords[coordIdx])
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			next := f.toDevice(p.Coords[coordIdx])
			f.addEdge(current, next)
			current = next
			coordIdx++

		case path.CmdQuadTo:
			c := f.toDevice(p.Coords[coordIdx])
			next := f.toDevice(p.Coords[coordIdx+1])
			flatten.Quadratic(current, c, next, f.Flatness, f.addEdge)
			current = next
			coordIdx += 2

		case path.CmdCubeTo:
			c1 := f.toDevice(p.Coords[coordIdx])
			c2 := f.toDevice(p.Coords[coordIdx+1])
			next := f.toDevice(p.Coords[coordIdx+2])
			flatten.Cubic(current, c1, c2, next, f.Flatness, f.addEdge)
			current = next
			coordIdx += 3

		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()
}

// toDevice applies the CTM to a point.
func (f *Filler) toDevice(p vec.Vec2) vec.Vec2 {
	m := f.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// addEdge adds the part of the device space edge p0-p1 which can affect
// pixels inside Clip. Parts above or below the clip rectangle are
// dropped. Parts to the left or right are moved onto the vertical clip
// boundary, where they keep their cover.
func (f *Filler) addEdge(p0, p1 vec.Vec2) {
	yMin, yMax := f.Clip.LLy, f.Clip.URy
	if p0.Y == p1.Y || max(p0.Y, p1.Y) <= yMin || min(p0.Y, p1.Y) >= yMax {
		return
	}

	a, b := p0, p1
	if a.Y < yMin {
		a = atY(p0, p1, yMin)
	} else if a.Y > yMax {
		a = atY(p0, p1, yMax)
	}
	if b.Y < yMin {
		b = atY(p0, p1, yMin)
	} else if b.Y > yMax {
		b = atY(p0, p1, yMax)
	}

	// split where the edge crosses the left or right clip boundary,
	// in the order of travel
	xMin, xMax := f.Clip.LLx, f.Clip.URx
	bounds := [2]float64{xMin, xMax}
	if a.X > b.X {
		bounds[0], bounds[1] = xMax, xMin
	}
	var pts [4]vec.Vec2
	pts[0] = a
	n := 1
	for _, xb := range bounds {
		if (a.X < xb && xb < b.X) || (b.X < xb && xb < a.X) {
			pts[n] = vec.Vec2{X: xb, Y: a.Y + (b.Y-a.Y)*(xb-a.X)/(b.X-a.X)}
			n++
		}
	}
	pts[n] = b
	n++

	prec := f.b.prec
	for i := range n - 1 {
		q0, q1 := pts[i], pts[i+1]
		f.b.Line(
			prec.FromFloat(min(max(q0.X, xMin), xMax)), prec.FromFloat(q0.Y),
			prec.FromFloat(min(max(q1.X, xMin), xMax)), prec.FromFloat(q1.Y))
	}
}

// atY returns the point on the line through p0 and p1 with the given y
// coordinate. p0.Y and p1.Y must differ.
func atY(p0, p1 vec.Vec2, y float64) vec.Vec2 {
	return vec.Vec2{X: p0.X + (p1.X-p0.X)*(y-p0.Y)/(p1.Y-p0.Y), Y: y}
}

// rowSink writes sweep output into a coverage row clipped to
// [xMin, xMin+len(coverage)). lo and hi delimit the written range.
type rowSink struct {
	xMin     int
	coverage []float32
	lo, hi   int
}

func (s *rowSink) reset() {
	if s.lo < s.hi {
		clear(s.coverage[s.lo:s.hi])
	}
	s.lo = len(s.coverage)
	s.hi = 0
}

func (s *rowSink) AddCell(x int, alpha float32) {
	s.AddSpan(x, 1, alpha)
}

func (s *rowSink) AddSpan(x, n int, alpha float32) {
	lo := max(x-s.xMin, 0)
	hi := min(x-s.xMin+n, len(s.coverage))
	if lo >= hi {
		return
	}
	for i := lo; i < hi; i++ {
		s.coverage[i] = alpha
	}
	s.lo = min(s.lo, lo)
	s.hi = max(s.hi, hi)
}

// trimZeros returns the non-zero portion of coverage and its starting
// offset. Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}
