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

// Package glyph feeds font glyph outlines into a cell builder.
package glyph

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cells"
	"seehuhn.de/go/cells/internal/flatten"
)

// flatness is the curve flattening tolerance in pixels.
const flatness = 0.25

// ErrNoGlyph is returned by [Rasterize] when the font has no glyph for
// the requested rune.
var ErrNoGlyph = errors.New("glyph not found")

// outliner walks a glyph outline and emits builder edges. Points are
// kept in the sub-pixel units of the builder.
type outliner struct {
	b   *cells.Builder
	tol float64

	start, cur vec.Vec2
}

// Outline adds the contours of an sfnt glyph to b. Segment coordinates
// are in 26.6 pixels with y pointing down, as returned by
// [sfnt.Font.LoadGlyph]; origin is added to every point. Every contour
// is closed.
func Outline(b *cells.Builder, segs sfnt.Segments, origin fixed.Point26_6) {
	prec := b.Precision()
	o := &outliner{
		b:   b,
		tol: flatness * float64(prec.Scale()),
	}
	conv := func(p fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{
			X: float64(prec.FromFixed(p.X + origin.X)),
			Y: float64(prec.FromFixed(p.Y + origin.Y)),
		}
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			o.close()
			o.start = conv(seg.Args[0])
			o.cur = o.start
		case sfnt.SegmentOpLineTo:
			p := conv(seg.Args[0])
			o.line(o.cur, p)
			o.cur = p
		case sfnt.SegmentOpQuadTo:
			p := conv(seg.Args[1])
			flatten.Quadratic(o.cur, conv(seg.Args[0]), p, o.tol, o.line)
			o.cur = p
		case sfnt.SegmentOpCubeTo:
			p := conv(seg.Args[2])
			flatten.Cubic(o.cur, conv(seg.Args[0]), conv(seg.Args[1]), p, o.tol, o.line)
			o.cur = p
		}
	}
	o.close()
}

// Rasterize loads the glyph for r at the given size in pixels per em and
// adds its outline to b.
func Rasterize(f *sfnt.Font, buf *sfnt.Buffer, r rune, ppem fixed.Int26_6, b *cells.Builder, origin fixed.Point26_6) error {
	gid, err := f.GlyphIndex(buf, r)
	if err != nil {
		return err
	}
	if gid == 0 {
		return fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}
	segs, err := f.LoadGlyph(buf, gid, ppem, nil)
	if err != nil {
		return err
	}
	Outline(b, segs, origin)
	return nil
}

func (o *outliner) close() {
	if o.cur != o.start {
		o.line(o.cur, o.start)
	}
	o.cur = o.start
}

func (o *outliner) line(from, to vec.Vec2) {
	o.b.Line(round(from.X), round(from.Y), round(to.X), round(to.Y))
}

func round(v float64) int32 {
	return int32(math.Round(v))
}
