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

// FillRule selects how winding numbers are turned into coverage.
type FillRule int

const (
	// NonZero fills every point with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills every point with an odd winding number.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(?)"
	}
}

// SpanSink receives the coverage of one row from [Builder.SweepRow].
// Calls are made in order of increasing x. Alpha values are in (0, 1].
type SpanSink interface {
	// AddCell reports the coverage of the single pixel x.
	AddCell(x int, alpha float32)

	// AddSpan reports that the n pixels starting at x all have the same
	// coverage.
	AddSpan(x, n int, alpha float32)
}

// SweepRow converts the cells of row y into pixel coverage and passes
// it to sink. Cells sharing the same x are merged first. Between two
// cells, the pixels are covered according to the accumulated cover
// alone, and are reported as a single span.
func (b *Builder) SweepRow(y int, rule FillRule, sink SpanSink) error {
	row, err := b.RowCells(y)
	if err != nil {
		return err
	}

	shift := b.prec.Shift + 1
	var cover int64
	n := len(row.idx)
	i := 0
	for i < n {
		c := row.store.at(row.idx[i])
		x := c.X
		area := int64(c.Area)
		cover += int64(c.Cover)
		for i++; i < n; i++ {
			c = row.store.at(row.idx[i])
			if c.X != x {
				break
			}
			area += int64(c.Area)
			cover += int64(c.Cover)
		}

		if area != 0 {
			if a := b.alpha(cover<<shift-area, rule); a > 0 {
				sink.AddCell(int(x), a)
			}
			x++
		}

		if i < n {
			next := row.store.at(row.idx[i]).X
			if next > x {
				if a := b.alpha(cover<<shift, rule); a > 0 {
					sink.AddSpan(int(x), int(next-x), a)
				}
			}
		}
	}
	return nil
}

// alpha maps a signed doubled area, in units of 1/(2*scale*scale)
// pixels, to a coverage value in [0, 1].
func (b *Builder) alpha(area int64, rule FillRule) float32 {
	if area < 0 {
		area = -area
	}
	full := int64(2) << (2 * b.prec.Shift)
	if rule == EvenOdd {
		area %= 2 * full
		if area > full {
			area = 2*full - area
		}
	} else if area > full {
		area = full
	}
	return float32(area) / float32(full)
}

// HitRegion is a [SpanSink] which records whether a given pixel column
// receives any coverage.
type HitRegion struct {
	x   int
	hit bool
}

// NewHitRegion returns a HitRegion testing column x.
func NewHitRegion(x int) *HitRegion {
	return &HitRegion{x: x}
}

// AddCell implements the [SpanSink] interface.
func (h *HitRegion) AddCell(x int, _ float32) {
	if x == h.x {
		h.hit = true
	}
}

// AddSpan implements the [SpanSink] interface.
func (h *HitRegion) AddSpan(x, n int, _ float32) {
	if h.x >= x && h.x < x+n {
		h.hit = true
	}
}

// Hit reports whether column x was covered.
func (h *HitRegion) Hit() bool {
	return h.hit
}

// HitTest reports whether pixel (x, y) receives any coverage. The
// builder is finalized if this has not happened yet.
func (b *Builder) HitTest(x, y int, rule FillRule) bool {
	b.Finalize()
	h := NewHitRegion(x)
	if err := b.SweepRow(y, rule, h); err != nil {
		return false
	}
	return h.Hit()
}
