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

// DefaultBlockLimit is the block limit used when [Options.BlockLimit] is
// zero. With 4096 cells per block this allows for about four million
// cells.
const DefaultBlockLimit = 1024

// Options configures a [Builder].
type Options struct {
	// BlockLimit is the maximum number of cell blocks the builder may
	// allocate. Cells beyond this budget are dropped.
	BlockLimit int

	// Precision is the sub-pixel format of edge coordinates.
	// The zero value selects [DefaultPrecision]. Shift values above
	// [MaxShift] are reduced to MaxShift.
	Precision Precision

	// Cells controls cell identity and styles.
	// If nil, [PlainCells] is used.
	Cells Merger
}

// Builder accumulates the cells of one shape. Edges are added with
// [Builder.Line]; afterwards [Builder.Finalize] sorts the cells into
// rows, which can then be read with [Builder.RowCells].
//
// Adding edges, finalizing and reading must not be interleaved. After
// [Builder.Reset] the builder can be used for the next shape, reusing
// its memory.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	prec   Precision
	merger Merger

	store cellStore
	cur   Cell  // cell receiving contributions
	style Style // style for newly started cells

	minX, minY int32
	maxX, maxY int32

	sortedIdx []uint32  // cell indices grouped by row, ordered by x
	rows      []rowSpan // one entry per row, starting at rowMinY
	rowMinY   int
	sorted    bool
}

// rowSpan locates the cells of one row in sortedIdx.
type rowSpan struct {
	start uint32
	num   uint32
}

// NewBuilder returns a new Builder. If opt is nil, default options are
// used.
func NewBuilder(opt *Options) *Builder {
	if opt == nil {
		opt = &Options{}
	}
	b := &Builder{
		prec:   opt.Precision,
		merger: opt.Cells,
	}
	if b.prec.Shift == 0 {
		b.prec = DefaultPrecision
	} else if b.prec.Shift > MaxShift {
		Logger().Warn("sub-pixel precision reduced",
			"shift", b.prec.Shift, "max", MaxShift)
		b.prec.Shift = MaxShift
	}
	if b.merger == nil {
		b.merger = PlainCells{}
	}
	b.store.limit = opt.BlockLimit
	if b.store.limit <= 0 {
		b.store.limit = DefaultBlockLimit
	}
	b.Reset()
	return b
}

// Reset discards all cells and prepares the builder for a new shape.
// Memory allocated for earlier shapes is kept.
func (b *Builder) Reset() {
	b.store.reset()
	b.merger.Initial(&b.cur)
	b.style = 0
	b.sorted = false
	b.minX, b.minY = math.MaxInt32, math.MaxInt32
	b.maxX, b.maxY = math.MinInt32, math.MinInt32
}

// Precision returns the sub-pixel format used by the builder.
func (b *Builder) Precision() Precision {
	return b.prec
}

// Style sets the style tag for cells started after this call.
func (b *Builder) Style(s Style) {
	b.style = s
}

// Bounds returns the bounding box, in pixels, of all edge end points
// added since the last reset. If no edges were added, minX > maxX.
func (b *Builder) Bounds() (minX, minY, maxX, maxY int) {
	return int(b.minX), int(b.minY), int(b.maxX), int(b.maxY)
}

// TotalCells returns the number of committed cells.
func (b *Builder) TotalCells() int {
	return b.store.n
}

// Dropped returns the number of cells lost because the block limit was
// reached. A non-zero value means that the output is truncated.
func (b *Builder) Dropped() int {
	return b.store.dropped
}

// Sorted reports whether [Builder.Finalize] has run for the current
// shape.
func (b *Builder) Sorted() bool {
	return b.sorted
}

// addCurrentCell commits the current cell to the store. The unplaced
// cell left by Reset or Finalize is skipped.
func (b *Builder) addCurrentCell() {
	if b.cur.IsSet() {
		b.store.commit(&b.cur)
	}
}

// setCurrentCell makes the cell at pixel (x, y) current, committing the
// previous one if it is a different cell.
func (b *Builder) setCurrentCell(x, y int32) {
	if b.merger.Mergeable(&b.cur, x, y, b.style) {
		return
	}
	b.addCurrentCell()
	b.merger.ApplyStyle(&b.cur, b.style)
	b.cur.X = x
	b.cur.Y = y
	b.cur.Cover = 0
	b.cur.Area = 0
}

// extend grows the bounding box to include the pixels (x1, y1) and
// (x2, y2).
func (b *Builder) extend(x1, y1, x2, y2 int32) {
	b.minX = min(b.minX, x1, x2)
	b.maxX = max(b.maxX, x1, x2)
	b.minY = min(b.minY, y1, y2)
	b.maxY = max(b.maxY, y1, y2)
}
