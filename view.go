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
	"errors"
	"iter"
	"strconv"
)

var (
	// ErrNotFinalized is returned when rows are queried before
	// [Builder.Finalize] has been called.
	ErrNotFinalized = errors.New("cells not finalized")

	// ErrRowOutOfRange matches every [RowRangeError].
	ErrRowOutOfRange = errors.New("row out of range")
)

// RowRangeError is returned when a row outside the bounding box is
// queried.
type RowRangeError struct {
	Y          int
	MinY, MaxY int
}

func (err *RowRangeError) Error() string {
	if err.MinY > err.MaxY {
		return "row " + strconv.Itoa(err.Y) + " requested, but the shape is empty"
	}
	return "row " + strconv.Itoa(err.Y) + " outside [" +
		strconv.Itoa(err.MinY) + ", " + strconv.Itoa(err.MaxY) + "]"
}

// Is makes errors.Is(err, ErrRowOutOfRange) succeed.
func (err *RowRangeError) Is(target error) bool {
	return target == ErrRowOutOfRange
}

// Row is a read-only view of the cells in one pixel row, ordered by x.
// A Row is only valid until the next call to [Builder.Reset].
type Row struct {
	store *cellStore
	idx   []uint32
}

// Len returns the number of cells in the row.
func (r Row) Len() int {
	return len(r.idx)
}

// At returns the i-th cell of the row.
func (r Row) At(i int) Cell {
	return *r.store.at(r.idx[i])
}

// All iterates over the cells of the row in order of increasing x.
func (r Row) All() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for i, k := range r.idx {
			if !yield(i, *r.store.at(k)) {
				return
			}
		}
	}
}

// AppendTo appends the cells of the row to dst and returns the extended
// slice.
func (r Row) AppendTo(dst []Cell) []Cell {
	for _, k := range r.idx {
		dst = append(dst, *r.store.at(k))
	}
	return dst
}

// rowSpan returns the span of row y, checking the query contract.
func (b *Builder) rowSpan(y int) (rowSpan, error) {
	if !b.sorted {
		return rowSpan{}, ErrNotFinalized
	}
	// rows holds the range seen by Finalize, even if edges were added since
	i := y - b.rowMinY
	if i < 0 || i >= len(b.rows) {
		return rowSpan{}, &RowRangeError{Y: y, MinY: b.rowMinY, MaxY: b.rowMinY + len(b.rows) - 1}
	}
	return b.rows[i], nil
}

// RowCellCount returns the number of cells in row y.
// The row must be inside the bounding box, see [Builder.Bounds].
func (b *Builder) RowCellCount(y int) (int, error) {
	span, err := b.rowSpan(y)
	if err != nil {
		return 0, err
	}
	return int(span.num), nil
}

// RowCells returns the cells of row y, ordered by x.
// The row must be inside the bounding box, see [Builder.Bounds].
func (b *Builder) RowCells(y int) (Row, error) {
	span, err := b.rowSpan(y)
	if err != nil {
		return Row{}, err
	}
	return Row{
		store: &b.store,
		idx:   b.sortedIdx[span.start : span.start+span.num],
	}, nil
}
