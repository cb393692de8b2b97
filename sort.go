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
	"cmp"
	"slices"
)

// Finalize commits the pending cell and sorts all cells by row and,
// within each row, by x. Only the first call after a reset does any
// work.
//
// A polygon may visit the same pixel more than once, so a row can hold
// several cells with the same x. Their relative order is unspecified.
func (b *Builder) Finalize() {
	if b.sorted {
		return
	}

	b.addCurrentCell()
	b.merger.Initial(&b.cur)
	b.sorted = true

	b.rowMinY = int(b.minY)
	if b.minY > b.maxY {
		b.rowMinY = 0
		b.rows = b.rows[:0]
		b.sortedIdx = b.sortedIdx[:0]
		return
	}

	n := b.store.n
	height := int(b.maxY-b.minY) + 1
	b.sortedIdx = slices.Grow(b.sortedIdx[:0], n)[:n]
	b.rows = slices.Grow(b.rows[:0], height)[:height]
	clear(b.rows)

	// histogram of cells per row
	nb := b.store.numBlocks()
	for k := range nb {
		for i := range b.store.block(k) {
			c := &b.store.blocks[k][i]
			b.rows[c.Y-b.minY].start++
		}
	}

	// counts to start offsets
	var start uint32
	for i := range b.rows {
		v := b.rows[i].start
		b.rows[i].start = start
		start += v
	}

	// scatter cell indices into their rows
	for k := range nb {
		base := uint32(k) << blockShift
		for i := range b.store.block(k) {
			c := &b.store.blocks[k][i]
			row := &b.rows[c.Y-b.minY]
			b.sortedIdx[row.start+row.num] = base + uint32(i)
			row.num++
		}
	}

	for i := range b.rows {
		row := b.rows[i]
		if row.num < 2 {
			continue
		}
		idx := b.sortedIdx[row.start : row.start+row.num]
		slices.SortFunc(idx, func(a, c uint32) int {
			return cmp.Compare(b.store.at(a).X, b.store.at(c).X)
		})
	}

	Logger().Debug("cells finalized",
		"cells", n, "rows", height, "dropped", b.store.dropped)
}
