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

import "slices"

// Block geometry of the cell pool.
const (
	blockShift = 12
	blockSize  = 1 << blockShift
	blockMask  = blockSize - 1

	// blockPool is the number of entries by which the block table grows.
	blockPool = 256
)

// cellStore is a pool of fixed-size cell blocks. Committed cells are
// addressed by index and never move until the store is reset. Blocks
// are kept across resets and reused for the next shape.
type cellStore struct {
	blocks [][]Cell // allocated blocks, each of length blockSize
	limit  int      // maximum number of blocks

	used    int // number of blocks handed out for the current shape
	n       int // number of committed cells
	dropped int // cells rejected because the block limit was reached
}

// allocateBlock makes a fresh block available for the cells with
// indices n, n+1, ... It returns false if the block limit is reached.
func (s *cellStore) allocateBlock() bool {
	if s.used >= s.limit {
		return false
	}
	if s.used >= len(s.blocks) {
		if len(s.blocks) == cap(s.blocks) {
			s.blocks = slices.Grow(s.blocks, blockPool)
		}
		s.blocks = append(s.blocks, make([]Cell, blockSize))
		Logger().Debug("cell block allocated",
			"blocks", len(s.blocks), "limit", s.limit)
	}
	s.used++
	return true
}

// commit copies c into the next free slot. Cells without coverage are
// ignored. If the pool is exhausted, the cell is dropped and counted.
func (s *cellStore) commit(c *Cell) {
	if c.Area|c.Cover == 0 {
		return
	}
	if s.n&blockMask == 0 && s.n>>blockShift >= s.used {
		if !s.allocateBlock() {
			if s.dropped == 0 {
				Logger().Warn("cell block limit reached, dropping cells",
					"limit", s.limit, "cells", s.n)
			}
			s.dropped++
			return
		}
	}
	s.blocks[s.n>>blockShift][s.n&blockMask] = *c
	s.n++
}

// at returns the committed cell with index i.
func (s *cellStore) at(i uint32) *Cell {
	return &s.blocks[i>>blockShift][i&blockMask]
}

// block returns the committed cells of block k.
func (s *cellStore) block(k int) []Cell {
	end := min(s.n-k<<blockShift, blockSize)
	return s.blocks[k][:end]
}

// numBlocks returns the number of blocks holding committed cells.
func (s *cellStore) numBlocks() int {
	return (s.n + blockMask) >> blockShift
}

// reset forgets all committed cells but keeps the allocated blocks.
func (s *cellStore) reset() {
	s.used = 0
	s.n = 0
	s.dropped = 0
}
