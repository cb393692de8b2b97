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

package glyph

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/cells"
)

func loadFont(t *testing.T) *sfnt.Font {
	t.Helper()
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

type coverageRow struct {
	alpha map[int]float32
}

func (r *coverageRow) AddCell(x int, alpha float32) {
	r.alpha[x] = alpha
}

func (r *coverageRow) AddSpan(x, n int, alpha float32) {
	for i := range n {
		r.alpha[x+i] = alpha
	}
}

func TestRasterizeO(t *testing.T) {
	f := loadFont(t)
	var buf sfnt.Buffer
	b := cells.NewBuilder(nil)

	err := Rasterize(f, &buf, 'O', fixed.I(32), b, fixed.P(4, 28))
	if err != nil {
		t.Fatal(err)
	}
	b.Finalize()

	minX, minY, maxX, maxY := b.Bounds()
	if minX < 4 || maxX > 40 || minY < 0 || maxY > 29 {
		t.Errorf("unexpected glyph bounds %d %d %d %d", minX, minY, maxX, maxY)
	}

	// closed contours: the covers of every row cancel
	for y := minY; y <= maxY; y++ {
		row, err := b.RowCells(y)
		if err != nil {
			t.Fatal(err)
		}
		var cover int32
		for _, c := range row.All() {
			cover += c.Cover
		}
		if cover != 0 {
			t.Errorf("row %d: cover sum %d", y, cover)
		}
	}

	// the middle row crosses the stroke twice and skips the counter
	midX, midY := (minX+maxX)/2, (minY+maxY)/2
	row := &coverageRow{alpha: map[int]float32{}}
	if err := b.SweepRow(midY, cells.NonZero, row); err != nil {
		t.Fatal(err)
	}
	if row.alpha[midX] != 0 {
		t.Errorf("counter of 'O' has coverage %g", row.alpha[midX])
	}
	var left, right bool
	for x, a := range row.alpha {
		if a < 0.99 {
			continue
		}
		if x < midX {
			left = true
		} else {
			right = true
		}
	}
	if !left || !right {
		t.Errorf("stroke not found on both sides of x=%d", midX)
	}
	if b.HitTest(midX, midY, cells.NonZero) {
		t.Error("HitTest reports the counter as inside")
	}
}

func TestRasterizeMissing(t *testing.T) {
	f := loadFont(t)
	var buf sfnt.Buffer
	b := cells.NewBuilder(nil)

	err := Rasterize(f, &buf, '\ue000', fixed.I(16), b, fixed.Point26_6{})
	if !errors.Is(err, ErrNoGlyph) {
		t.Errorf("got %v, want %v", err, ErrNoGlyph)
	}
	if b.TotalCells() != 0 {
		t.Errorf("missing glyph produced %d cells", b.TotalCells())
	}
}

func TestOutlineMatchesLineFixed(t *testing.T) {
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{{X: 64, Y: 0}}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: 640, Y: 96}}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: 200, Y: 700}}},
	}
	origin := fixed.P(2, 3)

	got := cells.NewBuilder(nil)
	Outline(got, segs, origin)

	want := cells.NewBuilder(nil)
	pts := []fixed.Point26_6{
		segs[0].Args[0].Add(origin),
		segs[1].Args[0].Add(origin),
		segs[2].Args[0].Add(origin),
	}
	for i, p := range pts {
		want.LineFixed(p, pts[(i+1)%len(pts)])
	}

	got.Finalize()
	want.Finalize()
	if got.TotalCells() != want.TotalCells() {
		t.Fatalf("got %d cells, want %d", got.TotalCells(), want.TotalCells())
	}
	_, minY, _, maxY := want.Bounds()
	for y := minY; y <= maxY; y++ {
		a, err := got.RowCells(y)
		if err != nil {
			t.Fatal(err)
		}
		b, err := want.RowCells(y)
		if err != nil {
			t.Fatal(err)
		}
		if a.Len() != b.Len() {
			t.Fatalf("row %d: %d cells, want %d", y, a.Len(), b.Len())
		}
		for i := range a.Len() {
			if a.At(i) != b.At(i) {
				t.Errorf("row %d, cell %d: %+v, want %+v", y, i, a.At(i), b.At(i))
			}
		}
	}
}
