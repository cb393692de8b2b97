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
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cells/testcases"
)

// BenchmarkFillerO benchmarks the cell rasterizer drawing an "O" shape.
func BenchmarkFillerO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(size), URy: float64(size)}
			f := NewFiller(clip, nil)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			center := float64(size) / 2
			outerR := float64(size) * 0.45
			innerR := float64(size) * 0.30
			oPath := makeOPath(center, center, outerR, innerR)

			b.ReportAllocs()
			for b.Loop() {
				f.Reset(clip)
				f.FillEvenOdd(oPath, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing an "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkBuilderLines measures edge walking and sorting without any
// path handling.
func BenchmarkBuilderLines(b *testing.B) {
	bld := NewBuilder(nil)
	b.ReportAllocs()
	for b.Loop() {
		bld.Reset()
		for i := range int32(64) {
			bld.Line(i*97, 0, 20000-i*131, 40000)
			bld.Line(20000-i*131, 40000, i*97, 0)
		}
		bld.Finalize()
	}
}

// BenchmarkFillAll measures steady-state performance by reusing a single
// Filler across all test cases.
func BenchmarkFillAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	f := NewFiller(rect.Rect{}, nil)
	emit := func(y, xMin int, coverage []float32) {}

	for b.Loop() {
		for _, tc := range cases {
			f.Clip = rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
			if tc.CTM != (matrix.Matrix{}) {
				f.CTM = tc.CTM
			} else {
				f.CTM = matrix.Identity
			}

			f.Fill(tc.Path, FillRule(tc.Rule), emit)
		}
	}
}

// makeOPath creates an "O" shape: the outer circle runs counter-clockwise,
// the inner one clockwise.
func makeOPath(cx, cy, outerR, innerR float64) *path.Data {
	p := &path.Data{}
	addCircleToPath(p, cx, cy, outerR, false)
	addCircleToPath(p, cx, cy, innerR, true)
	return p
}

// addCircleToPath adds a circle to p using cubic Bézier curves.
func addCircleToPath(p *path.Data, cx, cy, r float64, clockwise bool) {
	const k = 0.5522847498
	ry, kry := r, k*r
	rx, krx := r, k*r
	if clockwise {
		// mirror in x to reverse the direction
		rx, krx = -rx, -krx
	}
	p.MoveTo(vec.Vec2{X: cx, Y: cy - ry}).
		CubeTo(vec.Vec2{X: cx + krx, Y: cy - ry}, vec.Vec2{X: cx + rx, Y: cy - kry}, vec.Vec2{X: cx + rx, Y: cy}).
		CubeTo(vec.Vec2{X: cx + rx, Y: cy + kry}, vec.Vec2{X: cx + krx, Y: cy + ry}, vec.Vec2{X: cx, Y: cy + ry}).
		CubeTo(vec.Vec2{X: cx - krx, Y: cy + ry}, vec.Vec2{X: cx - rx, Y: cy + kry}, vec.Vec2{X: cx - rx, Y: cy}).
		CubeTo(vec.Vec2{X: cx - rx, Y: cy - kry}, vec.Vec2{X: cx - krx, Y: cy - ry}, vec.Vec2{X: cx, Y: cy - ry}).
		Close()
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
