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

// Command cellref writes every test case twice: as a one-page PDF, which
// can be rendered with an independent renderer such as Ghostscript, and
// as a PNG produced by this module. Comparing the two shows rasterization
// errors.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/cells"
	"seehuhn.de/go/cells/testcases"
)

func main() {
	outDir := flag.String("out", "testdata/reference", "output directory")
	verbose := flag.Bool("v", false, "log cell statistics")
	flag.Parse()

	if *verbose {
		cells.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(*outDir); err != nil {
		fmt.Fprintln(os.Stderr, "cellref:", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	f := cells.NewFiller(rect.Rect{}, nil)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := writePDF(tc, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			pngPath := filepath.Join(outDir, name+"_cells.png")
			if err := writePNG(f, tc, pngPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

func writePDF(tc testcases.TestCase, pdfPath string) error {
	// page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that gray levels equal coverage
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}

	page.SetFillColor(color.DeviceGray(1))

	var current vec.Vec2
	coordIdx := 0
	for _, cmd := range tc.Path.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = tc.Path.Coords[coordIdx]
			page.MoveTo(current.X, current.Y)
			coordIdx++
		case path.CmdLineTo:
			current = tc.Path.Coords[coordIdx]
			page.LineTo(current.X, current.Y)
			coordIdx++
		case path.CmdQuadTo:
			// PDF has no quadratic curves; raise the degree
			c, p := tc.Path.Coords[coordIdx], tc.Path.Coords[coordIdx+1]
			c1 := current.Add(c.Sub(current).Mul(2.0 / 3))
			c2 := p.Add(c.Sub(p).Mul(2.0 / 3))
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			current = p
			coordIdx += 2
		case path.CmdCubeTo:
			c1, c2, p := tc.Path.Coords[coordIdx], tc.Path.Coords[coordIdx+1], tc.Path.Coords[coordIdx+2]
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			current = p
			coordIdx += 3
		case path.CmdClose:
			page.ClosePath()
		}
	}

	if tc.Rule == testcases.EvenOdd {
		page.FillEvenOdd()
	} else {
		page.Fill()
	}

	return page.Close()
}

func writePNG(f *cells.Filler, tc testcases.TestCase, pngPath string) (err error) {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))

	f.Reset(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) {
		f.CTM = tc.CTM
	}
	emit := func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride:]
		for i, c := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(c*256))))
		}
	}
	f.Fill(tc.Path, cells.FillRule(tc.Rule), emit)
	if n := f.Builder().Dropped(); n > 0 {
		slog.Warn("output truncated", "file", pngPath, "dropped", n)
	}

	out, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(out, img)
}
