// seehuhn.de/go/favicon - procedural favicon rasterizer
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

package artwork

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/favicon"
)

// WritePDF writes the design to fname as a single-page PDF of the given
// size in points.  Colours are reduced to gray levels; partially
// transparent layers are pre-blended with the background gray.
func WritePDF(fname string, d *favicon.Design, size float64) error {
	paper := &pdf.Rectangle{URx: size, URy: size}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, design space is top-left with y down
	s := size / favicon.DesignSize
	page.Transform(matrix.Matrix{s, 0, 0, -s, 0, size})

	pal := &d.Palette
	bg := (luminance(pal.BackgroundStart) + luminance(pal.BackgroundEnd)) / 2
	over := func(p favicon.Paint, base float64) float64 {
		return p.Alpha*luminance(p.Color) + (1-p.Alpha)*base
	}

	page.SetFillColor(color.DeviceGray(bg))
	drawPath(page, d.Outer.Outline())
	page.Fill()

	page.SetFillColor(color.DeviceGray(over(pal.OuterBand, bg)))
	drawPath(page, d.Outer.Outline())
	drawPath(page, d.Inner.Outline())
	page.FillEvenOdd()

	page.SetFillColor(color.DeviceGray(over(pal.MiddleBand, bg)))
	drawPath(page, d.Inner.Outline())
	drawPath(page, d.Core.Outline())
	page.FillEvenOdd()

	g := &d.Glyph
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	page.SetStrokeColor(color.DeviceGray(over(pal.Outline, bg)))
	page.SetLineWidth(g.OutlineWidth)
	drawPath(page, g.CenterLine())
	page.Stroke()

	fill := favicon.RGB{
		R: (pal.FillTop.R + pal.FillBottom.R) / 2,
		G: (pal.FillTop.G + pal.FillBottom.G) / 2,
		B: (pal.FillTop.B + pal.FillBottom.B) / 2,
	}
	page.SetStrokeColor(color.DeviceGray(luminance(fill)))
	page.SetLineWidth(g.FillWidth)
	drawPath(page, g.CenterLine())
	page.Stroke()

	return page.Close()
}

// pathBuilder is the subset of the page drawing methods used by drawPath.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath appends p to the current PDF path.  PDF has no quadratic
// segments, so these are raised to cubics.
func drawPath(page pathBuilder, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// luminance converts c to a gray level in [0, 1] using Rec. 601 weights.
func luminance(c favicon.RGB) float64 {
	return (0.299*c.R + 0.587*c.G + 0.114*c.B) / 255
}
