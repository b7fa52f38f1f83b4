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

// Package artwork renders the favicon design as vector graphics.
//
// The shapes are the outlines of the shield templates and the glyph centre
// line; colours follow the compositor's palette.  The raster output of
// seehuhn.de/go/favicon remains the reference: gradients and the glow are
// approximated with the closest native SVG constructs.
package artwork

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/favicon"
)

// WriteSVG writes the design as an SVG document with a 100×100 viewBox.
func WriteSVG(w io.Writer, d *favicon.Design) error {
	pal := &d.Palette
	g := &d.Glyph
	outer := pathString(d.Outer.Outline())
	inner := pathString(d.Inner.Outline())
	core := pathString(d.Core.Outline())
	glyph := pathString(g.CenterLine())

	// gradient vector with t = (axis·p)/DesignSize
	axis := pal.BackgroundAxis
	k := favicon.DesignSize / axis.Dot(axis)
	bgEnd := axis.Mul(k)

	// the glow keeps full strength up to 1-1/GlowStrength of its radius
	glowFlat := 0.0
	if pal.GlowStrength > 1 {
		glowFlat = 1 - 1/pal.GlowStrength
	}
	glowPeak := min(pal.GlowStrength, 1) * pal.GlowMax

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		favicon.DesignSize, favicon.DesignSize, favicon.DesignSize, favicon.DesignSize)

	buf.WriteString("<defs>\n")
	fmt.Fprintf(buf, `<linearGradient id="bg" gradientUnits="userSpaceOnUse" x1="0" y1="0" x2="%s" y2="%s">`+"\n",
		num(bgEnd.X), num(bgEnd.Y))
	fmt.Fprintf(buf, `<stop offset="0" stop-color="%s"/>`+"\n", hex(pal.BackgroundStart))
	fmt.Fprintf(buf, `<stop offset="1" stop-color="%s"/>`+"\n", hex(pal.BackgroundEnd))
	buf.WriteString("</linearGradient>\n")
	fmt.Fprintf(buf, `<radialGradient id="glow" gradientUnits="userSpaceOnUse" cx="0" cy="0" r="1" gradientTransform="translate(%s %s) scale(%s %s)">`+"\n",
		num(pal.GlowCenter.X), num(pal.GlowCenter.Y), num(pal.GlowRadius.X), num(pal.GlowRadius.Y))
	fmt.Fprintf(buf, `<stop offset="0" stop-color="%s" stop-opacity="%s"/>`+"\n", hex(pal.Glow), num(glowPeak))
	fmt.Fprintf(buf, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`+"\n", num(glowFlat), hex(pal.Glow), num(glowPeak))
	fmt.Fprintf(buf, `<stop offset="1" stop-color="%s" stop-opacity="0"/>`+"\n", hex(pal.Glow))
	buf.WriteString("</radialGradient>\n")
	fmt.Fprintf(buf, `<linearGradient id="fill" gradientUnits="userSpaceOnUse" x1="0" y1="%s" x2="0" y2="%s">`+"\n",
		num(pal.FillStart), num(pal.FillStart+pal.FillSpan))
	fmt.Fprintf(buf, `<stop offset="0" stop-color="%s"/>`+"\n", hex(pal.FillTop))
	fmt.Fprintf(buf, `<stop offset="1" stop-color="%s"/>`+"\n", hex(pal.FillBottom))
	buf.WriteString("</linearGradient>\n")
	buf.WriteString("</defs>\n")

	// background
	fmt.Fprintf(buf, `<path d="%s" fill="%s"/>`+"\n", outer, hex(pal.BackgroundStart))
	fmt.Fprintf(buf, `<path d="%s" fill="url(#bg)"/>`+"\n", outer)
	fmt.Fprintf(buf, `<path d="%s" fill="url(#glow)"/>`+"\n", outer)

	// bands
	fmt.Fprintf(buf, `<path d="%s %s" fill-rule="evenodd" fill="%s" fill-opacity="%s"/>`+"\n",
		outer, inner, hex(pal.OuterBand.Color), num(pal.OuterBand.Alpha))
	fmt.Fprintf(buf, `<path d="%s %s" fill-rule="evenodd" fill="%s" fill-opacity="%s"/>`+"\n",
		inner, core, hex(pal.MiddleBand.Color), num(pal.MiddleBand.Alpha))

	// glyph
	stroke := `<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"%s/>` + "\n"
	shadow := g.ShadowOffset.Mul(-1)
	fmt.Fprintf(buf, stroke, glyph, hex(pal.Shadow.Color), num(g.FillWidth),
		fmt.Sprintf(` stroke-opacity="%s" transform="translate(%s %s)"`, num(pal.Shadow.Alpha), num(shadow.X), num(shadow.Y)))
	fmt.Fprintf(buf, stroke, glyph, hex(pal.Outline.Color), num(g.OutlineWidth),
		fmt.Sprintf(` stroke-opacity="%s"`, num(pal.Outline.Alpha)))
	fmt.Fprintf(buf, stroke, glyph, "url(#fill)", num(g.FillWidth), "")

	buf.WriteString("</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// pathString converts p to SVG path data.
func pathString(p *path.Data) string {
	var parts []string
	idx := 0
	point := func(pts ...vec.Vec2) string {
		var s []string
		for _, pt := range pts {
			s = append(s, num(pt.X), num(pt.Y))
		}
		return strings.Join(s, " ")
	}
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			parts = append(parts, "M"+point(p.Coords[idx]))
			idx++
		case path.CmdLineTo:
			parts = append(parts, "L"+point(p.Coords[idx]))
			idx++
		case path.CmdQuadTo:
			parts = append(parts, "Q"+point(p.Coords[idx:idx+2]...))
			idx += 2
		case path.CmdCubeTo:
			parts = append(parts, "C"+point(p.Coords[idx:idx+3]...))
			idx += 3
		case path.CmdClose:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

func num(x float64) string {
	return strconv.FormatFloat(math.Round(x*1e4)/1e4, 'f', -1, 64)
}

func hex(c favicon.RGB) string {
	b := func(v float64) uint8 {
		return uint8(min(max(math.Round(v), 0), 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", b(c.R), b(c.G), b(c.B))
}
