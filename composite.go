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

package favicon

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Sample is a straight-alpha colour: R, G, B in [0, 255] and A in [0, 1].
type Sample struct {
	R, G, B, A float64
}

// ColorAt computes the colour of the icon at the design-space point p.
//
// Layers, bottom to top: background gradient with glow, outer or middle
// band, glyph shadow, glyph outline, glyph fill.  Points outside the outer
// shield are fully transparent.
func (d *Design) ColorAt(p vec.Vec2) Sample {
	if !d.Outer.Contains(p) {
		return Sample{}
	}
	pal := &d.Palette

	c := d.Background(p)
	if !d.Inner.Contains(p) {
		c = c.over(pal.OuterBand.Color, pal.OuterBand.Alpha)
	} else if !d.Core.Contains(p) {
		c = c.over(pal.MiddleBand.Color, pal.MiddleBand.Alpha)
	}

	g := &d.Glyph
	if g.InShadow(p) {
		c = c.over(pal.Shadow.Color, pal.Shadow.Alpha)
	}
	if g.InOutline(p) {
		c = c.over(pal.Outline.Color, pal.Outline.Alpha)
	}
	if g.InFill(p) {
		t := clamp((p.Y-pal.FillStart)/pal.FillSpan, 0, 1)
		c = c.over(mixRGB(pal.FillTop, pal.FillBottom, t), 1)
	}
	return c
}

// Background returns the opaque background colour at p: the diagonal
// gradient brightened by the glow.
func (d *Design) Background(p vec.Vec2) Sample {
	pal := &d.Palette

	t := clamp((pal.BackgroundAxis.X*p.X+pal.BackgroundAxis.Y*p.Y)/DesignSize, 0, 1)
	c := mixRGB(pal.BackgroundStart, pal.BackgroundEnd, t)

	dx := (p.X - pal.GlowCenter.X) / pal.GlowRadius.X
	dy := (p.Y - pal.GlowCenter.Y) / pal.GlowRadius.Y
	glow := clamp((1-math.Hypot(dx, dy))*pal.GlowStrength, 0, 1) * pal.GlowMax
	c = mixRGB(c, pal.Glow, glow)

	return Sample{R: c.R, G: c.G, B: c.B, A: 1}
}

// over composites the colour top with opacity alpha over s.
func (s Sample) over(top RGB, alpha float64) Sample {
	outA := alpha + s.A*(1-alpha)
	if outA <= 0 {
		return Sample{}
	}
	wBase := s.A * (1 - alpha)
	return Sample{
		R: (top.R*alpha + s.R*wBase) / outA,
		G: (top.G*alpha + s.G*wBase) / outA,
		B: (top.B*alpha + s.B*wBase) / outA,
		A: outA,
	}
}

func mixRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: mix(a.R, b.R, t),
		G: mix(a.G, b.G, t),
		B: mix(a.B, b.B, t),
	}
}
