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

import "seehuhn.de/go/geom/vec"

// Regions records which parts of the icon contain a design-space point.
type Regions struct {
	Outer   bool // inside the outer shield
	Inner   bool // inside the inner shield
	Core    bool // inside the core shield
	Fill    bool // inside the V fill stroke
	Outline bool // inside the V outline, but not the fill
}

// Regions classifies the design-space point p.
func (d *Design) Regions(p vec.Vec2) Regions {
	return Regions{
		Outer:   d.Outer.Contains(p),
		Inner:   d.Inner.Contains(p),
		Core:    d.Core.Contains(p),
		Fill:    d.Glyph.InFill(p),
		Outline: d.Glyph.InOutline(p),
	}
}

// Contains reports whether p lies inside the shield.  Boundary points are
// inside.
func (t *ShieldTemplate) Contains(p vec.Vec2) bool {
	if p.Y < t.Top || p.Y > t.Bottom {
		return false
	}
	left := t.LeftX(p.Y)
	return p.X >= left && p.X <= 2*centerX-left
}

// LeftX returns the x-coordinate of the left boundary at height y.
// The right boundary is at DesignSize-LeftX(y).  For y outside
// [t.Top, t.Bottom] the result is the boundary of the nearest end segment.
func (t *ShieldTemplate) LeftX(y float64) float64 {
	switch {
	case y < t.SideTop:
		return quadXAtY(y, vec.Vec2{X: t.TopX, Y: t.Top}, t.Shoulder, vec.Vec2{X: t.SideX, Y: t.SideTop})
	case y <= t.SideBottom:
		return t.SideX
	case y <= t.Mid:
		return quadXAtY(y, vec.Vec2{X: t.SideX, Y: t.SideBottom}, t.Waist, vec.Vec2{X: t.MidX, Y: t.Mid})
	default:
		return quadXAtY(y, vec.Vec2{X: t.MidX, Y: t.Mid}, t.Tip, vec.Vec2{X: centerX, Y: t.Bottom})
	}
}

// within reports whether p is at most width/2 away from either stroke of
// the V.
func (g *Glyph) within(p vec.Vec2, width float64) bool {
	d := min(distanceToSegment(p, g.Left, g.Apex), distanceToSegment(p, g.Apex, g.Right))
	return d <= width/2
}

// InFill reports whether p lies inside the V fill stroke.
func (g *Glyph) InFill(p vec.Vec2) bool {
	return g.within(p, g.FillWidth)
}

// InOutline reports whether p lies in the band between the fill stroke and
// the wider outline stroke.
func (g *Glyph) InOutline(p vec.Vec2) bool {
	return g.within(p, g.OutlineWidth) && !g.within(p, g.FillWidth)
}

// InShadow reports whether p lies in the glyph's drop shadow.
func (g *Glyph) InShadow(p vec.Vec2) bool {
	return g.InFill(p.Add(g.ShadowOffset))
}
