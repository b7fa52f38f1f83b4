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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outline returns the boundary of the shield as a closed path in design
// space.  The path starts at the left end of the top edge and runs
// counter-clockwise on screen: down the left side, up the right side, and
// back along the top edge.
//
// Since every segment of a valid template is monotone in y, the area
// enclosed by the path is exactly the set of points accepted by
// [ShieldTemplate.Contains].
func (t *ShieldTemplate) Outline() *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: t.TopX, Y: t.Top}).
		QuadTo(t.Shoulder, vec.Vec2{X: t.SideX, Y: t.SideTop}).
		LineTo(vec.Vec2{X: t.SideX, Y: t.SideBottom}).
		QuadTo(t.Waist, vec.Vec2{X: t.MidX, Y: t.Mid}).
		QuadTo(t.Tip, vec.Vec2{X: centerX, Y: t.Bottom}).
		// right half, bottom to top
		QuadTo(mirror(t.Tip), vec.Vec2{X: DesignSize - t.MidX, Y: t.Mid}).
		QuadTo(mirror(t.Waist), vec.Vec2{X: DesignSize - t.SideX, Y: t.SideBottom}).
		LineTo(vec.Vec2{X: DesignSize - t.SideX, Y: t.SideTop}).
		QuadTo(mirror(t.Shoulder), vec.Vec2{X: DesignSize - t.TopX, Y: t.Top}).
		Close()
}

// CenterLine returns the open two-segment centre line of the glyph.
// Stroking it with width FillWidth or OutlineWidth and round caps and joins
// reproduces the glyph regions.
func (g *Glyph) CenterLine() *path.Data {
	return (&path.Data{}).MoveTo(g.Left).LineTo(g.Apex).LineTo(g.Right)
}

// mirror reflects p about the vertical symmetry axis.
func mirror(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: DesignSize - p.X, Y: p.Y}
}
