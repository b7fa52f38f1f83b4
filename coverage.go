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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Silhouette returns the exact area coverage of the shield at the given
// pixel size, as a size×size alpha mask.  Curves are flattened to within
// a tenth of a pixel.
//
// Unlike [Render], which averages point samples, this computes the area of
// the outline polygon inside each pixel.
func (t *ShieldTemplate) Silhouette(size int) []byte {
	if size < 1 {
		return nil
	}
	s := float64(size) / DesignSize
	m := newCoverageMask(size, size, matrix.Scale(s, s))
	m.fill(t.Outline())

	out := make([]byte, size*size)
	for y := range size {
		row := m.integrateRow(y)
		for x, c := range row {
			out[y*size+x] = byte(math.Round(float64(c) * 255))
		}
	}
	return out
}

// Tolerances of the coverage mask.
const (
	// maskFlatness is the curve flattening tolerance in device pixels.
	maskFlatness = 0.1

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute coverage.
	horizontalEdgeThreshold = 1e-10
)

// coverageMask accumulates the signed area of a path, using the nonzero
// winding rule, over a w×h pixel grid.
//
// For each pixel two values are stored:
//
//	cover: signed vertical extent of edges crossing the pixel
//	area:  cover weighted by the part of the pixel right of the crossing
//
// Coverage of a pixel is the running sum of cover over all pixels to its
// left, plus its own area.
type coverageMask struct {
	w, h  int
	ctm   matrix.Matrix
	cover []float32
	area  []float32
}

func newCoverageMask(w, h int, ctm matrix.Matrix) *coverageMask {
	return &coverageMask{
		w:     w,
		h:     h,
		ctm:   ctm,
		cover: make([]float32, w*h),
		area:  make([]float32, w*h),
	}
}

// fill adds all edges of p.  Open subpaths are closed implicitly.
func (m *coverageMask) fill(p *path.Data) {
	var current, start vec.Vec2
	idx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				m.addEdge(current, start)
			}
			current = p.Coords[idx]
			start = current
			idx++
		case path.CmdLineTo:
			m.addEdge(current, p.Coords[idx])
			current = p.Coords[idx]
			idx++
		case path.CmdQuadTo:
			m.addQuadratic(current, p.Coords[idx], p.Coords[idx+1])
			current = p.Coords[idx+1]
			idx += 2
		case path.CmdCubeTo:
			// not produced by Outline; approximate by the chord
			m.addEdge(current, p.Coords[idx+2])
			current = p.Coords[idx+2]
			idx += 3
		case path.CmdClose:
			if current != start {
				m.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		m.addEdge(current, start)
	}
}

func (m *coverageMask) toDevice(p vec.Vec2) vec.Vec2 {
	c := m.ctm
	return vec.Vec2{
		X: c[0]*p.X + c[2]*p.Y + c[4],
		Y: c[1]*p.X + c[3]*p.Y + c[5],
	}
}

// addQuadratic flattens the quadratic Bézier p0, p1, p2, given in user
// space, into line segments.
func (m *coverageMask) addQuadratic(p0, p1, p2 vec.Vec2) {
	d0, d1, d2 := m.toDevice(p0), m.toDevice(p1), m.toDevice(p2)

	// The distance between curve and chord is bounded by |P0 - 2P1 + P2|/4.
	e := d0.Sub(d1.Mul(2)).Add(d2).Mul(0.25).Length()
	n := 1
	if e > maskFlatness {
		n = int(math.Ceil(math.Sqrt(e / maskFlatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		pt := quadPointAt(float64(i)/float64(n), p0, p1, p2)
		m.addEdge(prev, pt)
		prev = pt
	}
}

// addEdge accumulates the edge a→b, given in user space.
func (m *coverageMask) addEdge(a, b vec.Vec2) {
	a, b = m.toDevice(a), m.toDevice(b)

	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	sign := float32(1)
	if dy < 0 {
		sign = -1
		a, b = b, a
	}
	dxdy := (b.X - a.X) / (b.Y - a.Y)

	rowMin := max(int(math.Floor(a.Y)), 0)
	rowMax := min(int(math.Ceil(b.Y)), m.h)
	for row := rowMin; row < rowMax; row++ {
		yTop := max(a.Y, float64(row))
		yBot := min(b.Y, float64(row+1))
		if yBot <= yTop {
			continue
		}
		xTop := a.X + dxdy*(yTop-a.Y)
		xBot := a.X + dxdy*(yBot-a.Y)
		m.addSpan(row, xTop, yTop, xBot, yBot, sign)
	}
}

// addSpan accumulates the part of an edge inside one scanline, splitting it
// where it crosses pixel column boundaries.
func (m *coverageMask) addSpan(row int, x0, y0, x1, y1 float64, sign float32) {
	base := row * m.w

	add := func(ya, yb float64) {
		if yb <= ya {
			return
		}
		c := sign * float32(yb-ya)
		xMid := x0 + (x1-x0)*((ya+yb)/2-y0)/(y1-y0)
		pix := int(math.Floor(xMid))
		switch {
		case pix < 0:
			m.cover[base] += c
			m.area[base] += c
		case pix < m.w:
			m.cover[base+pix] += c
			m.area[base+pix] += c * float32(1-(xMid-float64(pix)))
		}
	}

	colA := int(math.Floor(x0))
	colB := int(math.Floor(x1))
	if colA == colB {
		add(y0, y1)
		return
	}

	// walk the column boundaries from x0 towards x1
	step := 1
	first := colA + 1
	if colB < colA {
		step = -1
		first = colA
	}
	ya := y0
	for x := first; x != colB+max(step, 0); x += step {
		yb := y0 + (y1-y0)*(float64(x)-x0)/(x1-x0)
		add(ya, yb)
		ya = yb
	}
	add(ya, y1)
}

// integrateRow converts the accumulated values of one row into coverage in
// [0, 1].  The cover buffer of the row is overwritten.
func (m *coverageMask) integrateRow(y int) []float32 {
	cover := m.cover[y*m.w : (y+1)*m.w]
	area := m.area[y*m.w : (y+1)*m.w]
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
	return cover
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
