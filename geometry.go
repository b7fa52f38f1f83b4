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

// Numerical tolerances for the curve solver.
const (
	// linearThreshold is the magnitude of the quadratic coefficient below
	// which a y-polynomial is treated as linear.
	linearThreshold = 1e-9

	// rootSlack allows roots that miss [0,1] by floating-point noise.
	rootSlack = 1e-9
)

// distanceToSegment returns the Euclidean distance from p to the segment a–b.
// If a and b coincide, this is the distance from p to a.
func distanceToSegment(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return p.Sub(a.Add(ab.Mul(t))).Length()
}

// quadPointAt evaluates the quadratic Bézier curve p0, p1, p2 at t.
func quadPointAt(t float64, p0, p1, p2 vec.Vec2) vec.Vec2 {
	// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
	omt := 1 - t
	return p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
}

// solveQuadTForY finds the curve parameter t ∈ [0,1] at which the
// y-component of a quadratic Bézier with control values y0, y1, y2 equals y.
//
// Near-linear curves use the linear solution.  A negative discriminant is
// clamped to zero, so that values just outside the curve's y-range still map
// to the nearest tangent point.  When both roots lie in [0,1] the "+" root
// wins; when neither does, the "+" root is clamped into range.
func solveQuadTForY(y, y0, y1, y2 float64) float64 {
	a := y0 - 2*y1 + y2
	b := -2*y0 + 2*y1
	c := y0 - y

	if math.Abs(a) < linearThreshold {
		if math.Abs(b) < linearThreshold {
			return 0
		}
		return clamp(-c/b, 0, 1)
	}

	disc := max(b*b-4*a*c, 0)
	sq := math.Sqrt(disc)
	tPlus := (-b + sq) / (2 * a)
	tMinus := (-b - sq) / (2 * a)

	switch {
	case inUnit(tPlus):
		return clamp(tPlus, 0, 1)
	case inUnit(tMinus):
		return clamp(tMinus, 0, 1)
	default:
		return clamp(tPlus, 0, 1)
	}
}

// quadXAtY returns the x-coordinate of the quadratic Bézier p0, p1, p2 at
// the parameter where its y-coordinate equals y.
func quadXAtY(y float64, p0, p1, p2 vec.Vec2) float64 {
	t := solveQuadTForY(y, p0.Y, p1.Y, p2.Y)
	return quadPointAt(t, p0, p1, p2).X
}

func inUnit(t float64) bool {
	return t >= -rootSlack && t <= 1+rootSlack
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// mix linearly interpolates between a and b.
func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}
