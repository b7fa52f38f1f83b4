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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestDistanceToSegment(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b vec.Vec2
		want    float64
	}{
		{"perpendicular", vec.Vec2{X: 5, Y: 3}, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, 3},
		{"before start", vec.Vec2{X: -3, Y: 4}, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, 5},
		{"after end", vec.Vec2{X: 13, Y: -4}, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, 5},
		{"on segment", vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 4}, 0},
		{"degenerate", vec.Vec2{X: 4, Y: 5}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 1, Y: 1}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distanceToSegment(tt.p, tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("distanceToSegment(%v, %v, %v) = %g, want %g", tt.p, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestQuadPointAt(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 10, Y: 20}
	p2 := vec.Vec2{X: 20, Y: 0}

	tests := []struct {
		t    float64
		want vec.Vec2
	}{
		{0, p0},
		{1, p2},
		{0.5, vec.Vec2{X: 10, Y: 10}},
		{0.25, vec.Vec2{X: 5, Y: 7.5}},
	}
	for _, tt := range tests {
		got := quadPointAt(tt.t, p0, p1, p2)
		if got.Sub(tt.want).Length() > 1e-12 {
			t.Errorf("quadPointAt(%g) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestSolveQuadTForY(t *testing.T) {
	tests := []struct {
		name       string
		y          float64
		y0, y1, y2 float64
		want       float64
	}{
		{"linear", 5, 0, 5, 10, 0.5},
		{"linear clamped", 12, 0, 5, 10, 1},
		{"constant", 7, 3, 3, 3, 0},
		{"quadratic", 0.25, 0, 0, 1, 0.5},
		{"quadratic end", 1, 0, 0, 1, 1},
		{"negative discriminant", -1, 0, 0, 1, 0},
		{"no root in range", 4, 0, 0, 1, 1},
		{"tangent", 0.5, 0, 1, 0, 0.5},
		{"two roots prefer plus", 0.375, 0, 1, 0, 0.25},
		{"decreasing", 2.5, 10, 10, 0, math.Sqrt(0.75)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := solveQuadTForY(tt.y, tt.y0, tt.y1, tt.y2)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("solveQuadTForY(%g, %g, %g, %g) = %g, want %g",
					tt.y, tt.y0, tt.y1, tt.y2, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("result %g outside [0,1]", got)
			}
		})
	}
}

// TestQuadXAtYOnCurve checks that quadXAtY inverts quadPointAt for a curve
// that is monotone in y.
func TestQuadXAtYOnCurve(t *testing.T) {
	p0 := vec.Vec2{X: 24, Y: 4}
	p1 := vec.Vec2{X: 10, Y: 4}
	p2 := vec.Vec2{X: 10, Y: 16}
	for i := range 101 {
		tt := float64(i) / 100
		pt := quadPointAt(tt, p0, p1, p2)
		x := quadXAtY(pt.Y, p0, p1, p2)
		if math.Abs(x-pt.X) > 1e-6 {
			t.Errorf("t=%g: quadXAtY(%g) = %g, want %g", tt, pt.Y, x, pt.X)
		}
	}
}

func TestClampMix(t *testing.T) {
	if got := clamp(-1, 0, 1); got != 0 {
		t.Errorf("clamp(-1) = %g", got)
	}
	if got := clamp(2, 0, 1); got != 1 {
		t.Errorf("clamp(2) = %g", got)
	}
	if got := mix(10, 20, 0.25); got != 12.5 {
		t.Errorf("mix(10, 20, 0.25) = %g", got)
	}
}
