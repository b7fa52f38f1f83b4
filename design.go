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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// DesignSize is the width and height of the design space.  All shape tests
// use coordinates in [0, DesignSize]×[0, DesignSize], with y pointing down.
const DesignSize = 100

// centerX is the vertical symmetry axis of the shields.
const centerX = DesignSize / 2

// ErrInvalidDesign is returned by [Design.Validate] for tables that the
// shape field cannot evaluate reliably.
var ErrInvalidDesign = errors.New("invalid design")

// RGB is a colour with channels in the range [0, 255].
type RGB struct {
	R, G, B float64
}

// Paint is a flat colour applied with a fixed opacity.
type Paint struct {
	Color RGB     `json:"color"`
	Alpha float64 `json:"alpha"`
}

// ShieldTemplate describes the left half of a shield outline.  The right
// half is the mirror image about x = DesignSize/2.
//
// Going down from the top, the left boundary consists of
//
//   - a quadratic from (TopX, Top) via Shoulder to (SideX, SideTop),
//   - a vertical line from SideTop to SideBottom,
//   - a quadratic from (SideX, SideBottom) via Waist to (MidX, Mid),
//   - a quadratic from (MidX, Mid) via Tip to the bottom point
//     (DesignSize/2, Bottom).
type ShieldTemplate struct {
	Top        float64  `json:"top"`
	TopX       float64  `json:"top_x"`
	Shoulder   vec.Vec2 `json:"shoulder"`
	SideTop    float64  `json:"side_top"`
	SideX      float64  `json:"side_x"`
	SideBottom float64  `json:"side_bottom"`
	Waist      vec.Vec2 `json:"waist"`
	Mid        float64  `json:"mid"`
	MidX       float64  `json:"mid_x"`
	Tip        vec.Vec2 `json:"tip"`
	Bottom     float64  `json:"bottom"`
}

// Glyph is the stroked "V": two segments meeting at Apex.
type Glyph struct {
	Left  vec.Vec2 `json:"left"`
	Apex  vec.Vec2 `json:"apex"`
	Right vec.Vec2 `json:"right"`

	FillWidth    float64 `json:"fill_width"`    // full stroke width of the fill
	OutlineWidth float64 `json:"outline_width"` // full stroke width including the outline

	// ShadowOffset is added to a sample point before the fill test for the
	// drop shadow.
	ShadowOffset vec.Vec2 `json:"shadow_offset"`
}

// Palette holds the colours and blend coefficients of the compositor.
type Palette struct {
	// The background is a linear gradient along BackgroundAxis, from
	// BackgroundStart at the origin to BackgroundEnd at t = 1.
	BackgroundStart RGB      `json:"background_start"`
	BackgroundEnd   RGB      `json:"background_end"`
	BackgroundAxis  vec.Vec2 `json:"background_axis"`

	// The glow brightens the background towards Glow inside an ellipse
	// with centre GlowCenter and radii GlowRadius.
	Glow         RGB      `json:"glow"`
	GlowCenter   vec.Vec2 `json:"glow_center"`
	GlowRadius   vec.Vec2 `json:"glow_radius"`
	GlowStrength float64  `json:"glow_strength"`
	GlowMax      float64  `json:"glow_max"`

	OuterBand  Paint `json:"outer_band"`
	MiddleBand Paint `json:"middle_band"`
	Shadow     Paint `json:"shadow"`
	Outline    Paint `json:"outline"`

	// The glyph fill is a vertical gradient from FillTop at y = FillStart
	// to FillBottom at y = FillStart+FillSpan.
	FillTop    RGB     `json:"fill_top"`
	FillBottom RGB     `json:"fill_bottom"`
	FillStart  float64 `json:"fill_start"`
	FillSpan   float64 `json:"fill_span"`
}

// Design is the complete set of constants for the icon.
// Values are read-only once rendering has started.
type Design struct {
	Outer   ShieldTemplate `json:"outer"`
	Inner   ShieldTemplate `json:"inner"`
	Core    ShieldTemplate `json:"core"`
	Glyph   Glyph          `json:"glyph"`
	Palette Palette        `json:"palette"`
}

// DefaultDesign returns a copy of the built-in icon design.
func DefaultDesign() *Design {
	d := defaultDesign
	return &d
}

var defaultDesign = Design{
	Outer: ShieldTemplate{
		Top:        2,
		TopX:       20,
		Shoulder:   vec.Vec2{X: 8, Y: 2},
		SideTop:    14,
		SideX:      8,
		SideBottom: 44,
		Waist:      vec.Vec2{X: 8, Y: 60},
		Mid:        76,
		MidX:       26,
		Tip:        vec.Vec2{X: 36.8, Y: 85.6},
		Bottom:     98,
	},
	Inner: ShieldTemplate{
		Top:        5,
		TopX:       23,
		Shoulder:   vec.Vec2{X: 12, Y: 5},
		SideTop:    16,
		SideX:      12,
		SideBottom: 45,
		Waist:      vec.Vec2{X: 12, Y: 60},
		Mid:        74,
		MidX:       28,
		Tip:        vec.Vec2{X: 37.6, Y: 82.4},
		Bottom:     92,
	},
	Core: ShieldTemplate{
		Top:        8,
		TopX:       26,
		Shoulder:   vec.Vec2{X: 16, Y: 8},
		SideTop:    18,
		SideX:      16,
		SideBottom: 46,
		Waist:      vec.Vec2{X: 16, Y: 59},
		Mid:        72,
		MidX:       30,
		Tip:        vec.Vec2{X: 38.4, Y: 79.8},
		Bottom:     86,
	},
	Glyph: Glyph{
		Left:         vec.Vec2{X: 30, Y: 26},
		Apex:         vec.Vec2{X: 50, Y: 70},
		Right:        vec.Vec2{X: 70, Y: 26},
		FillWidth:    11,
		OutlineWidth: 15,
		ShadowOffset: vec.Vec2{X: -1.5, Y: -1.6},
	},
	Palette: Palette{
		BackgroundStart: RGB{27, 51, 85},
		BackgroundEnd:   RGB{13, 24, 41},
		BackgroundAxis:  vec.Vec2{X: 0.62, Y: 0.38},

		Glow:         RGB{61, 214, 198},
		GlowCenter:   vec.Vec2{X: 34, Y: 24},
		GlowRadius:   vec.Vec2{X: 46, Y: 40},
		GlowStrength: 1.35,
		GlowMax:      0.18,

		OuterBand:  Paint{Color: RGB{61, 214, 198}, Alpha: 0.95},
		MiddleBand: Paint{Color: RGB{8, 15, 28}, Alpha: 0.90},
		Shadow:     Paint{Color: RGB{2, 6, 15}, Alpha: 0.42},
		Outline:    Paint{Color: RGB{5, 10, 20}, Alpha: 0.96},

		FillTop:    RGB{124, 242, 216},
		FillBottom: RGB{43, 156, 240},
		FillStart:  24,
		FillSpan:   50,
	},
}

// Validate checks that every curve segment of the shield templates is
// monotone in y and that the thresholds are ordered.  For such tables the
// curve solver never meets a genuinely complex root, so its discriminant
// clamp only absorbs rounding noise.
//
// Nesting of the three shields is not checked.
func (d *Design) Validate() error {
	for _, layer := range []struct {
		name string
		t    *ShieldTemplate
	}{
		{"outer", &d.Outer},
		{"inner", &d.Inner},
		{"core", &d.Core},
	} {
		if err := layer.t.validate(); err != nil {
			return fmt.Errorf("%w: %s shield: %w", ErrInvalidDesign, layer.name, err)
		}
	}

	g := &d.Glyph
	if !(g.FillWidth > 0 && g.OutlineWidth > g.FillWidth) {
		return fmt.Errorf("%w: glyph widths %g/%g, need 0 < fill < outline",
			ErrInvalidDesign, g.FillWidth, g.OutlineWidth)
	}
	if d.Palette.FillSpan <= 0 {
		return fmt.Errorf("%w: fill gradient span %g must be positive",
			ErrInvalidDesign, d.Palette.FillSpan)
	}
	return nil
}

func (t *ShieldTemplate) validate() error {
	if !(t.Top < t.SideTop && t.SideTop <= t.SideBottom &&
		t.SideBottom < t.Mid && t.Mid < t.Bottom) {
		return fmt.Errorf("thresholds not increasing: %g, %g, %g, %g, %g",
			t.Top, t.SideTop, t.SideBottom, t.Mid, t.Bottom)
	}
	if t.Top < 0 || t.Bottom > DesignSize {
		return fmt.Errorf("vertical range [%g, %g] outside design space", t.Top, t.Bottom)
	}
	checks := []struct {
		name   string
		c      float64
		y0, y2 float64
	}{
		{"shoulder", t.Shoulder.Y, t.Top, t.SideTop},
		{"waist", t.Waist.Y, t.SideBottom, t.Mid},
		{"tip", t.Tip.Y, t.Mid, t.Bottom},
	}
	for _, c := range checks {
		if c.c < c.y0 || c.c > c.y2 {
			return fmt.Errorf("%s control y=%g outside [%g, %g]", c.name, c.c, c.y0, c.y2)
		}
	}
	for _, x := range []float64{t.TopX, t.SideX, t.MidX, t.Shoulder.X, t.Waist.X, t.Tip.X} {
		if x < 0 || x > centerX {
			return fmt.Errorf("x=%g outside left half [0, %d]", x, centerX)
		}
	}
	return nil
}
