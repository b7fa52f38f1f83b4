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
	"bytes"
	"errors"
	"fmt"
	"image"
	"testing"

	"github.com/disintegration/imaging"
	"seehuhn.de/go/geom/vec"
)

func TestRenderSize(t *testing.T) {
	for _, size := range []int{1, 2, 16, 33} {
		pix, err := Render(size, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(pix) != size*size*4 {
			t.Errorf("Render(%d) returned %d bytes, want %d", size, len(pix), size*size*4)
		}
	}
}

func TestRenderInvalid(t *testing.T) {
	tests := []struct {
		size int
		opts *RenderOptions
	}{
		{0, nil},
		{-5, nil},
		{16, &RenderOptions{Supersample: -1}},
	}
	for _, tt := range tests {
		_, err := Render(tt.size, tt.opts)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Render(%d, %+v) = %v, want ErrInvalidSize", tt.size, tt.opts, err)
		}
	}
}

// TestRenderDeterministic checks that output depends neither on the run
// nor on the number of workers.
func TestRenderDeterministic(t *testing.T) {
	for _, size := range []int{16, 48} {
		a, err := Render(size, &RenderOptions{Workers: 1})
		if err != nil {
			t.Fatal(err)
		}
		b, err := Render(size, &RenderOptions{Workers: 7})
		if err != nil {
			t.Fatal(err)
		}
		c, err := Render(size, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) || !bytes.Equal(a, c) {
			t.Errorf("size %d: renders differ", size)
		}
	}
}

// TestRenderOutsideTransparent checks that pixels whose samples all miss
// the outer shield are exactly (0, 0, 0, 0).
func TestRenderOutsideTransparent(t *testing.T) {
	d := DefaultDesign()
	const size, ss = 48, DefaultSupersample
	pix, err := Render(size, nil)
	if err != nil {
		t.Fatal(err)
	}

	scale := DesignSize / float64(size)
	outside := 0
	for y := range size {
		for x := range size {
			hit := false
			for sy := range ss {
				for sx := range ss {
					p := vec.Vec2{
						X: (float64(x) + (float64(sx)+0.5)/ss) * scale,
						Y: (float64(y) + (float64(sy)+0.5)/ss) * scale,
					}
					hit = hit || d.Outer.Contains(p)
				}
			}
			if hit {
				continue
			}
			outside++
			px := pix[4*(y*size+x) : 4*(y*size+x)+4]
			if !bytes.Equal(px, []byte{0, 0, 0, 0}) {
				t.Errorf("pixel (%d,%d) = %v, want transparent", x, y, px)
			}
		}
	}
	if outside == 0 {
		t.Error("no pixel outside the shield")
	}
}

// TestRenderAntialiased checks that every size has boundary pixels with
// intermediate alpha.
func TestRenderAntialiased(t *testing.T) {
	for _, size := range []int{16, 32, 48, 180} {
		t.Run(fmt.Sprintf("%d", size), func(t *testing.T) {
			pix, err := Render(size, nil)
			if err != nil {
				t.Fatal(err)
			}
			var partial, opaque int
			for i := 3; i < len(pix); i += 4 {
				switch a := pix[i]; {
				case a == 255:
					opaque++
				case a > 0:
					partial++
				}
			}
			if partial == 0 || opaque == 0 {
				t.Errorf("%d partial and %d opaque pixels", partial, opaque)
			}
		})
	}
}

// TestRenderNotResized checks that a larger size is rasterized from the
// shape field, not scaled up from a smaller one.
func TestRenderNotResized(t *testing.T) {
	small, err := RenderImage(16, nil)
	if err != nil {
		t.Fatal(err)
	}
	large, err := RenderImage(32, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, filter := range []struct {
		name string
		f    imaging.ResampleFilter
	}{
		{"nearest", imaging.NearestNeighbor},
		{"linear", imaging.Linear},
	} {
		resized := imaging.Resize(small, 32, 32, filter.f)
		if bytes.Equal(resized.Pix, large.Pix) {
			t.Errorf("size 32 equals %s resize of size 16", filter.name)
		}
	}

	// Upscaling by two turns every boundary pixel into four; rendering at
	// the larger size gives a thinner anti-aliased edge.
	n := countPartial(large)
	m := countPartial(imaging.Resize(small, 32, 32, imaging.NearestNeighbor))
	if n >= m {
		t.Errorf("%d partial pixels at size 32, %d in the upscaled image", n, m)
	}
}

func TestRenderImage(t *testing.T) {
	img, err := RenderImage(20, &RenderOptions{Supersample: 2})
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 20, 20) {
		t.Errorf("bounds %v", img.Bounds())
	}
	pix, _ := Render(20, &RenderOptions{Supersample: 2})
	if !bytes.Equal(img.Pix, pix) {
		t.Error("RenderImage and Render differ")
	}
	if c := img.NRGBAAt(0, 0); c.A != 0 {
		t.Errorf("corner pixel %v, want transparent", c)
	}
}

func TestRenderSingleSample(t *testing.T) {
	d := DefaultDesign()
	const size = 10
	pix, err := Render(size, &RenderOptions{Supersample: 1, Design: d})
	if err != nil {
		t.Fatal(err)
	}
	// with one sample per pixel, each pixel is the colour at its centre
	for y := range size {
		for x := range size {
			c := d.ColorAt(vec.Vec2{X: float64(x)*10 + 5, Y: float64(y)*10 + 5})
			want := []byte{toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A * 255)}
			got := pix[4*(y*size+x) : 4*(y*size+x)+4]
			if !bytes.Equal(got, want) {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestToByte(t *testing.T) {
	tests := []struct {
		in   float64
		want byte
	}{
		{-3, 0}, {0, 0}, {0.49, 0}, {0.5, 1}, {127.5, 128}, {254.6, 255}, {300, 255},
	}
	for _, tt := range tests {
		if got := toByte(tt.in); got != tt.want {
			t.Errorf("toByte(%g) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func countPartial(img *image.NRGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if a := img.Pix[i]; a > 0 && a < 255 {
			n++
		}
	}
	return n
}
