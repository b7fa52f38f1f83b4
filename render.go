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

// Package favicon rasterizes the shield icon and encodes the results as PNG
// and ICO files.
//
// The icon is defined analytically in a 100×100 design space: three nested
// shield outlines made of quadratic Bézier segments, and a stroked "V"
// glyph.  [Render] samples this field on an N×N grid per output pixel and
// averages the samples into an 8-bit RGBA buffer.  [EncodePNG] and
// [EncodeICO] turn such buffers into files.
package favicon

import (
	"errors"
	"fmt"
	"image"
	"math"
	"runtime"
	"sync"

	"seehuhn.de/go/geom/vec"
)

// DefaultSupersample is the number of samples per pixel along each axis
// used when no RenderOptions are given.
const DefaultSupersample = 3

// ErrInvalidSize is returned by [Render] for non-positive sizes or
// supersampling factors.
var ErrInvalidSize = errors.New("invalid render size")

// RenderOptions control rasterization.  The zero value of each field selects
// the default.
type RenderOptions struct {
	// Supersample is the number of sub-samples per pixel along each axis.
	Supersample int

	// Workers is the number of goroutines rendering rows in parallel.
	// The output does not depend on this value.
	Workers int

	// Design is the icon to render.  Nil means DefaultDesign().
	Design *Design
}

// Render rasterizes the icon into a size×size RGBA buffer with straight
// (non-premultiplied) alpha.  The result has length size*size*4, in
// row-major order.
func Render(size int, opts *RenderOptions) ([]byte, error) {
	ss := DefaultSupersample
	workers := runtime.NumCPU()
	d := &defaultDesign
	if opts != nil {
		if opts.Supersample != 0 {
			ss = opts.Supersample
		}
		if opts.Workers > 0 {
			workers = opts.Workers
		}
		if opts.Design != nil {
			d = opts.Design
		}
	}
	if size < 1 || ss < 1 {
		return nil, fmt.Errorf("%w: size %d, supersampling %d", ErrInvalidSize, size, ss)
	}
	workers = min(workers, size)

	pix := make([]byte, size*size*4)
	rows := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(d, pix[y*size*4:(y+1)*size*4], y, size, ss)
			}
		}()
	}
	for y := range size {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return pix, nil
}

// RenderImage is like [Render], but returns the pixels as an image.
func RenderImage(size int, opts *RenderOptions) (*image.NRGBA, error) {
	pix, err := Render(size, opts)
	if err != nil {
		return nil, err
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: 4 * size,
		Rect:   image.Rect(0, 0, size, size),
	}, nil
}

// renderRow fills row, the bytes of pixel row y, by averaging ss×ss samples
// per pixel.
func renderRow(d *Design, row []byte, y, size, ss int) {
	scale := DesignSize / float64(size)
	n := float64(ss * ss)
	for x := range size {
		var sum Sample
		for sy := range ss {
			py := (float64(y) + (float64(sy)+0.5)/float64(ss)) * scale
			for sx := range ss {
				px := (float64(x) + (float64(sx)+0.5)/float64(ss)) * scale
				c := d.ColorAt(vec.Vec2{X: px, Y: py})
				sum.R += c.R
				sum.G += c.G
				sum.B += c.B
				sum.A += c.A
			}
		}
		out := row[4*x : 4*x+4]
		out[0] = toByte(sum.R / n)
		out[1] = toByte(sum.G / n)
		out[2] = toByte(sum.B / n)
		out[3] = toByte(sum.A / n * 255)
	}
}

// toByte rounds v to the nearest integer and clamps it to [0, 255].
func toByte(v float64) byte {
	return byte(clamp(math.Round(v), 0, 255))
}
