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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"seehuhn.de/go/favicon"
	"seehuhn.de/go/favicon/artwork"
)

// output describes one PNG file of the favicon set.
type output struct {
	name     string
	size     int
	ico      bool // included in favicon.ico
	manifest bool // listed in site.webmanifest
}

var outputs = []output{
	{name: "favicon-16x16.png", size: 16, ico: true},
	{name: "favicon-32x32.png", size: 32, ico: true},
	{name: "favicon-48x48.png", size: 48, ico: true},
	{name: "apple-touch-icon.png", size: 180},
	{name: "android-chrome-192x192.png", size: 192, manifest: true},
	{name: "android-chrome-512x512.png", size: 512, manifest: true},
}

// pdfSize is the page size of favicon.pdf, in points.
const pdfSize = 512

// generator writes the complete favicon set into a directory.
type generator struct {
	dir   string
	opts  *favicon.RenderOptions
	name  string
	theme string
	log   zerolog.Logger
}

func (g *generator) run() error {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return err
	}

	var icons []favicon.IconImage
	for _, out := range outputs {
		pix, err := favicon.Render(out.size, g.opts)
		if err != nil {
			return fmt.Errorf("%s: %w", out.name, err)
		}
		png, err := favicon.EncodePNG(out.size, out.size, pix)
		if err != nil {
			return fmt.Errorf("%s: %w", out.name, err)
		}
		if err := g.writeFile(out.name, png); err != nil {
			return err
		}
		g.log.Info().Str("file", out.name).Int("size", out.size).Int("bytes", len(png)).Msg("wrote icon")

		if out.ico {
			icons = append(icons, favicon.IconImage{Size: out.size, PNG: png})
		}
	}

	ico, err := favicon.EncodeICO(icons)
	if err != nil {
		return fmt.Errorf("favicon.ico: %w", err)
	}
	if err := g.writeFile("favicon.ico", ico); err != nil {
		return err
	}
	g.log.Info().Str("file", "favicon.ico").Int("images", len(icons)).Int("bytes", len(ico)).Msg("wrote icon")

	buf := &bytes.Buffer{}
	if err := artwork.WriteSVG(buf, g.opts.Design); err != nil {
		return fmt.Errorf("favicon.svg: %w", err)
	}
	if err := g.writeFile("favicon.svg", buf.Bytes()); err != nil {
		return err
	}
	g.log.Info().Str("file", "favicon.svg").Int("bytes", buf.Len()).Msg("wrote artwork")

	pdfName := filepath.Join(g.dir, "favicon.pdf")
	if err := artwork.WritePDF(pdfName, g.opts.Design, pdfSize); err != nil {
		return fmt.Errorf("favicon.pdf: %w", err)
	}
	g.log.Info().Str("file", "favicon.pdf").Int("size", pdfSize).Msg("wrote artwork")

	buf.Reset()
	if err := newManifest(g.name, g.theme, outputs).Write(buf); err != nil {
		return fmt.Errorf("site.webmanifest: %w", err)
	}
	if err := g.writeFile("site.webmanifest", buf.Bytes()); err != nil {
		return err
	}
	g.log.Info().Str("file", "site.webmanifest").Int("bytes", buf.Len()).Msg("wrote manifest")

	return nil
}

func (g *generator) writeFile(name string, data []byte) error {
	fname := filepath.Join(g.dir, name)
	g.log.Debug().Str("path", fname).Msg("writing")
	return os.WriteFile(fname, data, 0o644)
}
