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

// Command favicons writes the complete favicon set for a web site: PNG
// icons in the usual sizes, a multi-image favicon.ico, SVG and PDF
// versions of the artwork, and a web app manifest.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"seehuhn.de/go/favicon"
)

var (
	outDir      = flag.String("out", ".", "output directory")
	supersample = flag.Int("ss", favicon.DefaultSupersample, "samples per pixel along each axis")
	workers     = flag.Int("workers", runtime.NumCPU(), "number of rendering goroutines")
	designFile  = flag.String("design", "", "JSON file overriding the built-in design")
	verbose     = flag.Bool("v", false, "enable debug logging")
	siteName    = flag.String("name", "Vibepit", "application name for the web manifest")
	themeColor  = flag.String("theme", "#0d1829", "theme and background colour for the web manifest")
)

func main() {
	flag.Parse()

	log := newLogger(*verbose)

	d, err := loadDesign(*designFile)
	if err != nil {
		log.Fatal().Err(err).Str("design", *designFile).Msg("cannot load design")
	}

	g := &generator{
		dir: *outDir,
		opts: &favicon.RenderOptions{
			Supersample: *supersample,
			Workers:     *workers,
			Design:      d,
		},
		name:  *siteName,
		theme: *themeColor,
		log:   log,
	}
	if err := g.run(); err != nil {
		log.Fatal().Err(err).Msg("generation failed")
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

// loadDesign returns the built-in design, with the fields present in the
// JSON file fname (if any) replaced.
func loadDesign(fname string) (*favicon.Design, error) {
	d := favicon.DefaultDesign()
	if fname != "" {
		data, err := os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, d); err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
