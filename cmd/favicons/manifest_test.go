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
	"testing"

	"github.com/google/go-cmp/cmp"
)

const wantManifest = `{
  "name": "Vibepit",
  "short_name": "Vibepit",
  "icons": [
    {
      "src": "./android-chrome-192x192.png",
      "sizes": "192x192",
      "type": "image/png"
    },
    {
      "src": "./android-chrome-512x512.png",
      "sizes": "512x512",
      "type": "image/png"
    }
  ],
  "theme_color": "#0d1829",
  "background_color": "#0d1829",
  "display": "standalone"
}
`

func TestManifest(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := newManifest("Vibepit", "#0d1829", outputs).Write(buf); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(wantManifest, buf.String()); d != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", d)
	}
}

func TestManifestNoIcons(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := newManifest("x", "#000000", nil).Write(buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"icons": []`)) {
		t.Errorf("icons should be an empty list:\n%s", buf.String())
	}
}
