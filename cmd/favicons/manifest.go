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
	"encoding/json"
	"fmt"
	"io"
)

// manifest is the web app manifest written next to the icons.
type manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Icons           []manifestIcon `json:"icons"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Display         string         `json:"display"`
}

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

func newManifest(name, theme string, icons []output) *manifest {
	m := &manifest{
		Name:            name,
		ShortName:       name,
		Icons:           []manifestIcon{},
		ThemeColor:      theme,
		BackgroundColor: theme,
		Display:         "standalone",
	}
	for _, icon := range icons {
		if !icon.manifest {
			continue
		}
		m.Icons = append(m.Icons, manifestIcon{
			Src:   "./" + icon.name,
			Sizes: fmt.Sprintf("%dx%d", icon.size, icon.size),
			Type:  "image/png",
		})
	}
	return m
}

// Write writes m as JSON indented by two spaces, followed by a newline.
func (m *manifest) Write(w io.Writer) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
