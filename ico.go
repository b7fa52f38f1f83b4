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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrTooManyImages is returned by [EncodeICO] if the number of images does
// not fit the 16-bit count field of the ICO header.
var ErrTooManyImages = errors.New("too many images for ICO")

// IconImage is one entry of an ICO file.
type IconImage struct {
	// Size is the declared width and height in pixels.
	Size int

	// PNG is the complete PNG file stored for this entry.  The contents are
	// not inspected.
	PNG []byte
}

const (
	icoTypeIcon   = 1
	icoHeaderSize = 6
	icoEntrySize  = 16
)

type icoHeader struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type icoEntry struct {
	Width      uint8 // 0 means 256
	Height     uint8 // 0 means 256
	ColorCount uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	Size       uint32
	Offset     uint32
}

// EncodeICO packs PNG-compressed images into an ICO file.  Entries keep
// the given order.
func EncodeICO(images []IconImage) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteICO(&buf, images); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteICO writes the ICO encoding of images to w: header, one directory
// entry per image, then the image data in directory order.
func WriteICO(w io.Writer, images []IconImage) error {
	n := len(images)
	if n > math.MaxUint16 {
		return fmt.Errorf("%w: %d", ErrTooManyImages, n)
	}

	err := binary.Write(w, binary.LittleEndian, icoHeader{Type: icoTypeIcon, Count: uint16(n)})
	if err != nil {
		return err
	}

	offset := uint32(icoHeaderSize + icoEntrySize*n)
	for _, img := range images {
		dim := icoDimension(img.Size)
		entry := icoEntry{
			Width:    dim,
			Height:   dim,
			Planes:   1,
			BitCount: 32,
			Size:     uint32(len(img.PNG)),
			Offset:   offset,
		}
		if err := binary.Write(w, binary.LittleEndian, entry); err != nil {
			return err
		}
		offset += entry.Size
	}

	for _, img := range images {
		if _, err := w.Write(img.PNG); err != nil {
			return err
		}
	}
	return nil
}

// icoDimension converts a pixel size to the one-byte directory field.
func icoDimension(size int) uint8 {
	if size >= 256 {
		return 0
	}
	return uint8(size)
}
