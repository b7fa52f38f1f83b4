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
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ErrSizeMismatch is returned by [EncodePNG] if the pixel buffer does not
// hold exactly width×height RGBA pixels.
var ErrSizeMismatch = errors.New("pixel buffer size mismatch")

// pngSignature starts every PNG file.
var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// IHDR constants.  This encoder always writes 8-bit truecolour with alpha,
// without interlacing.
const (
	pngBitDepth     = 8
	pngColorRGBA    = 6
	pngCompression  = 0
	pngFilterMethod = 0
	pngInterlace    = 0

	pngFilterNone = 0
)

// EncodePNG encodes a row-major RGBA8 buffer with straight alpha as a PNG
// file.
func EncodePNG(width, height int, pix []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, width, height, pix); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNG writes the PNG encoding of pix to w.  The file consists of the
// signature, IHDR, a single IDAT chunk and IEND.
func WritePNG(w io.Writer, width, height int, pix []byte) error {
	if width < 0 || height < 0 || len(pix) != width*height*4 {
		return fmt.Errorf("%w: %d bytes for %dx%d RGBA", ErrSizeMismatch, len(pix), width, height)
	}

	idat, err := compressScanlines(width, height, pix)
	if err != nil {
		return err
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = pngBitDepth
	ihdr[9] = pngColorRGBA
	ihdr[10] = pngCompression
	ihdr[11] = pngFilterMethod
	ihdr[12] = pngInterlace

	if _, err := w.Write(pngSignature); err != nil {
		return err
	}
	if err := writeChunk(w, "IHDR", ihdr[:]); err != nil {
		return err
	}
	if err := writeChunk(w, "IDAT", idat); err != nil {
		return err
	}
	return writeChunk(w, "IEND", nil)
}

// compressScanlines prefixes every row with filter type 0 and deflates the
// result at the best compression level.
func compressScanlines(width, height int, pix []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	stride := 4 * width
	filter := []byte{pngFilterNone}
	for y := range height {
		if _, err := zw.Write(filter); err != nil {
			return nil, err
		}
		if _, err := zw.Write(pix[y*stride : (y+1)*stride]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeChunk writes length, tag, data and the CRC-32 of tag and data.
func writeChunk(w io.Writer, tag string, data []byte) error {
	var head [8]byte
	binary.BigEndian.PutUint32(head[:4], uint32(len(data)))
	copy(head[4:], tag)

	crc := crc32.NewIEEE()
	crc.Write(head[4:])
	crc.Write(data)
	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], crc.Sum32())

	for _, b := range [][]byte{head[:], data, tail[:]} {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}
