// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr21

import (
	"bytes"
	"errors"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// maxPixels limits the image side.
const maxPixels = 32767 * 8

var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

func (c *Code) check(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	if c.pixels() > maxPixels {
		return ErrLargeImage
	}
	return nil
}

// PNG returns a PNG image displaying the code, or nil if c is
// invalid or the image too large.
//
// The image is a two colour palette image with one bit per pixel.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if err := c.check(w); err != nil {
		return err
	}
	return pngEncoder.Encode(w, c.image())
}

// EncodeBMP writes a BMP image displaying the code to w.
func (c *Code) EncodeBMP(w io.Writer) error {
	if err := c.check(w); err != nil {
		return err
	}
	return bmp.Encode(w, c.Paletted())
}

// EncodeTIFF writes a Deflate compressed TIFF image displaying the
// code to w.
func (c *Code) EncodeTIFF(w io.Writer) error {
	if err := c.check(w); err != nil {
		return err
	}
	return tiff.Encode(w, c.Paletted(),
		&tiff.Options{Compression: tiff.Deflate})
}
