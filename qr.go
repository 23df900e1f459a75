// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr21 encodes short text as a 21×21 two-dimensional code laid
out like a QR code: three position markers, two timing lines, data
and Reed-Solomon check bytes in zigzag order and a checkerboard mask.

The layout lacks format and version information and is not readable
by QR scanners.  Text is limited to characters U+0000 to U+00FF; with
the default 10 check bytes a code holds up to 7 characters.
*/
package qr21 // import "github.com/unixdj/qr21"

import (
	"image"
	"image/color"

	"go.uber.org/zap"

	"github.com/unixdj/qr21/coding"
)

// Errors returned by Encode.
type (
	RangeError    = coding.RangeError    // character out of range
	CapacityError = coding.CapacityError // text too long
	ECCError      = coding.ECCError      // Corrector failure
	SizeError     = coding.SizeError     // unsupported size
)

// ErrECCLength reports an invalid Options.ECCLength.
var ErrECCLength = coding.ErrECCLength

// Defaults.
const (
	DefaultSize      = coding.Size
	DefaultECCLength = coding.DefaultECCLength
	DefaultScale     = 10
)

// NoECC as Options.ECCLength disables check bytes.
const NoECC = -1

// Options control encoding.  A nil *Options uses the defaults.
type Options struct {
	Size      int  // cells on a side, 0 for DefaultSize
	ECCLength int  // check bytes, 0 for DefaultECCLength, NoECC for none
	Scale     int  // image pixels per cell, 0 for DefaultScale
	Border    int  // quiet zone cells
	Truncate  bool // drop bits that do not fit instead of failing

	// Corrector generates check bytes.  If nil, coding.ReedSolomon
	// is used.  It must be safe for concurrent use with EncodeAll.
	Corrector coding.Corrector

	// Logger receives debugging output.  If nil, nothing is logged.
	Logger *zap.Logger
}

func (o *Options) encoder() (*coding.Encoder, error) {
	if o == nil {
		o = &Options{}
	}
	size := o.Size
	if size == 0 {
		size = DefaultSize
	}
	ecc := o.ECCLength
	switch {
	case ecc == 0:
		ecc = DefaultECCLength
	case ecc == NoECC:
		ecc = 0
	}
	return coding.NewEncoder(size, ecc,
		coding.WithCorrector(o.Corrector),
		coding.WithTruncate(o.Truncate),
		coding.WithLogger(o.Logger))
}

func (o *Options) code(m *coding.Matrix) *Code {
	c := &Code{Bitmap: m.Bitmap, Size: m.Size, Stride: m.Stride,
		Scale: DefaultScale}
	if o != nil {
		if o.Scale > 0 {
			c.Scale = o.Scale
		}
		c.Border = max(o.Border, 0)
	}
	return c
}

// Encode returns the code for text using o.
func (o *Options) Encode(text string) (*Code, error) {
	e, err := o.encoder()
	if err != nil {
		return nil, err
	}
	m, err := e.Encode(text)
	if err != nil {
		return nil, err
	}
	return o.code(m), nil
}

// Encode returns the code for text with default options.
func Encode(text string) (*Code, error) {
	return (*Options)(nil).Encode(text)
}

// A Code is a square pixel grid.
// It implements image.Image and direct PNG encoding.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of cells on a side
	Stride int    // number of bytes per row
	Scale  int    // number of image pixels per cell
	Border int    // quiet zone width in cells

	// Reverse swaps the colours.
	Reverse bool

	// Palette holds the background (white) and foreground (black)
	// colours.  If nil, black and white are used.
	Palette *[2]color.Color
}

// Black returns true if the cell at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// isValid reports whether the fields of c are consistent.
func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Scale > 0 && c.Border >= 0 &&
		c.Stride == (c.Size+7)>>3 && len(c.Bitmap) == c.Size*c.Stride
}

// pixels returns the image side in pixels.
func (c *Code) pixels() int { return c.Scale * (c.Size + 2*c.Border) }

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	return c.image()
}

func (c *Code) image() *codeImage {
	pal := color.Palette{color.White, color.Black}
	if c.Palette != nil {
		pal = color.Palette{c.Palette[0], c.Palette[1]}
	}
	if c.Reverse {
		pal[0], pal[1] = pal[1], pal[0]
	}
	return &codeImage{c, pal}
}

// codeImage implements image.PalettedImage
type codeImage struct {
	*Code
	pal color.Palette
}

func (c *codeImage) Bounds() image.Rectangle {
	d := c.pixels()
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if x < 0 || y < 0 {
		return 0
	}
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return 1
	}
	return 0
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.ColorIndexAt(x, y)]
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}

// Paletted returns the code drawn as an image.Paletted with two
// colours, background first.
func (c *Code) Paletted() *image.Paletted {
	img := c.image()
	p := image.NewPaletted(img.Bounds(), img.pal)
	d := c.pixels()
	for y := 0; y < d; y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+d]
		for x := range row {
			row[x] = img.ColorIndexAt(x, y)
		}
	}
	return p
}
