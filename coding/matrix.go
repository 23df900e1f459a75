// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements the low-level layout of 21×21 codes:
// position markers and timing lines, the data bit stream, zigzag
// placement and masking.
package coding // import "github.com/unixdj/qr21/coding"

import "strings"

// Size is the number of cells on a side of a code.  The structural
// layout supports no other size.
const Size = 21

const (
	finder = 7 // position marker side
	timing = 6 // timing row and column
)

// A Matrix is a square grid of cells, each 0 (white) or 1 (black).
// Cells are packed 8 to a byte, leftmost cell in the high bit.
type Matrix struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of cells on a side
	Stride int    // number of bytes per row
}

// NewMatrix returns an all-white size×size Matrix.
func NewMatrix(size int) *Matrix {
	stride := (size + 7) >> 3
	return &Matrix{
		Bitmap: make([]byte, size*stride),
		Size:   size,
		Stride: stride,
	}
}

// Black reports whether the cell in column x, row y is black.
// Cells outside the matrix are white.
func (m *Matrix) Black(x, y int) bool {
	return 0 <= x && x < m.Size && 0 <= y && y < m.Size &&
		m.Bitmap[y*m.Stride+x>>3]&(0x80>>uint(x&7)) != 0
}

// At returns the value of the cell at row, col.
func (m *Matrix) At(row, col int) byte {
	return m.Bitmap[row*m.Stride+col>>3] >> (7 &^ col) & 1
}

// Set sets the cell at row, col to 1 if v is non-zero, to 0 otherwise.
func (m *Matrix) Set(row, col int, v byte) {
	off, bit := row*m.Stride+col>>3, byte(0x80)>>(col&7)
	if v != 0 {
		m.Bitmap[off] |= bit
	} else {
		m.Bitmap[off] &^= bit
	}
}

// Flip inverts the cell at row, col.
func (m *Matrix) Flip(row, col int) {
	m.Bitmap[row*m.Stride+col>>3] ^= byte(0x80) >> (col & 7)
}

// Clone returns a copy of m not sharing the bitmap.
func (m *Matrix) Clone() *Matrix {
	c := *m
	c.Bitmap = append([]byte(nil), m.Bitmap...)
	return &c
}

// String returns m as text, one line per row, with '#' for black
// and '.' for white cells.
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow((m.Size + 1) * m.Size)
	for row := 0; row < m.Size; row++ {
		for col := 0; col < m.Size; col++ {
			b.WriteByte(".#"[m.At(row, col)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
