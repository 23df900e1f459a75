// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// IsReserved reports whether the cell at row, col of a size×size
// matrix belongs to a position marker or a timing line.  Reserved
// cells carry no data and are never masked.
//
// The three markers overlap for sizes under 14; size should be Size.
func IsReserved(size, row, col int) bool {
	far := size - finder
	if row < finder && (col < finder || col >= far) ||
		row >= far && col < finder {
		return true
	}
	return row == timing || col == timing
}

// FreeCells returns the number of cells of a size×size matrix
// that are not reserved, 280 for Size.
func FreeCells(size int) int {
	n := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !IsReserved(size, row, col) {
				n++
			}
		}
	}
	return n
}

// Position marker rows, leftmost cell in the high bit.
var finderPattern = [finder]byte{0xfe, 0x82, 0xba, 0xba, 0xba, 0x82, 0xfe}

// PaintStructure draws the position markers at the top left, top
// right and bottom left corners, and the timing lines along row and
// column 6 between the markers.  It writes only reserved cells and
// must run before Place and Mask.
func (m *Matrix) PaintStructure() {
	siz := m.Size
	far := siz - finder
	for i, v := range finderPattern {
		for j := 0; j < finder; j++ {
			b := v >> (7 - j) & 1
			m.Set(i, j, b)     // top left
			m.Set(i, far+j, b) // top right
			m.Set(far+i, j, b) // bottom left
		}
	}
	// Timing lines run from 8 to siz-9, black on even indices.
	// The cells next to the markers stay white.
	for i := finder + 1; i < far-1; i++ {
		b := byte(^i & 1)
		m.Set(timing, i, b)
		m.Set(i, timing, b)
	}
}
