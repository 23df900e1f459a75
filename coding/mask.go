// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A MaskFunc reports whether a mask inverts the cell at row, col.
type MaskFunc func(row, col int) bool

// Checkerboard selects cells where row+col is even.
//
//	▄▀▄▀▄▀▄▀▄▀▄▀
//	▄▀▄▀▄▀▄▀▄▀▄▀
func Checkerboard(row, col int) bool { return (row+col)&1 == 0 }

// Mask inverts the free cells selected by f.  Reserved cells are
// left alone, so masking twice with the same f restores m.
func (m *Matrix) Mask(f MaskFunc) {
	for row := 0; row < m.Size; row++ {
		for col := 0; col < m.Size; col++ {
			if f(row, col) && !IsReserved(m.Size, row, col) {
				m.Flip(row, col)
			}
		}
	}
}
