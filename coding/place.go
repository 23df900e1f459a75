// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "iter"

// Scan returns the zigzag scan order of a size×size matrix as a
// sequence of row, column pairs.  Reserved cells are included.
//
// Every other column is scanned, from size-1 down to 1.  Column 6
// holds the vertical timing line and is replaced with column 5.
// Rows run bottom to top in columns where col%4 == 1, top to bottom
// in the others.
func Scan(size int) iter.Seq2[int, int] {
	return func(yield func(row, col int) bool) {
		for x := size - 1; x > 0; x -= 2 {
			col := x
			if col == timing {
				col--
			}
			if col&3 == 1 {
				for row := size - 1; row >= 0; row-- {
					if !yield(row, col) {
						return
					}
				}
			} else {
				for row := 0; row < size; row++ {
					if !yield(row, col) {
						return
					}
				}
			}
		}
	}
}

// Capacity returns the number of cells Place can write in a
// size×size matrix.  For Size it is 137: 14 cells in each of
// columns 20, 18, 16 and 14, 20 in 12, 10 and 8, and 7 in 5, 4 and 2.
func Capacity(size int) int {
	n := 0
	for row, col := range Scan(size) {
		if !IsReserved(size, row, col) {
			n++
		}
	}
	return n
}

// Place writes bits from s to free cells in scan order and returns
// the number of bits written.  Placement stops when s is exhausted;
// bits that do not fit are left unread.
func (m *Matrix) Place(s *BitStream) int {
	n := 0
	for row, col := range Scan(m.Size) {
		if s.Len() == 0 {
			break
		}
		if IsReserved(m.Size, row, col) {
			continue
		}
		m.Set(row, col, s.Next())
		n++
	}
	return n
}
