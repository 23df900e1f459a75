// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanOrder(t *testing.T) {
	type run struct{ col, first, last int }
	var runs []run
	for row, col := range Scan(Size) {
		if n := len(runs); n == 0 || runs[n-1].col != col {
			runs = append(runs, run{col, row, row})
		} else {
			runs[n-1].last = row
		}
	}
	want := []run{
		{20, 0, 20}, {18, 0, 20}, {16, 0, 20}, {14, 0, 20},
		{12, 0, 20}, {10, 0, 20}, {8, 0, 20},
		{5, 20, 0}, // column 6 shifted, scanned upwards
		{4, 0, 20}, {2, 0, 20},
	}
	if diff := cmp.Diff(want, runs, cmp.AllowUnexported(run{})); diff != "" {
		t.Errorf("scan runs (-want +got):\n%s", diff)
	}
}

func TestScanStop(t *testing.T) {
	n := 0
	for range Scan(Size) {
		if n++; n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 14*4+20*3+7*3, Capacity(Size))
	assert.Equal(t, 137, Capacity(Size))
	assert.LessOrEqual(t, Capacity(Size), FreeCells(Size))
}

func TestPlace(t *testing.T) {
	b := AssembleBytes([]byte("A"), make([]byte, DefaultECCLength))
	s := b.Stream()
	m := NewMatrix(Size)
	m.PaintStructure()
	ref := m.Clone()
	require.Equal(t, 88, m.Place(&s))
	assert.Zero(t, s.Len())

	// 'A' is 01000001: the first cells of column 20 below the
	// top right marker.
	want := []byte{0, 1, 0, 0, 0, 0, 0, 1}
	for i, v := range want {
		assert.Equal(t, v, m.At(7+i, 20), "row %d", 7+i)
	}
	assertReservedEqual(t, ref, m)
}

func TestPlaceOverflow(t *testing.T) {
	bits := NewBits(20)
	for i := 0; i < 20; i++ {
		bits.Write(0xff, 8)
	}
	s := bits.Stream()
	m := NewMatrix(Size)
	m.PaintStructure()
	ref := m.Clone()
	assert.Equal(t, Capacity(Size), m.Place(&s))
	assert.Equal(t, 160-Capacity(Size), s.Len(), "unread bits")
	assertReservedEqual(t, ref, m)

	// Every reachable free cell is black; the unreached columns
	// stay white.
	for row, col := range Scan(Size) {
		if !IsReserved(Size, row, col) {
			assert.Equal(t, byte(1), m.At(row, col))
		}
	}
	assert.Zero(t, m.At(10, 19))
	assert.Zero(t, m.At(10, 0))
}

// assertReservedEqual checks that want and got agree on reserved cells.
func assertReservedEqual(t *testing.T, want, got *Matrix) {
	t.Helper()
	for row := 0; row < want.Size; row++ {
		for col := 0; col < want.Size; col++ {
			if IsReserved(want.Size, row, col) {
				require.Equal(t, want.At(row, col), got.At(row, col),
					"reserved cell %d,%d changed", row, col)
			}
		}
	}
}
