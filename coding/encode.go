// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultECCLength is the default number of check bytes.
const DefaultECCLength = 10

// MaxECCLength is the largest number of check bytes.
const MaxECCLength = 255

// SizeError represents an unsupported matrix size.
type SizeError int

func (e SizeError) Error() string {
	return fmt.Sprintf("qr: unsupported size %d, want %d", int(e), Size)
}

// CapacityError represents a bit stream too long for the matrix.
type CapacityError struct {
	Bits     int // bit stream length
	Capacity int // cells available for data
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code",
		e.Bits, e.Capacity)
}

// An Encoder builds code matrices.  An Encoder may be used by
// several goroutines at once if its Corrector may.
type Encoder struct {
	size     int
	ecc      int
	capacity int
	corr     Corrector
	truncate bool
	log      *zap.Logger
}

// An Option configures an Encoder.
type Option func(*Encoder)

// WithCorrector sets the error correction Corrector,
// ReedSolomon by default.
func WithCorrector(c Corrector) Option {
	return func(e *Encoder) {
		if c != nil {
			e.corr = c
		}
	}
}

// WithTruncate sets whether bits beyond the capacity of the matrix
// are dropped.  By default Encode returns a CapacityError instead.
func WithTruncate(truncate bool) Option {
	return func(e *Encoder) { e.truncate = truncate }
}

// WithLogger sets the logger for debugging output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Encoder) {
		if l != nil {
			e.log = l
		}
	}
}

func newEncoder(size, ecc int) *Encoder {
	return &Encoder{
		size:     size,
		ecc:      ecc,
		capacity: Capacity(size),
		corr:     ReedSolomon,
		log:      zap.NewNop(),
	}
}

// NewEncoder returns an Encoder for size×size matrices with ecc
// check bytes.
func NewEncoder(size, ecc int, opts ...Option) (*Encoder, error) {
	if size != Size {
		return nil, SizeError(size)
	}
	if ecc < 0 || ecc > MaxECCLength {
		return nil, ErrECCLength
	}
	e := newEncoder(size, ecc)
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

var defaultEncoder = newEncoder(Size, DefaultECCLength)

// Capacity returns the number of data bits in the matrices e builds.
func (e *Encoder) Capacity() int { return e.capacity }

// MaxText returns the length of the longest message e encodes
// without truncation.
func (e *Encoder) MaxText() int { return max(e.capacity/8-e.ecc, 0) }

// Encode returns the matrix for text.  Each character of text must
// be between U+0000 and U+00FF.  The text is stored one byte per
// character; the check bytes are those of its UTF-8 form.
func (e *Encoder) Encode(text string) (*Matrix, error) {
	msg, err := Latin1(text)
	if err != nil {
		return nil, err
	}
	return e.encode(msg, []byte(text))
}

// EncodeBytes returns the matrix for msg and its check bytes.
//
// The matrix is built in stages: position markers and timing lines,
// then msg and its check bytes in scan order, then the checkerboard
// mask.  On error no matrix is returned.
func (e *Encoder) EncodeBytes(msg []byte) (*Matrix, error) {
	return e.encode(msg, msg)
}

// encode stores msg followed by the check bytes of eccMsg.
func (e *Encoder) encode(msg, eccMsg []byte) (*Matrix, error) {
	nbit := 8 * (len(msg) + e.ecc)
	if nbit > e.capacity {
		if !e.truncate {
			return nil, &CapacityError{nbit, e.capacity}
		}
		e.log.Warn("bit stream truncated",
			zap.Int("bits", nbit), zap.Int("capacity", e.capacity))
	}
	check, err := e.corr.ECC(eccMsg, e.ecc)
	if err != nil {
		return nil, &ECCError{Err: err}
	}
	if len(check) != e.ecc {
		return nil, &ECCError{Want: e.ecc, Got: len(check)}
	}
	bits := AssembleBytes(msg, check)
	s := bits.Stream()

	m := NewMatrix(e.size)
	m.PaintStructure()
	n := m.Place(&s)
	m.Mask(Checkerboard)
	e.log.Debug("matrix encoded",
		zap.Int("bytes", len(msg)), zap.Int("bits", bits.Bits()),
		zap.Int("written", n), zap.Int("capacity", e.capacity))
	return m, nil
}

// Encode encodes text using an Encoder with the default size and
// number of check bytes.
func Encode(text string) (*Matrix, error) {
	return defaultEncoder.Encode(text)
}
