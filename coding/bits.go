// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Bits is a bit stream under construction, packed most significant
// bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with capacity for n bytes.
func NewBits(n int) *Bits {
	return &Bits{b: make([]byte, 0, n)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the written bits.  The last byte is zero padded.
func (b *Bits) Bytes() []byte {
	return b.b
}

// Write appends the nbit low bits of v, most significant first.
// nbit must be between 0 and 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Stream returns a BitStream reading the bits written to b.
// The BitStream shares the underlying buffer.
func (b *Bits) Stream() BitStream {
	return BitStream{b: b.b, nbit: b.nbit}
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b    []byte
	nbit int
	pos  int
}

// NewBitStream returns a BitStream reading all bits of b.
func NewBitStream(b []byte) BitStream {
	return BitStream{b: b, nbit: len(b) * 8}
}

// Len returns the number of unread bits.
func (s *BitStream) Len() int { return s.nbit - s.pos }

// Next returns the next bit from s as 0 or 1.
// Past the end of the stream Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if s.pos < s.nbit {
		b = s.b[s.pos>>3] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}

// RangeError reports a character that has no single byte encoding.
type RangeError struct {
	Offset int  // byte offset of the character in the text
	Char   rune // the character, U+FFFD for invalid UTF-8
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("qr: character %U at offset %d "+
		"outside single byte range", e.Char, e.Offset)
}

// Latin1 returns text with each character encoded as one byte,
// U+0000 to U+00FF.
func Latin1(text string) ([]byte, error) {
	msg := make([]byte, 0, len(text))
	for i, r := range text {
		c, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, &RangeError{i, r}
		}
		msg = append(msg, c)
	}
	return msg, nil
}

// Assemble returns the bit stream for text followed by the check
// bytes, eight bits per character or byte, with no header or padding.
func Assemble(text string, check []byte) (*Bits, error) {
	msg, err := Latin1(text)
	if err != nil {
		return nil, err
	}
	return AssembleBytes(msg, check), nil
}

// AssembleBytes returns the bit stream for msg followed by check.
func AssembleBytes(msg, check []byte) *Bits {
	b := NewBits(len(msg) + len(check))
	for _, v := range msg {
		b.Write(uint32(v), 8)
	}
	for _, v := range check {
		b.Write(uint32(v), 8)
	}
	return b
}
