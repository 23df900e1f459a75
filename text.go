// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr21

import (
	"io"
	"strings"
)

// String returns the code drawn with UTF-8 block elements, two cell
// rows per line, for display in a terminal with dark background:
// white cells are drawn, black cells left blank.  c.Scale is ignored.
func (c *Code) String() string {
	var b strings.Builder
	c.writeBlocks(&b)
	return b.String()
}

// EncodeUTF8 writes the code as returned by String to w.
func (c *Code) EncodeUTF8(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	var b strings.Builder
	c.writeBlocks(&b)
	_, err := io.WriteString(w, b.String())
	return err
}

func (c *Code) writeBlocks(b *strings.Builder) {
	blocks := [4]string{"█", "▀", "▄", " "}
	if c.Reverse {
		blocks = [4]string{" ", "▄", "▀", "█"}
	}
	bord := c.Border
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			n := 0
			if c.Black(x, y) {
				n = 2
			}
			// Odd heights end in a half line, blank below.
			if y+1 >= c.Size+bord {
				if !c.Reverse {
					n++
				}
			} else if c.Black(x, y+1) {
				n++
			}
			b.WriteString(blocks[n])
		}
		b.WriteByte('\n')
	}
}

// EncodeASCII writes the code to w with two '#' characters for each
// black cell and two spaces for each white one.  c.Scale is ignored.
func (c *Code) EncodeASCII(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			p, q := byte('#'), byte(' ')
			if c.Reverse {
				p, q = q, p
			}
			if !c.Black(x, y) {
				p = q
			}
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
