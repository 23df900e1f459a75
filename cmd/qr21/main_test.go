// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unixdj/qr21"
)

func TestParseColour(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want rgba
	}{
		{"black", rgba{0, 0, 0, 0xff}},
		{"White", rgba{0xff, 0xff, 0xff, 0xff}},
		{"f00", rgba{0xff, 0, 0, 0xff}},
		{"f008", rgba{0xff, 0, 0, 0x88}},
		{"123456", rgba{0x12, 0x34, 0x56, 0xff}},
		{"12345678", rgba{0x12, 0x34, 0x56, 0x78}},
	} {
		got, err := parseColour(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	for _, in := range []string{"", "12", "12345", "xyz", "purple"} {
		_, err := parseColour(in)
		assert.Error(t, err, in)
	}
}

func TestColourString(t *testing.T) {
	for _, tc := range []struct {
		c    rgba
		want string
	}{
		{rgba{0, 0, 0, 0xff}, "black"},
		{rgba{0xff, 0xff, 0xff, 0xff}, "white"},
		{rgba{0x12, 0x34, 0x56, 0xff}, "123456"},
		{rgba{0x12, 0x34, 0x56, 0x78}, "12345678"},
	} {
		assert.Equal(t, tc.want, tc.c.String())
	}
}

func TestSetFormat(t *testing.T) {
	for _, tc := range []struct {
		typ, fn string
		tty     bool
		format  qr21.Format
		rev     bool
	}{
		{"", "", false, qr21.PNG, false},
		{"", "", true, qr21.UTF8, false},
		{"", "code.pbm", true, qr21.PBM, false},
		{"", "code.tiff", false, qr21.TIFF, false},
		{"", "code", true, qr21.PNG, false},
		{"bmpi", "code.png", false, qr21.BMP, true},
		{"ascii", "", true, qr21.ASCII, false},
		{"utf8i", "", false, qr21.UTF8, true},
	} {
		s := settings{fn: tc.fn}
		require.NoError(t, s.setFormat(tc.typ, tc.tty))
		assert.Equal(t, tc.format, s.format, "%q %q", tc.typ, tc.fn)
		assert.Equal(t, tc.rev, s.rev, "%q %q", tc.typ, tc.fn)
	}
	s := settings{}
	assert.EqualError(t, s.setFormat("gif", false), `"gif": unknown type`)
}

func TestOptions(t *testing.T) {
	s := settings{scale: 3, border: 1, ecc: 0, truncate: true}
	o := s.options(zap.NewNop())
	assert.Equal(t, qr21.NoECC, o.ECCLength)
	assert.Equal(t, 3, o.Scale)
	assert.Equal(t, 1, o.Border)
	assert.True(t, o.Truncate)

	s.ecc = 4
	c, err := s.options(nil).Encode("12345678")
	require.NoError(t, err)
	assert.Equal(t, 21, c.Size)
}

func TestFileName(t *testing.T) {
	for _, tc := range []struct {
		fn   string
		i    int
		want string
	}{
		{"", -1, ""},
		{"", 0, ""},
		{"-", -1, ""},
		{"-", 2, ""},
		{"code.png", -1, "code.png"},
		{"code.png", 0, "code-01.png"},
		{"code.png", 11, "code-12.png"},
		{"out/code.tiff", 99, "out/code-100.tiff"},
		{"code", 1, "code-02"},
		{originalName, -1, "qr_code.png"},
		{originalName, 0, "qr_code-01.png"},
	} {
		s := settings{fn: tc.fn}
		assert.Equal(t, tc.want, s.fileName(tc.i), "%q %d", tc.fn, tc.i)
	}
}

func TestWrite(t *testing.T) {
	saved := g
	t.Cleanup(func() { g = saved })
	g.fn = filepath.Join(t.TempDir(), "code.pbm")
	g.format = qr21.PBM
	c, err := qr21.Encode("QR")
	require.NoError(t, err)

	// Writing is silent unless debugging.
	core, logs := observer.New(zapcore.InfoLevel)
	write(zap.New(core), 0, c)
	assert.Zero(t, logs.Len())
	b, err := os.ReadFile(filepath.Join(filepath.Dir(g.fn), "code-01.pbm"))
	require.NoError(t, err)
	assert.Equal(t, "P4\n210 210\n", string(b[:11]))

	core, logs = observer.New(zapcore.DebugLevel)
	write(zap.New(core), -1, c)
	entries := logs.FilterMessage("code written").All()
	require.Len(t, entries, 1)
	assert.Equal(t, g.fn, entries[0].ContextMap()["file"])
	_, err = os.Stat(g.fn)
	assert.NoError(t, err)
}
