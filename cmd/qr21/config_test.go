// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noFlags(rune) bool { return false }

func TestReadConfig(t *testing.T) {
	c, err := readConfig(strings.NewReader(`
scale: 4
margin: 2
ecc: 0
type: pbmi
output: out.pbm
truncate: true
background: fff8
foreground: blue
`), "test.yaml")
	require.NoError(t, err)
	s := settings{scale: 10, ecc: 10}
	typ, err := c.apply(&s, noFlags, "")
	require.NoError(t, err)
	assert.Equal(t, "pbmi", typ)
	assert.Equal(t, 4, s.scale)
	assert.Equal(t, 2, s.border)
	assert.Equal(t, 0, s.ecc)
	assert.Equal(t, "out.pbm", s.fn)
	assert.True(t, s.truncate)
	assert.True(t, s.colSet)
	assert.Equal(t, rgba{0xff, 0xff, 0xff, 0x88}, s.bg)
	assert.Equal(t, rgba{0x00, 0x00, 0xff, 0xff}, s.fg)
}

func TestConfigFlagsWin(t *testing.T) {
	c, err := readConfig(strings.NewReader("scale: 4\ntype: ascii\nbackground: red\n"), "test.yaml")
	require.NoError(t, err)
	s := settings{scale: 7}
	set := func(r rune) bool { return r == 's' || r == 't' || r == 'B' }
	typ, err := c.apply(&s, set, "png")
	require.NoError(t, err)
	assert.Equal(t, "png", typ)
	assert.Equal(t, 7, s.scale)
	assert.False(t, s.colSet)
}

func TestConfigEmpty(t *testing.T) {
	c, err := readConfig(strings.NewReader(""), "empty.yaml")
	require.NoError(t, err)
	s := settings{scale: 10, ecc: 10}
	typ, err := c.apply(&s, noFlags, "")
	require.NoError(t, err)
	assert.Empty(t, typ)
	assert.Equal(t, settings{scale: 10, ecc: 10}, s)
}

func TestConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		name, doc, err string
	}{
		{"unknown field", "colour: red\n", "field colour not found"},
		{"scale", "scale: 0\n", "scale 0 out of range"},
		{"margin", "margin: -1\n", "margin -1 out of range"},
		{"ecc", "ecc: 256\n", "ecc 256 out of range"},
		{"colour", "foreground: \"12345\"\n", `"12345": bad colour`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, err := readConfig(strings.NewReader(tc.doc), "bad.yaml")
			if err == nil {
				_, err = c.apply(&settings{}, noFlags, "")
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "qr21.yaml")
	require.NoError(t, os.WriteFile(name, []byte("margin: 3\n"), 0666))
	c, err := loadConfig(name)
	require.NoError(t, err)
	require.NotNil(t, c.Margin)
	assert.Equal(t, 3, *c.Margin)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
