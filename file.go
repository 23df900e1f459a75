// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr21

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// A Format is an output format for a Code.
type Format int

// Output formats.
const (
	PNG   Format = iota // PNG image
	PBM                 // netpbm bitmap
	BMP                 // Windows bitmap
	TIFF                // TIFF image
	UTF8                // text with UTF-8 block elements
	ASCII               // text with ASCII characters
)

var formatNames = [...]string{"png", "pbm", "bmp", "tiff", "utf8", "ascii"}

func (f Format) String() string {
	if PNG <= f && f <= ASCII {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the Format with the given name.
func ParseFormat(s string) (Format, error) {
	for i, v := range formatNames {
		if strings.EqualFold(s, v) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("qr: unknown format %q", s)
}

// FormatOf returns the Format for the extension of the file name.
// It returns PNG and false if the extension is not known.
func FormatOf(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return PNG, true
	case ".pbm":
		return PBM, true
	case ".bmp":
		return BMP, true
	case ".tif", ".tiff":
		return TIFF, true
	case ".txt":
		return UTF8, true
	}
	return PNG, false
}

var encoders = [...]func(*Code, io.Writer) error{
	PNG:   (*Code).EncodePNG,
	PBM:   (*Code).EncodePBM,
	BMP:   (*Code).EncodeBMP,
	TIFF:  (*Code).EncodeTIFF,
	UTF8:  (*Code).EncodeUTF8,
	ASCII: (*Code).EncodeASCII,
}

// Encode writes the code to w in format f.
func (c *Code) Encode(w io.Writer, f Format) error {
	if f < PNG || f > ASCII {
		return ErrArgs
	}
	return encoders[f](c, w)
}

// WriteFile writes the code to the named file in the format given by
// its extension, PNG if unknown.  The file is created or truncated.
func (c *Code) WriteFile(name string) error {
	f, _ := FormatOf(name)
	return c.WriteFileFormat(name, f)
}

// WriteFileFormat writes the code to the named file in format f.
func (c *Code) WriteFileFormat(name string, f Format) error {
	w, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	err = c.Encode(w, f)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}
