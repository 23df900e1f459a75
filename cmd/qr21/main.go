// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qr21 encodes text as a 21×21 code and writes it as an image or text.
package main

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unixdj/qr21"
)

// originalName is the file written by -O.
const originalName = "qr_code.png"

type settings struct {
	scale    int             // scale
	border   int             // quiet zone
	ecc      int             // check bytes
	palette  *[2]color.Color // palette
	rev      bool            // reverse colours
	fn       string          // filename
	format   qr21.Format     // output file format
	bg, fg   rgba            // colour
	colSet   bool            // colour set
	truncate bool            // truncate long text
	batch    bool            // one code per line
	verbose  bool            // debug logging
}

var g = settings{
	scale: qr21.DefaultScale,
	ecc:   qr21.DefaultECCLength,
	bg:    rgba{0xff, 0xff, 0xff, 0xff},
	fg:    rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "21×21 code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Text is limited to Latin-1 characters.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr21 version 0.1.0
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

type rgba struct {
	R, G, B, A uint8
}

var rgb = map[string]rgba{
	"black": {0x00, 0x00, 0x00, 0xff},
	"white": {0xff, 0xff, 0xff, 0xff},
	"red":   {0xff, 0x00, 0x00, 0xff},
	"green": {0x00, 0xff, 0x00, 0xff},
	"blue":  {0x00, 0x00, 0xff, 0xff},
	"none":  {0xff, 0xff, 0xff, 0x00},
}

func (c *rgba) String() string {
	if *c == rgb["black"] {
		return "black"
	} else if *c == rgb["white"] {
		return "white"
	} else if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	} else {
		return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	v, err := parseColour(s)
	if err != nil {
		return err
	}
	*c = v
	g.colSet = true
	return nil
}

// parseColour parses a colour as 3, 4, 6 or 8 hex digits or a name.
func parseColour(s string) (rgba, error) {
	if c, ok := rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgba{}, fmt.Errorf("%q: bad colour", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return rgba{}, fmt.Errorf("%q: bad colour", s)
	}
	return rgba{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "bmp", "bmpi", "tiff", "tiffi",
	"utf8", "utf8i", "ascii", "asciii",
}

// setFormat sets the output format and colour reversal from the type
// name, the output file name or the terminal.
func (s *settings) setFormat(typ string, tty bool) error {
	if typ == "" {
		switch {
		case s.fn != "":
			s.format, _ = qr21.FormatOf(s.fn)
		case tty:
			s.format = qr21.UTF8
		default:
			s.format = qr21.PNG
		}
		return nil
	}
	for i, v := range formats {
		if typ == v {
			s.format = qr21.Format(i >> 1)
			s.rev = i&1 != 0
			return nil
		}
	}
	return fmt.Errorf("%q: unknown type", typ)
}

func parseFlags() (cfgName, typ string) {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or one of black, white, red, `+
		`green, blue, none; only for types png[i], bmp[i] and tiff[i]`,
		"RGB[A]|name")
	getopt.Flag(&g.border, 'm', `quiet zone cells [0]`, "margin")
	getopt.Flag(&g.fn, 'o', `output file, or "-" for standard `+
		`output; with -b, "-01", "-02" etc. is appended to the `+
		`filename before suffix`, "file")
	getopt.Flag(opt(func() { g.fn = originalName }), 'O',
		"write to "+originalName).SetFlag()
	getopt.Flag(&g.truncate, 'T', "drop data that does not fit "+
		"instead of failing")
	getopt.Flag(&g.batch, 'b', "encode each input line as a separate code")
	getopt.Flag(&g.verbose, 'v', "log debugging information")
	getopt.Flag(&cfgName, 'c', "read defaults from YAML file", "config")
	ecc := getopt.Unsigned('e', qr21.DefaultECCLength,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 255},
		"number of error correction bytes", "n")
	scale := getopt.Unsigned('s', qr21.DefaultScale,
		&getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 15},
		`image pixels per cell; ignored for types utf8[i] and ascii[i]`,
		"scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if not given, taken from the -o file suffix, or if no -o `+
		`is given and standard output is a TTY, utf8, otherwise png`,
		"type")

	getopt.Parse()
	g.scale = int(*scale)
	g.ecc = int(*ecc)
	if g.fn == "-" {
		g.fn = ""
	}
	return cfgName, *ff
}

// newLogger returns a logger writing to standard error.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func main() {
	log.SetFlags(0)
	cfgName, typ := parseFlags()
	if cfgName != "" {
		c, err := loadConfig(cfgName)
		if err != nil {
			log.Fatalln(err)
		}
		if typ, err = c.apply(&g, func(r rune) bool { return getopt.IsSet(r) }, typ); err != nil {
			log.Fatalln(err)
		}
	}
	tty := isatty.IsTerminal(os.Stdout.Fd())
	if err := g.setFormat(typ, tty); err != nil {
		log.Fatalln(err)
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
	logger, err := newLogger(g.verbose)
	if err != nil {
		log.Fatalln(err)
	}
	defer logger.Sync()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	o := g.options(logger)
	if g.batch {
		cc, err := o.EncodeAll(context.Background(), strings.Split(s, "\n"))
		if err != nil {
			log.Fatalln(err)
		}
		for i := range cc {
			write(logger, i, cc[i])
		}
	} else {
		c, err := o.Encode(s)
		if err != nil {
			log.Fatalln(err)
		}
		write(logger, -1, c)
	}
}

// options returns encoding options for s.
func (s *settings) options(logger *zap.Logger) *qr21.Options {
	ecc := s.ecc
	if ecc == 0 {
		ecc = qr21.NoECC
	}
	return &qr21.Options{
		ECCLength: ecc,
		Scale:     s.scale,
		Border:    s.border,
		Truncate:  s.truncate,
		Logger:    logger,
	}
}

// fileName returns the output file for code i, or "" for standard
// output.  Batch codes are numbered from 1 before the suffix; i < 0
// is a single code.
func (s *settings) fileName(i int) string {
	if s.fn == "" || s.fn == "-" {
		return ""
	}
	if i < 0 {
		return s.fn
	}
	ext := path.Ext(s.fn)
	return fmt.Sprintf("%s-%02d%s", s.fn[:len(s.fn)-len(ext)], i+1, ext)
}

func write(logger *zap.Logger, i int, c *qr21.Code) {
	fn := g.fileName(i)
	var w = os.Stdout
	if fn != "" {
		var err error
		if w, err = os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c.Palette = g.palette
	c.Reverse = g.rev
	err := c.Encode(w, g.format)
	if fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
	if fn != "" {
		logger.Debug("code written", zap.String("file", fn),
			zap.Stringer("format", g.format))
	}
}
