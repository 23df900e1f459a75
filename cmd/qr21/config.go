// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds defaults read from a YAML file.  Command line flags
// take precedence.
type config struct {
	Scale      *int    `yaml:"scale"`
	Margin     *int    `yaml:"margin"`
	ECC        *int    `yaml:"ecc"`
	Type       *string `yaml:"type"`
	Output     *string `yaml:"output"`
	Truncate   *bool   `yaml:"truncate"`
	Background *string `yaml:"background"`
	Foreground *string `yaml:"foreground"`
}

func loadConfig(name string) (*config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readConfig(f, name)
}

func readConfig(r io.Reader, name string) (*config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c config
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &c, nil
}

// apply copies values not given on the command line into s and
// returns the output type.  isSet reports whether a flag was given.
func (c *config) apply(s *settings, isSet func(rune) bool, typ string) (string, error) {
	if c.Scale != nil && !isSet('s') {
		if *c.Scale < 1 || *c.Scale > 1<<15 {
			return "", fmt.Errorf("scale %d out of range", *c.Scale)
		}
		s.scale = *c.Scale
	}
	if c.Margin != nil && !isSet('m') {
		if *c.Margin < 0 {
			return "", fmt.Errorf("margin %d out of range", *c.Margin)
		}
		s.border = *c.Margin
	}
	if c.ECC != nil && !isSet('e') {
		if *c.ECC < 0 || *c.ECC > 255 {
			return "", fmt.Errorf("ecc %d out of range", *c.ECC)
		}
		s.ecc = *c.ECC
	}
	if c.Output != nil && !isSet('o') && !isSet('O') {
		s.fn = *c.Output
		if s.fn == "-" {
			s.fn = ""
		}
	}
	if c.Truncate != nil && !isSet('T') {
		s.truncate = *c.Truncate
	}
	for _, v := range []struct {
		flag rune
		val  *string
		dst  *rgba
	}{
		{'B', c.Background, &s.bg},
		{'F', c.Foreground, &s.fg},
	} {
		if v.val == nil || isSet(v.flag) {
			continue
		}
		col, err := parseColour(*v.val)
		if err != nil {
			return "", err
		}
		*v.dst = col
		s.colSet = true
	}
	if c.Type != nil && !isSet('t') {
		typ = *c.Type
	}
	return typ, nil
}
