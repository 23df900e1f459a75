// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"

	"rsc.io/qr/gf256"
)

// ErrECCLength reports an invalid number of check bytes.
var ErrECCLength = errors.New("qr: invalid error correction length")

// Field is the field for error correction.
var Field = gf256.NewField(0x11d, 2)

// A Corrector generates error correction bytes.
//
// ECC returns exactly n check bytes for msg.  The result must depend
// on msg and n only.  Encoders call ECC concurrently when used from
// several goroutines.
type Corrector interface {
	ECC(msg []byte, n int) ([]byte, error)
}

// CorrectorFunc adapts a function to the Corrector interface.
type CorrectorFunc func(msg []byte, n int) ([]byte, error)

func (f CorrectorFunc) ECC(msg []byte, n int) ([]byte, error) {
	return f(msg, n)
}

// ReedSolomon is a Reed-Solomon Corrector over Field with generator
// polynomial (x-α⁰)(x-α¹)…(x-αⁿ⁻¹).
//
// A GF(2⁸) code word holds 255 bytes, so a message longer than 255-n
// bytes is cut into blocks of 255-n bytes and the check bytes of the
// last block are returned.
var ReedSolomon Corrector = reedSolomon{}

type reedSolomon struct{}

func (reedSolomon) ECC(msg []byte, n int) ([]byte, error) {
	if n < 0 || n > MaxECCLength || n == MaxECCLength && len(msg) != 0 {
		return nil, ErrECCLength
	}
	if block := MaxECCLength - n; len(msg) > block {
		msg = msg[(len(msg)-1)/block*block:]
	}
	check := make([]byte, n)
	if n != 0 {
		// RSEncoder keeps scratch space, one per call.
		gf256.NewRSEncoder(Field, n).ECC(msg, check)
	}
	return check, nil
}

// ECCError reports a failed Corrector call.
type ECCError struct {
	Err       error // error returned by the Corrector, if any
	Want, Got int   // requested and returned check byte counts
}

func (e *ECCError) Error() string {
	if e.Err != nil {
		return "qr: error correction: " + e.Err.Error()
	}
	return fmt.Sprintf("qr: error correction returned %d bytes, want %d",
		e.Got, e.Want)
}

func (e *ECCError) Unwrap() error { return e.Err }
