// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package adder

import (
	"math/bits"

	"github.com/pkg/errors"
)

// A Func computes a 4-bit sum and a carry-out bit from two 4-bit operands
// and a carry-in bit. All adder implementations in this module, as well as
// user supplied ones, share this signature so that the testbench utilities
// in package addtest can drive any of them.
//
type Func func(a, b, cin uint8) (sum, cout uint8)

// Add4 returns the 4-bit sum and the carry-out of a + b + cin.
//
//	Inputs:  a, b (4 bits each), cin (1 bit)
//	Outputs: sum (4 bits), cout (1 bit)
//	Function: cout*16 + sum = a + b + cin
//
// Operands wider than 4 bits are silently truncated to their low 4 bits,
// matching the wraparound of a fixed-width hardware port; a nonzero cin
// counts as logical 1. Overflow past 15 goes into cout, never into sum.
// Add4 is a pure function and is safe for concurrent use.
//
func Add4(a, b, cin uint8) (sum, cout uint8) {
	t := a&15 + b&15 + bit(cin)
	return t & 15, t >> 4
}

// ErrOutOfRange is reported by Add4Checked when an operand does not fit
// its port width.
//
var ErrOutOfRange = errors.New("operand out of range")

// Add4Checked is Add4 with input validation: it rejects operands wider
// than 4 bits and a carry-in wider than 1 bit with ErrOutOfRange instead
// of truncating them. Use it when out-of-domain inputs indicate a caller
// bug rather than intentional wraparound.
//
func Add4Checked(a, b, cin uint8) (sum, cout uint8, err error) {
	switch {
	case a > 15:
		return 0, 0, errors.Wrapf(ErrOutOfRange, "a = %d", a)
	case b > 15:
		return 0, 0, errors.Wrapf(ErrOutOfRange, "b = %d", b)
	case cin > 1:
		return 0, 0, errors.Wrapf(ErrOutOfRange, "cin = %d", cin)
	}
	sum, cout = Add4(a, b, cin)
	return sum, cout, nil
}

func bit(b uint8) uint8 {
	if b != 0 {
		return 1
	}
	return 0
}

// An Adder adds fixed-width unsigned words with carry. The zero value is
// not usable; get one from New.
//
type Adder struct {
	bits uint
	mask uint64
}

// New returns an adder for words of the given width, from 1 to 64 bits.
//
func New(width int) (*Adder, error) {
	if width < 1 || width > 64 {
		return nil, errors.Errorf("unsupported word width %d bits", width)
	}
	return &Adder{
		bits: uint(width),
		mask: ^uint64(0) >> (64 - uint(width)),
	}, nil
}

// Bits returns the adder's word width in bits.
//
func (a *Adder) Bits() int { return int(a.bits) }

// Mask returns the bit mask covering the adder's word width.
//
func (a *Adder) Mask() uint64 { return a.mask }

// Add returns the width-masked sum and the carry-out of x + y + carry.
// The semantics are those of Add4 generalized to the adder's width:
// operands are truncated to the word width, a nonzero carry counts as 1,
// and sum + cout<<width = x + y + carry holds for the truncated inputs.
//
func (a *Adder) Add(x, y, carry uint64) (sum, cout uint64) {
	x &= a.mask
	y &= a.mask
	if carry != 0 {
		carry = 1
	}
	// at full width the intermediate sum needs 65 bits
	if a.bits == 64 {
		return bits.Add64(x, y, carry)
	}
	t := x + y + carry
	return t & a.mask, t >> a.bits
}
