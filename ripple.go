// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package adder

// HalfAdd returns the sum and carry bits of a + b.
//
//	Function: sum = lsb(a + b)
//	          carry = msb(a + b)
//
func HalfAdd(a, b bool) (sum, carry bool) {
	return a && !b || !a && b, a && b
}

// FullAdd returns the sum and carry-out bits of a + b + cin.
//
//	Function: sum = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdd(a, b, cin bool) (sum, cout bool) {
	s := a && !b || !a && b
	return s && !cin || !s && cin, s && cin || a && b
}

// RippleAdd adds the buses x and y and the carry cin through a chain of
// full adders, one per bit, least significant bit first. The carry ripples
// from each stage into the next; the last stage's carry is returned as
// cout. Both buses must have the same width or RippleAdd panics.
//
func RippleAdd(x, y []bool, cin bool) (sum []bool, cout bool) {
	if len(x) != len(y) {
		panic("operand buses have different widths")
	}
	sum = make([]bool, len(x))
	c := cin
	for i := range x {
		sum[i], c = FullAdd(x[i], y[i], c)
	}
	return sum, c
}

// RippleAdd4 is the structural equivalent of Add4: a 4-stage full adder
// chain instead of native arithmetic. It exists for comparison and for
// readers who want to see the carry propagate; Add4 is the canonical form.
//
func RippleAdd4(a, b, cin uint8) (sum, cout uint8) {
	s, c := RippleAdd(Bits(uint64(a), 4), Bits(uint64(b), 4), cin != 0)
	if c {
		return uint8(Uint(s)), 1
	}
	return uint8(Uint(s)), 0
}

// Bits unpacks the n low bits of v into a bus, lsb first.
//
func Bits(v uint64, n int) []bool {
	b := make([]bool, n)
	for i := range b {
		b[i] = v&(1<<uint(i)) != 0
	}
	return b
}

// Uint packs a bus back into an unsigned word, lsb first.
//
func Uint(b []bool) uint64 {
	var v uint64
	for i := range b {
		if b[i] {
			v |= 1 << uint(i)
		}
	}
	return v
}
