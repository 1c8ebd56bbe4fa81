// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package addtest provides utility functions for testing adder
// implementations.
//
package addtest

import (
	"fmt"
	"testing"

	"github.com/db47h/adder"
)

// A Vector is a single labeled test case: inputs along with the
// expected outputs.
//
type Vector struct {
	Label     string
	A, B, Cin uint8
	Sum, Cout uint8
}

// Canonical returns the five canonical test vectors exercised by the
// package tests and the add4 command: plain addition, overflow into
// the carry with and without carry-in, the all-zero case and the
// largest sum that does not overflow.
//
func Canonical() []Vector {
	return []Vector{
		{"simple addition", 3, 2, 0, 5, 0},
		{"overflow to carry", 15, 1, 0, 0, 1},
		{"carry-in overflow", 7, 8, 1, 0, 1},
		{"all zeroes", 0, 0, 0, 0, 0},
		{"maximum without carry", 8, 7, 0, 15, 0},
	}
}

// Check sweeps f over the whole 4-bit input domain and checks the
// defining properties of a binary adder: sum and carry recombine to
// a + b + cin, outputs stay in range, operands commute, and raising
// the carry-in raises the combined result by exactly one.
//
func Check(t *testing.T, f adder.Func) {
	t.Helper()

	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			for cin := uint8(0); cin < 2; cin++ {
				sum, cout := f(a, b, cin)
				if sum > 15 || cout > 1 {
					t.Fatalf("f(%d, %d, %d) = %d, %d: output out of range", a, b, cin, sum, cout)
				}
				if uint16(cout)*16+uint16(sum) != uint16(a)+uint16(b)+uint16(cin) {
					t.Fatalf("f(%d, %d, %d) = %d, %d: want sum %d", a, b, cin, sum, cout, uint16(a)+uint16(b)+uint16(cin))
				}
				sum2, cout2 := f(b, a, cin)
				if sum != sum2 || cout != cout2 {
					t.Fatalf("f(%d, %d, %d) = %d, %d but f(%d, %d, %d) = %d, %d",
						a, b, cin, sum, cout, b, a, cin, sum2, cout2)
				}
			}
			s0, c0 := f(a, b, 0)
			s1, c1 := f(a, b, 1)
			if uint16(c1)*16+uint16(s1) != uint16(c0)*16+uint16(s0)+1 {
				t.Fatalf("f(%d, %d, 1) = %d, %d: want one more than f(%d, %d, 0) = %d, %d",
					a, b, s1, c1, a, b, s0, c0)
			}
		}
	}
}

// Compare takes two adder implementations and compares their outputs
// given the same inputs, over the whole 4-bit input domain.
//
func Compare(t *testing.T, f, g adder.Func) {
	t.Helper()

	errString := func(a, b, cin uint8, name string, ex, got uint8) string {
		return fmt.Sprintf("\nExpected a=%d, b=%d, cin=%d => %s=%d\nGot %d", a, b, cin, name, ex, got)
	}

	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			for cin := uint8(0); cin < 2; cin++ {
				s0, c0 := f(a, b, cin)
				s1, c1 := g(a, b, cin)
				if s0 != s1 {
					t.Fatal(errString(a, b, cin, "sum", s0, s1))
				}
				if c0 != c1 {
					t.Fatal(errString(a, b, cin, "cout", c0, c1))
				}
			}
		}
	}
}
