// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package addtest

import (
	"fmt"

	"github.com/db47h/adder"
	"github.com/db47h/adder/internal/vec"
	"github.com/pkg/errors"
)

// ParseVector parses a test vector description like
//
//	a=3, b=2, cin=0, sum=5, cout=0
//
// Values may use any integer notation accepted by strconv.ParseUint
// with base 0, so binary literals work too: "a=0b0011, b=0b0010".
// The operands a and b are required. cin defaults to 0, and omitted
// expectations are filled in from the reference arithmetic, so
// "a=15, b=1" alone describes a passing vector. The vector label is
// the input string itself.
//
func ParseVector(s string) (Vector, error) {
	as, err := vec.Parse(s)
	if err != nil {
		return Vector{}, err
	}

	v := Vector{Label: s}
	seen := make(map[string]bool, len(as))
	for _, a := range as {
		if seen[a.Name] {
			return Vector{}, parseError(s, a.Pos, "duplicate signal "+a.Name)
		}
		seen[a.Name] = true
		var (
			dst *uint8
			max uint64 = 15
		)
		switch a.Name {
		case "a":
			dst = &v.A
		case "b":
			dst = &v.B
		case "cin":
			dst, max = &v.Cin, 1
		case "sum":
			dst = &v.Sum
		case "cout":
			dst, max = &v.Cout, 1
		default:
			return Vector{}, parseError(s, a.Pos, "unknown signal "+a.Name)
		}
		if a.Value > max {
			return Vector{}, parseError(s, a.Pos, fmt.Sprintf("%s = %d out of range 0..%d", a.Name, a.Value, max))
		}
		*dst = uint8(a.Value)
	}
	for _, n := range []string{"a", "b"} {
		if !seen[n] {
			return Vector{}, errors.Errorf("in %q: missing operand %s", s, n)
		}
	}

	sum, cout := adder.Add4(v.A, v.B, v.Cin)
	if !seen["sum"] {
		v.Sum = sum
	}
	if !seen["cout"] {
		v.Cout = cout
	}
	return v, nil
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
