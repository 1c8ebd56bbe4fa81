package adder_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/adder"
)

func TestHalfAdd(t *testing.T) {
	td := []struct {
		a, b, sum, carry bool
	}{
		{false, false, false, false},
		{false, true, true, false},
		{true, false, true, false},
		{true, true, false, true},
	}
	for _, d := range td {
		sum, carry := adder.HalfAdd(d.a, d.b)
		if sum != d.sum || carry != d.carry {
			t.Errorf("HalfAdd(%v, %v) = %v, %v, want %v, %v",
				d.a, d.b, sum, carry, d.sum, d.carry)
		}
	}
}

func TestFullAdd(t *testing.T) {
	td := []struct {
		a, b, cin, sum, cout bool
	}{
		{false, false, false, false, false},
		{false, false, true, true, false},
		{false, true, false, true, false},
		{false, true, true, false, true},
		{true, false, false, true, false},
		{true, false, true, false, true},
		{true, true, false, false, true},
		{true, true, true, true, true},
	}
	for _, d := range td {
		sum, cout := adder.FullAdd(d.a, d.b, d.cin)
		if sum != d.sum || cout != d.cout {
			t.Errorf("FullAdd(%v, %v, %v) = %v, %v, want %v, %v",
				d.a, d.b, d.cin, sum, cout, d.sum, d.cout)
		}
	}
}

// the gate-level adder and the word-level adder must agree everywhere
func TestRippleAdd4(t *testing.T) {
	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			for cin := uint8(0); cin < 2; cin++ {
				s0, c0 := adder.Add4(a, b, cin)
				s1, c1 := adder.RippleAdd4(a, b, cin)
				if s0 != s1 || c0 != c1 {
					t.Fatalf("RippleAdd4(%d, %d, %d) = %d, %d, want %d, %d",
						a, b, cin, s1, c1, s0, c0)
				}
			}
		}
	}
}

func TestRippleAdd(t *testing.T) {
	a16, err := adder.New(16)
	if err != nil {
		t.Fatal(err)
	}
	f := func(x, y uint16, cin bool) bool {
		sum, cout := adder.RippleAdd(adder.Bits(uint64(x), 16), adder.Bits(uint64(y), 16), cin)
		s, c := a16.Add(uint64(x), uint64(y), boolToUint64(cin))
		return adder.Uint(sum) == s && boolToUint64(cout) == c
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on mismatched bus widths")
		}
	}()
	adder.RippleAdd(make([]bool, 4), make([]bool, 5), false)
}

func TestBits(t *testing.T) {
	f := func(v uint16) bool {
		b := adder.Bits(uint64(v), 16)
		return len(b) == 16 && adder.Uint(b) == uint64(v)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
	if n := adder.Uint(adder.Bits(255, 4)); n != 15 {
		t.Errorf("expected Bits to truncate to the requested width, got %d", n)
	}
}

func boolToUint64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
