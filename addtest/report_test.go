package addtest_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/db47h/adder"
	"github.com/db47h/adder/addtest"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	r := require.New(t)
	var buf bytes.Buffer

	failed := addtest.Run(&buf, adder.Add4, addtest.Canonical())
	r.Equal(0, failed)
	r.Contains(buf.String(), "Test 2: overflow to carry")
	r.Contains(buf.String(), "  Inputs:  a = 15 (1111), b = 1 (0001), cin = 0")
	r.NotContains(buf.String(), "FAIL")

	buf.Reset()
	failed = addtest.Run(&buf, adder.Add4, []addtest.Vector{
		{Label: "bad expectation", A: 1, B: 1, Sum: 3},
	})
	r.Equal(1, failed)
	r.Contains(buf.String(), "  Outputs: sum = 2 (0010), cout = 0")
	r.Contains(buf.String(), "  FAIL:    want sum = 3 (0011), cout = 0")
}

func TestSummary(t *testing.T) {
	r := require.New(t)
	var buf bytes.Buffer

	failed := addtest.Summary(&buf, adder.Add4, addtest.Canonical(), true)
	r.Equal(0, failed)
	r.Contains(buf.String(), "maximum without carry")
	r.Contains(buf.String(), "15 (1111)")
	r.NotContains(buf.String(), "FAIL")

	buf.Reset()
	failed = addtest.Summary(&buf, adder.Add4, []addtest.Vector{
		{Label: "wrong", A: 2, B: 2, Sum: 5},
	}, false)
	r.Equal(1, failed)
	r.Contains(buf.String(), "FAIL: want sum=5")
}

func ExampleRun() {
	addtest.Run(os.Stdout, adder.Add4, addtest.Canonical())

	// Output:
	// Test 1: simple addition
	//   Inputs:  a = 3 (0011), b = 2 (0010), cin = 0
	//   Outputs: sum = 5 (0101), cout = 0
	// Test 2: overflow to carry
	//   Inputs:  a = 15 (1111), b = 1 (0001), cin = 0
	//   Outputs: sum = 0 (0000), cout = 1
	// Test 3: carry-in overflow
	//   Inputs:  a = 7 (0111), b = 8 (1000), cin = 1
	//   Outputs: sum = 0 (0000), cout = 1
	// Test 4: all zeroes
	//   Inputs:  a = 0 (0000), b = 0 (0000), cin = 0
	//   Outputs: sum = 0 (0000), cout = 0
	// Test 5: maximum without carry
	//   Inputs:  a = 8 (1000), b = 7 (0111), cin = 0
	//   Outputs: sum = 15 (1111), cout = 0
}
