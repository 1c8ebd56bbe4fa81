// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package addtest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/adder"
	"github.com/markkurossi/tabulate"
)

// Run feeds the vectors to f in order and writes a three line report
// for each one to w:
//
//	Test 1: simple addition
//	  Inputs:  a = 3 (0011), b = 2 (0010), cin = 0
//	  Outputs: sum = 5 (0101), cout = 0
//
// A FAIL line with the expected outputs follows whenever f disagrees
// with the vector. Run returns the number of failed vectors.
//
func Run(w io.Writer, f adder.Func, vs []Vector) (failed int) {
	for i, v := range vs {
		sum, cout := f(v.A, v.B, v.Cin)
		fmt.Fprintf(w, "Test %d: %s\n", i+1, v.Label)
		fmt.Fprintf(w, "  Inputs:  a = %d (%04b), b = %d (%04b), cin = %d\n", v.A, v.A, v.B, v.B, v.Cin)
		fmt.Fprintf(w, "  Outputs: sum = %d (%04b), cout = %d\n", sum, sum, cout)
		if sum != v.Sum || cout != v.Cout {
			fmt.Fprintf(w, "  FAIL:    want sum = %d (%04b), cout = %d\n", v.Sum, v.Sum, v.Cout)
			failed++
		}
	}
	return failed
}

// Summary runs the vectors through f and renders a one line per vector
// result table to w. The table uses Unicode box drawing unless ascii
// is set. Like Run, it returns the number of failed vectors.
//
func Summary(w io.Writer, f adder.Func, vs []Vector, ascii bool) (failed int) {
	style := tabulate.UnicodeLight
	if ascii {
		style = tabulate.ASCII
	}
	tab := tabulate.New(style)
	tab.Header("Test").SetAlign(tabulate.ML)
	tab.Header("a").SetAlign(tabulate.MR)
	tab.Header("b").SetAlign(tabulate.MR)
	tab.Header("cin").SetAlign(tabulate.MR)
	tab.Header("sum").SetAlign(tabulate.MR)
	tab.Header("cout").SetAlign(tabulate.MR)
	tab.Header("Result").SetAlign(tabulate.ML)

	for _, v := range vs {
		sum, cout := f(v.A, v.B, v.Cin)
		row := tab.Row()
		row.Column(v.Label)
		row.Column(strconv.Itoa(int(v.A)))
		row.Column(strconv.Itoa(int(v.B)))
		row.Column(strconv.Itoa(int(v.Cin)))
		row.Column(fmt.Sprintf("%d (%04b)", sum, sum))
		row.Column(strconv.Itoa(int(cout)))
		if sum != v.Sum || cout != v.Cout {
			row.Column(fmt.Sprintf("FAIL: want sum=%d, cout=%d", v.Sum, v.Cout)).
				SetFormat(tabulate.FmtBold)
			failed++
		} else {
			row.Column("ok")
		}
	}
	tab.Print(w)
	return failed
}
