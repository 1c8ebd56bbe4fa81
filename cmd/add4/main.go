// Command add4 exercises the 4-bit adder.
//
// Without arguments it runs the five canonical test vectors through
// the word-level adder and prints a report of each run. Positional
// arguments are test vectors of the form
//
//	add4 "a=3, b=2, cin=0, sum=5, cout=0"
//
// where values may use binary or hexadecimal notation and omitted
// expectations are computed by the reference arithmetic.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/db47h/adder"
	"github.com/db47h/adder/addtest"
	"github.com/markkurossi/text/superscript"
)

func main() {
	sweep := flag.Bool("sweep", false, "compare word-level and gate-level adders over the whole input domain")
	table := flag.Bool("table", false, "print a summary table instead of the full report")
	ascii := flag.Bool("ascii", false, "draw tables with ASCII borders")
	gates := flag.Bool("gates", false, "drive the gate-level ripple-carry implementation")
	flag.Parse()

	if *sweep {
		var n int
		for a := uint8(0); a < 16; a++ {
			for b := uint8(0); b < 16; b++ {
				for cin := uint8(0); cin < 2; cin++ {
					s0, c0 := adder.Add4(a, b, cin)
					s1, c1 := adder.RippleAdd4(a, b, cin)
					if s0 != s1 || c0 != c1 {
						fmt.Printf("a=%d, b=%d, cin=%d: word %d, %d gates %d, %d\n",
							a, b, cin, s0, c0, s1, c1)
						n++
					}
				}
			}
		}
		if n > 0 {
			log.Fatalf("%d mismatches between word-level and gate-level adders", n)
		}
		fmt.Println("word-level and gate-level adders agree on all 512 input combinations")
		return
	}

	f := adder.Add4
	if *gates {
		f = adder.RippleAdd4
	}

	var vs []addtest.Vector
	if args := flag.Args(); len(args) > 0 {
		for _, arg := range args {
			v, err := addtest.ParseVector(arg)
			if err != nil {
				log.Fatal(err)
			}
			vs = append(vs, v)
		}
	} else {
		vs = addtest.Canonical()
	}

	fmt.Printf("t = a + b + cin, sum = t mod 2%s, cout = t div 2%s\n\n",
		superscript.Itoa(4), superscript.Itoa(4))

	var failed int
	if *table {
		failed = addtest.Summary(os.Stdout, f, vs, *ascii)
	} else {
		failed = addtest.Run(os.Stdout, f, vs)
	}
	if failed > 0 {
		log.Fatalf("%d of %d vectors failed", failed, len(vs))
	}
}
