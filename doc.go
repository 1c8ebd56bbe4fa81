/*
Package adder implements fixed-width unsigned binary addition with carry,
the combinational building block at the bottom of every arithmetic logic
unit.

The canonical form is word-level: compute the full-precision sum once, then
split it into a sum field and a carry-out bit by the field's radix. This is
how a hardware description language collapses a whole carry chain into a
single continuous assignment. A structural, bit-by-bit ripple-carry
implementation is provided alongside it; both produce identical results
over their whole input domain, and package addtest can prove it.

*/
package adder
