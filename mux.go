// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandram

// Mux returns a multiplexer output.
//
//	Inputs: a, b, sel
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(a, b, sel Bit) Bit {
	return Or(And(Not(sel), a), And(sel, b))
}

// DMux returns a demultiplexer output.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(in, sel Bit) (a, b Bit) {
	return And(in, Not(sel)), And(in, sel)
}

// MuxN is an n-bits Mux. a and b must have the same length.
//
//	Inputs: a[n], b[n], sel
//	Function: for i := range out { if sel == 0 { out[i] = a[i] } else { out[i] = b[i] } }
//
func MuxN(a, b Word, sel Bit) Word {
	out := make(Word, len(a))
	for i := range out {
		out[i] = Mux(a[i], b[i], sel)
	}
	return out
}
