// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandram

// Nand is the only primitive gate. Every other gate in this package is
// built from it.
//
//	Inputs: a, b
//	Function: out = !(a && b)
//
func Nand(a, b Bit) Bit {
	if a == Hi && b == Hi {
		return Lo
	}
	return Hi
}

// Not returns the negation of a.
//
//	Function: out = nand(a, a)
//
func Not(a Bit) Bit { return Nand(a, a) }

// And returns the conjunction of a and b.
//
//	Function: out = not(nand(a, b))
//
func And(a, b Bit) Bit { return Not(Nand(a, b)) }

// Or returns the disjunction of a and b.
//
//	Function: out = nand(not(a), not(b))
//
func Or(a, b Bit) Bit { return Nand(Not(a), Not(b)) }

// Nor returns a NOR b.
//
//	Function: out = not(or(a, b))
//
func Nor(a, b Bit) Bit { return Not(Or(a, b)) }

// Xor returns a XOR b, using the classic four NAND layout.
//
func Xor(a, b Bit) Bit {
	nab := Nand(a, b)
	return Nand(Nand(a, nab), Nand(b, nab))
}

// Xnor returns a XNOR b.
//
func Xnor(a, b Bit) Bit { return Not(Xor(a, b)) }

// A Gate is a two input logic gate.
//
type Gate func(a, b Bit) Bit
