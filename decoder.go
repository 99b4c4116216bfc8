// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandram

import "github.com/pkg/errors"

// MaxAddressWidth is the widest address Decode accepts. A decoder for N
// address bits has 2^N output lines.
//
const MaxAddressWidth = 20

// Decode expands an N bits address into 2^N select lines. Exactly one line is
// set: the one whose index is the value of addr read most significant bit
// first.
//
// The decoder is built recursively: the lines for the address tail are
// computed once, then gated by the negated head bit for the lower half of the
// output and by the head bit for the upper half.
//
//	Inputs: addr[N]
//	Outputs: out[2^N]
//	Function: out[i] = (i == addr)
//
func Decode(addr Address) ([]Bit, error) {
	if len(addr) == 0 || len(addr) > MaxAddressWidth {
		return nil, errors.Wrapf(ErrInvalidAddressWidth, "decode: %d bits", len(addr))
	}
	return decode(addr), nil
}

func decode(addr Address) []Bit {
	head := addr[0]
	if len(addr) == 1 {
		return []Bit{Not(head), head}
	}
	tail := decode(addr[1:])
	notHead := Not(head)
	out := make([]Bit, 2*len(tail))
	for i, l := range tail {
		out[i] = And(l, notHead)
		out[len(tail)+i] = And(l, head)
	}
	return out
}
