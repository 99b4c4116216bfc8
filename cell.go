// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandram

// A Cell is a one bit storage cell with set and enable controls.
//
// The zero value is a cell holding 0.
//
type Cell struct {
	q Bit
}

// Step updates the cell and returns its output.
//
//	Inputs: in, set, enable
//	Outputs: out
//	Function: if set == 1 { q = in }
//	          out = q && enable
//
// A disabled cell outputs 0. Real hardware would leave its output floating;
// this model approximates the high impedance state with a low level so that
// outputs can be combined with AND/OR gates.
//
func (c *Cell) Step(in, set, enable Bit) Bit {
	keep := And(Not(set), c.q)
	write := And(set, in)
	c.q = Or(keep, write)
	return And(c.q, enable)
}

// Value returns the bit currently held by the cell.
//
func (c *Cell) Value() Bit { return c.q }
