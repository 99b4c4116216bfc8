// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandram

import "github.com/pkg/errors"

// DefaultWidth is the customary register width.
//
const DefaultWidth = 8

// A Register is a fixed width bank of storage cells sharing the same set and
// enable signals.
//
type Register struct {
	cells []Cell
}

// NewRegister returns a new register of the given width with all bits
// cleared.
//
func NewRegister(width int) (*Register, error) {
	if width < 1 {
		return nil, errors.Wrapf(ErrInvalidWidth, "register: %d bits", width)
	}
	return &Register{cells: make([]Cell, width)}, nil
}

// Step steps every cell of the register with its own input bit and the
// shared set and enable signals, and returns the cell outputs.
//
//	Inputs: in[n], set, enable
//	Outputs: out[n]
//	Function: for i := range out { out[i] = cell[i].Step(in[i], set, enable) }
//
// len(in) must match the register width. On width mismatch, the register is
// left untouched.
//
func (r *Register) Step(in Word, set, enable Bit) (Word, error) {
	if len(in) != len(r.cells) {
		return nil, widthError("register", len(in), len(r.cells))
	}
	out := make(Word, len(r.cells))
	for i := range r.cells {
		out[i] = r.cells[i].Step(in[i], set, enable)
	}
	return out, nil
}

// Width returns the register width in bits.
//
func (r *Register) Width() int { return len(r.cells) }

// Data returns a copy of the bits held by the register.
//
func (r *Register) Data() Word {
	w := make(Word, len(r.cells))
	for i := range r.cells {
		w[i] = r.cells[i].Value()
	}
	return w
}

func (r *Register) String() string { return "Register " + r.Data().String() }
