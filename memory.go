// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandram

import "github.com/pkg/errors"

// A Memory is an addressable bank of registers. The register selected by the
// address decoder is the only one that gets written to and the only one that
// drives the output bus.
//
type Memory struct {
	aw   int
	regs []*Register
}

// NewMemory returns a memory with 2^addrWidth registers of dataWidth bits.
//
func NewMemory(addrWidth, dataWidth int) (*Memory, error) {
	if addrWidth < 1 || addrWidth > MaxAddressWidth {
		return nil, errors.Wrapf(ErrInvalidAddressWidth, "memory: %d bits", addrWidth)
	}
	if dataWidth < 1 {
		return nil, errors.Wrapf(ErrInvalidWidth, "memory: %d data bits", dataWidth)
	}
	m := &Memory{aw: addrWidth, regs: make([]*Register, 1<<uint(addrWidth))}
	for i := range m.regs {
		r, err := NewRegister(dataWidth)
		if err != nil {
			return nil, err
		}
		m.regs[i] = r
	}
	return m, nil
}

// Step runs the memory for one simulation step.
//
//	Inputs: we, re, addr[a], bus[d]
//	Outputs: out[d]
//	Function: sel := Decode(addr)
//	          for i := range registers {
//	              _, set := DMux(we, sel[i])
//	              _, enable := DMux(re, sel[i])
//	              cand := register[i].Step(bus, set, enable)
//	              out = MuxN(out, cand, sel[i])
//	          }
//
// Every register is stepped and multiplexed on every call. When re is 0 the
// output is all zeros. Widths are checked before any register is touched.
//
func (m *Memory) Step(we, re Bit, addr Address, bus Word) (Word, error) {
	if len(addr) != m.aw {
		return nil, errors.Wrap(widthError("memory address", len(addr), m.aw), "step")
	}
	if dw := m.DataWidth(); len(bus) != dw {
		return nil, errors.Wrap(widthError("memory bus", len(bus), dw), "step")
	}
	sel, err := Decode(addr)
	if err != nil {
		return nil, err
	}
	out := make(Word, m.DataWidth())
	for i, r := range m.regs {
		_, set := DMux(we, sel[i])
		_, enable := DMux(re, sel[i])
		cand, err := r.Step(bus, set, enable)
		if err != nil {
			return nil, err
		}
		out = MuxN(out, cand, sel[i])
	}
	return out, nil
}

// AddressWidth returns the width of addresses in bits.
//
func (m *Memory) AddressWidth() int { return m.aw }

// DataWidth returns the width of the data bus in bits.
//
func (m *Memory) DataWidth() int { return m.regs[0].Width() }

// Size returns the number of registers in m.
//
func (m *Memory) Size() int { return len(m.regs) }

// Register returns the i-th register of m. It is meant for inspection;
// stepping it directly bypasses the address decoder.
//
func (m *Memory) Register(i int) *Register { return m.regs[i] }
