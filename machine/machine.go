// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package machine wires an address register and a nandram.Memory together the
// way a simple computer would: the address is first latched into the address
// register ("A" register), then the memory is stepped with the latched
// address and the data bus.
//
package machine

import (
	"github.com/db47h/nandram"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrAddressRange is returned when an address does not fit in the address
// register.
//
var ErrAddressRange = errors.New("address out of range")

// Config holds the parameters of a Machine.
//
type Config struct {
	// AddressWidth is the width of the address register and address bus.
	AddressWidth int
	// DataWidth is the width of the data bus and of each memory register.
	DataWidth int
	// Logger receives debug traces of memory accesses. If nil,
	// logrus.StandardLogger() is used.
	Logger logrus.FieldLogger
}

// DefaultConfig returns the configuration of a 256 bytes machine.
//
func DefaultConfig() Config {
	return Config{
		AddressWidth: nandram.DefaultWidth,
		DataWidth:    nandram.DefaultWidth,
		Logger:       logrus.StandardLogger(),
	}
}

// A Machine is an address register connected to a memory.
//
type Machine struct {
	ar  *nandram.Register
	ram *nandram.Memory
	log logrus.FieldLogger
}

// New returns a new Machine.
//
func New(cfg Config) (*Machine, error) {
	ram, err := nandram.NewMemory(cfg.AddressWidth, cfg.DataWidth)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create memory")
	}
	ar, err := nandram.NewRegister(cfg.AddressWidth)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create address register")
	}
	l := cfg.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Machine{ar: ar, ram: ram, log: l}, nil
}

// latch loads addr into the address register without driving its output.
//
func (m *Machine) latch(addr nandram.Address) (nandram.Address, error) {
	if _, err := m.ar.Step(nandram.Word(addr), nandram.Hi, nandram.Lo); err != nil {
		return nil, errors.Wrap(err, "address register")
	}
	return nandram.Address(m.ar.Data()), nil
}

// step latches addr then steps the memory with the given bus.
//
func (m *Machine) step(op string, we, re nandram.Bit, addr nandram.Address, bus nandram.Word) (nandram.Word, error) {
	// check the bus first so that a bad call does not even touch the A register.
	if len(bus) != m.ram.DataWidth() {
		return nil, errors.Wrapf(nandram.ErrWidthMismatch, "%s: bus: got %d bits, want %d", op, len(bus), m.ram.DataWidth())
	}
	a, err := m.latch(addr)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	out, err := m.ram.Step(we, re, a, bus)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	m.log.WithFields(logrus.Fields{
		"addr": a.String(),
		"bus":  bus.String(),
		"out":  out.String(),
	}).Debug("ram " + op)
	return out, nil
}

// Write stores data at addr.
//
func (m *Machine) Write(addr nandram.Address, data nandram.Word) error {
	_, err := m.step("write", nandram.Hi, nandram.Lo, addr, data)
	return err
}

// Read returns the word stored at addr. The data bus is idle (all zeros)
// during the read.
//
func (m *Machine) Read(addr nandram.Address) (nandram.Word, error) {
	return m.step("read", nandram.Lo, nandram.Hi, addr, make(nandram.Word, m.ram.DataWidth()))
}

// WriteUint stores the low DataWidth() bits of v at address addr.
//
func (m *Machine) WriteUint(addr, v uint64) error {
	a, err := m.address(addr)
	if err != nil {
		return err
	}
	return m.Write(a, nandram.WordOf(v, m.DataWidth()))
}

// ReadUint returns the value stored at address addr.
//
func (m *Machine) ReadUint(addr uint64) (uint64, error) {
	a, err := m.address(addr)
	if err != nil {
		return 0, err
	}
	w, err := m.Read(a)
	if err != nil {
		return 0, err
	}
	return w.Uint64(), nil
}

func (m *Machine) address(addr uint64) (nandram.Address, error) {
	if addr >= uint64(m.ram.Size()) {
		return nil, errors.Wrapf(ErrAddressRange, "0x%x", addr)
	}
	return nandram.AddressOf(addr, m.AddressWidth()), nil
}

// AddressWidth returns the address width in bits.
//
func (m *Machine) AddressWidth() int { return m.ram.AddressWidth() }

// DataWidth returns the data width in bits.
//
func (m *Machine) DataWidth() int { return m.ram.DataWidth() }

// Size returns the number of addressable words.
//
func (m *Machine) Size() int { return m.ram.Size() }

// AddressRegister returns the content of the address register.
//
func (m *Machine) AddressRegister() nandram.Address { return nandram.Address(m.ar.Data()) }
