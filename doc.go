/*
Package nandram emulates registers and addressable memory built from a single
universal gate: NAND.

Gates (Not, And, Or, Mux, ...) are plain functions composed from Nand. They
are used to build an address decoder, a one bit storage Cell, a Register and
finally a Memory that multiplexes the output of its registers onto a shared
bus.

The model settles combinationally on every call: there is no clock and no
propagation delay. Each call to Step is a complete state transition.

	mem, _ := nandram.NewMemory(8, 8)
	addr := nandram.AddressOf(0x01, 8)
	mem.Step(nandram.Hi, nandram.Lo, addr, nandram.WordOf('e', 8))
	out, _ := mem.Step(nandram.Lo, nandram.Hi, addr, nandram.WordOf(0, 8))
	// out.Uint64() == 'e'

*/
package nandram
