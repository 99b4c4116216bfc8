// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandram

import (
	"strings"

	"github.com/pkg/errors"
)

// A Bit is a logic level, either Lo (0) or Hi (1). Functions in this package
// assume that Bit values are always 0 or 1.
//
type Bit uint8

// Logic levels.
//
const (
	Lo Bit = 0
	Hi Bit = 1
)

// Bool returns a Bit for the given boolean.
//
func Bool(b bool) Bit {
	if b {
		return Hi
	}
	return Lo
}

// A Word is a sequence of data bits, most significant bit first.
//
type Word []Bit

// An Address is a sequence of address bits, most significant bit first.
//
// Address and Word share the same representation but are distinct types so
// that address lines and data lines cannot be mixed up by accident.
//
type Address []Bit

// WordOf returns the low width bits of v as a Word.
//
func WordOf(v uint64, width int) Word {
	return Word(expand(v, width))
}

// AddressOf returns the low width bits of v as an Address.
//
func AddressOf(v uint64, width int) Address {
	return Address(expand(v, width))
}

// Uint64 returns the value of w. Bits above 64 are lost.
//
func (w Word) Uint64() uint64 { return fold(w) }

func (w Word) String() string { return format(w) }

// Uint64 returns the value of a. Bits above 64 are lost.
//
func (a Address) Uint64() uint64 { return fold(a) }

func (a Address) String() string { return format(a) }

// ParseWord parses a string of '0' and '1' runes, most significant bit first.
// The '_' rune can be used as a digit separator: "0110_0101".
//
func ParseWord(s string) (Word, error) {
	b, err := parse(s)
	return Word(b), err
}

// ParseAddress works like ParseWord and returns an Address.
//
func ParseAddress(s string) (Address, error) {
	b, err := parse(s)
	return Address(b), err
}

func expand(v uint64, width int) []Bit {
	if width < 0 {
		width = 0
	}
	out := make([]Bit, width)
	for i := range out {
		shift := uint(width - i - 1)
		if shift < 64 {
			out[i] = Bit(v >> shift & 1)
		}
	}
	return out
}

func fold(bits []Bit) uint64 {
	var v uint64
	for _, b := range bits {
		v = v<<1 | uint64(b&1)
	}
	return v
}

func format(bits []Bit) string {
	var b strings.Builder
	b.Grow(len(bits))
	for _, v := range bits {
		b.WriteByte('0' + byte(v&1))
	}
	return b.String()
}

func parse(s string) ([]Bit, error) {
	out := make([]Bit, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			out = append(out, Lo)
		case '1':
			out = append(out, Hi)
		case '_':
		default:
			return nil, errors.Wrapf(ErrInvalidBit, "in %q at pos %d", s, i+1)
		}
	}
	return out, nil
}
