// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package machine

import (
	"strings"

	"github.com/db47h/nandram"
	"github.com/pkg/errors"
)

// ErrUnmappable is returned for characters that have no bit pattern in the
// current data width.
//
var ErrUnmappable = errors.New("unmappable character")

// CharBits returns the bit pattern of r: its 7 bits ASCII code on width bits.
//
func CharBits(r rune, width int) (nandram.Word, error) {
	if r < 0 || r > 0x7f || uint64(r)>>uint(width) != 0 {
		return nil, errors.Wrapf(ErrUnmappable, "%q on %d bits", r, width)
	}
	return nandram.WordOf(uint64(r), width), nil
}

// BitsChar returns the character encoded by the low 7 bits of w.
//
func BitsChar(w nandram.Word) rune {
	return rune(w.Uint64() & 0x7f)
}

// WriteString stores s one character per word, starting at address at.
// Nothing is written if s does not fit in memory or contains a character that
// cannot be mapped.
//
func (m *Machine) WriteString(at uint64, s string) error {
	words := make([]nandram.Word, 0, len(s))
	for _, r := range s {
		w, err := CharBits(r, m.DataWidth())
		if err != nil {
			return err
		}
		words = append(words, w)
	}
	if !m.fits(at, len(words)) {
		return errors.Wrapf(ErrAddressRange, "string of length %d at 0x%x", len(words), at)
	}
	for i, w := range words {
		if err := m.Write(nandram.AddressOf(at+uint64(i), m.AddressWidth()), w); err != nil {
			return err
		}
	}
	return nil
}

// ReadString reads n characters starting at address at. Words that are not a
// 7 bits ASCII code are ErrUnmappable.
//
func (m *Machine) ReadString(at uint64, n int) (string, error) {
	if !m.fits(at, n) {
		return "", errors.Wrapf(ErrAddressRange, "string of length %d at 0x%x", n, at)
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		w, err := m.Read(nandram.AddressOf(at+uint64(i), m.AddressWidth()))
		if err != nil {
			return "", err
		}
		if v := w.Uint64(); v > 0x7f {
			return "", errors.Wrapf(ErrUnmappable, "word 0x%x at 0x%x", v, at+uint64(i))
		}
		b.WriteRune(BitsChar(w))
	}
	return b.String(), nil
}

// fits returns true if n words starting at address at are all in memory.
//
func (m *Machine) fits(at uint64, n int) bool {
	size := uint64(m.Size())
	return n >= 0 && at < size && uint64(n) <= size-at
}
