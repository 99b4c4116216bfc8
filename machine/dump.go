// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package machine

import (
	"fmt"
	"io"
	"strconv"
	"unicode"
)

// Dump writes the non-zero words in memory to w, cols entries per line.
// Each entry reads "addr: bits (hex 'c')". The memory is inspected directly,
// without going through the bus.
//
func (m *Machine) Dump(w io.Writer, cols int) error {
	if cols < 1 {
		cols = 1
	}
	aDigits := (m.AddressWidth() + 3) / 4
	dDigits := (m.DataWidth() + 3) / 4
	n := 0
	for i := 0; i < m.Size(); i++ {
		data := m.ram.Register(i).Data()
		v := data.Uint64()
		if v == 0 {
			continue
		}
		c := BitsChar(data)
		if v > 0x7f || !unicode.IsPrint(c) {
			c = '.'
		}
		sep := ""
		if n > 0 {
			sep = "  "
			if n%cols == 0 {
				sep = "\n"
			}
		}
		if _, err := fmt.Fprintf(w, "%s%0*x: %s (%0*x %s)", sep, aDigits, i, data, dDigits, v, strconv.QuoteRune(c)); err != nil {
			return err
		}
		n++
	}
	if n > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
