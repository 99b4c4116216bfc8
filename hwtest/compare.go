// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/db47h/nandram"
)

// TruthTable lists the expected output of a two input gate for
// a=0 && b=0, a=0 && b=1, a=1 && b=0, a=1 && b=1.
//
type TruthTable [4]nandram.Bit

// CheckGate checks g against the truth table tt.
//
func CheckGate(t testing.TB, name string, g nandram.Gate, tt TruthTable) {
	t.Helper()
	for i, exp := range tt {
		a, b := nandram.Bit(i>>1&1), nandram.Bit(i&1)
		if got := g(a, b); got != exp {
			t.Errorf("%s(%d, %d): expected %d, got %d", name, a, b, exp, got)
		}
	}
}

// CompareGate takes two gates and compares their outputs given the same
// inputs, for all possible inputs.
//
func CompareGate(t testing.TB, name string, g1, g2 nandram.Gate) {
	t.Helper()
	var tt TruthTable
	for i := range tt {
		tt[i] = g2(nandram.Bit(i>>1&1), nandram.Bit(i&1))
	}
	CheckGate(t, name, g1, tt)
}

// RandomWord returns a random word of the given width.
//
func RandomWord(r *rand.Rand, width int) nandram.Word {
	w := make(nandram.Word, width)
	for i := range w {
		w[i] = nandram.Bool(r.Int63()&(1<<62) != 0)
	}
	return w
}

// RandomAddress returns a random address of the given width.
//
func RandomAddress(r *rand.Rand, width int) nandram.Address {
	return nandram.Address(RandomWord(r, width))
}

// Bits formats a list of bits like "0, 1, 1" for error messages.
//
func Bits(bits []nandram.Bit) string {
	var b strings.Builder
	for i, v := range bits {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('0' + byte(v))
	}
	return b.String()
}
