// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandram

import "github.com/pkg/errors"

// Structural errors. They are returned wrapped with some context, use
// errors.Is or errors.Cause to test for them.
//
var (
	// ErrWidthMismatch is returned when a bit sequence does not have the
	// width declared by the register, memory or address it is fed to.
	ErrWidthMismatch = errors.New("width mismatch")
	// ErrInvalidAddressWidth is returned for zero-width addresses or for
	// address widths above MaxAddressWidth.
	ErrInvalidAddressWidth = errors.New("invalid address width")
	// ErrInvalidWidth is returned for zero or negative data widths.
	ErrInvalidWidth = errors.New("invalid width")
	// ErrInvalidBit is returned when parsing a rune other than '0', '1' or '_'.
	ErrInvalidBit = errors.New("invalid bit")
)

func widthError(what string, got, want int) error {
	return errors.Wrapf(ErrWidthMismatch, "%s: got %d bits, want %d", what, got, want)
}
