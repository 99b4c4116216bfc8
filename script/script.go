// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package script drives a machine.Machine from a Starlark script.
//
// The following names are predeclared:
//
//	address_width            address width in bits
//	data_width               data width in bits
//	write(addr, data)        store the integer data at addr
//	read(addr)               return the integer stored at addr
//	write_string(addr, s)    store s one character per word, starting at addr
//	read_string(addr, n)     return the n characters stored from addr
//
// For example:
//
//	write_string(0x2e, "Hello world")
//	print(read_string(0x2e, 5))
//
package script

import (
	"fmt"
	"io"

	"github.com/db47h/nandram/machine"
	"github.com/pkg/errors"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Run executes the script src with m. The filename is only used in error
// messages. src may be nil, in which case the script is read from filename,
// or anything accepted by starlark.ExecFileOptions. Output of the print
// builtin goes to out.
//
func Run(m *machine.Machine, filename string, src any, out io.Writer) error {
	thread := &starlark.Thread{
		Name: "nandram",
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(out, msg)
		},
	}
	opts := syntax.FileOptions{}
	_, err := starlark.ExecFileOptions(&opts, thread, filename, src, Builtins(m))
	return errors.Wrap(err, "script")
}

// Builtins returns the predeclared names bound to m.
//
func Builtins(m *machine.Machine) starlark.StringDict {
	return starlark.StringDict{
		"address_width": starlark.MakeInt(m.AddressWidth()),
		"data_width":    starlark.MakeInt(m.DataWidth()),
		"write":         starlark.NewBuiltin("write", write(m)),
		"read":          starlark.NewBuiltin("read", read(m)),
		"write_string":  starlark.NewBuiltin("write_string", writeString(m)),
		"read_string":   starlark.NewBuiltin("read_string", readString(m)),
	}
}

type builtinFn func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func write(m *machine.Machine) builtinFn {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr, data int
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "data", &data); err != nil {
			return nil, err
		}
		if addr < 0 || data < 0 {
			return nil, errors.Errorf("%s: negative argument", b.Name())
		}
		if err := m.WriteUint(uint64(addr), uint64(data)); err != nil {
			return nil, err
		}
		return starlark.None, nil
	}
}

func read(m *machine.Machine) builtinFn {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr int
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr); err != nil {
			return nil, err
		}
		if addr < 0 {
			return nil, errors.Errorf("%s: negative address", b.Name())
		}
		v, err := m.ReadUint(uint64(addr))
		if err != nil {
			return nil, err
		}
		return starlark.MakeUint64(v), nil
	}
}

func writeString(m *machine.Machine) builtinFn {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var (
			addr int
			s    string
		)
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "s", &s); err != nil {
			return nil, err
		}
		if addr < 0 {
			return nil, errors.Errorf("%s: negative address", b.Name())
		}
		if err := m.WriteString(uint64(addr), s); err != nil {
			return nil, err
		}
		return starlark.None, nil
	}
}

func readString(m *machine.Machine) builtinFn {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr, n int
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "n", &n); err != nil {
			return nil, err
		}
		if addr < 0 {
			return nil, errors.Errorf("%s: negative address", b.Name())
		}
		s, err := m.ReadString(uint64(addr), n)
		if err != nil {
			return nil, err
		}
		return starlark.String(s), nil
	}
}
