// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/db47h/nandram"
	"github.com/db47h/nandram/machine"
	"github.com/spf13/cobra"
)

// location of the demo string
const printLoc = 0x2e

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Store and read back a few characters.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMachine(cmd)
		if err != nil {
			return err
		}
		if err = demo(m, cmd.OutOrStdout()); err != nil {
			return err
		}
		if GetFlag(cmd, "dump") {
			out := cmd.OutOrStdout()
			return m.Dump(out, dumpColumns(m, out))
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().Bool("dump", false, "dump memory contents when done")
	rootCmd.AddCommand(demoCmd)
}

func demo(m *machine.Machine, w io.Writer) error {
	fmt.Fprintln(w, "Emulation start")
	for i, r := range "He" {
		addr := nandram.AddressOf(uint64(i), m.AddressWidth())
		data, err := machine.CharBits(r, m.DataWidth())
		if err != nil {
			return err
		}
		if err = m.Write(addr, data); err != nil {
			return err
		}
		fmt.Fprintf(w, "RAM Address: %v <- %v (%q)\n", addr, data, r)
	}

	addr := nandram.AddressOf(1, m.AddressWidth())
	out, err := m.Read(addr)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "RAM Content: %v = %v (%q)\n", addr, out, machine.BitsChar(out))

	const s = "Hello world"
	if err = m.WriteString(printLoc, s); err != nil {
		return err
	}
	rs, err := m.ReadString(printLoc, len(s))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "RAM String: 0x%x = %q\n", printLoc, rs)
	return nil
}
