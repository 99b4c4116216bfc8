// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/db47h/nandram/machine"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nandram",
	Short: "A NAND gate level memory emulator.",
	Long: `nandram emulates registers and memory built from NAND gates only.
Memory is driven either by the built-in demo or by a Starlark script.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int("addr-bits", 8, "address width in bits")
	rootCmd.PersistentFlags().Int("data-bits", 8, "data width in bits")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log memory accesses")
}

// GetFlag gets an expected boolean flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// GetInt gets an expected int flag, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// newMachine builds a machine from the command line flags.
func newMachine(cmd *cobra.Command) (*machine.Machine, error) {
	cfg := machine.DefaultConfig()
	cfg.AddressWidth = GetInt(cmd, "addr-bits")
	cfg.DataWidth = GetInt(cmd, "data-bits")
	return machine.New(cfg)
}

// dumpColumns returns how many dump entries fit on a line of w when w is a
// terminal.
func dumpColumns(m *machine.Machine, w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 4
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 4
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 4
	}
	// "addr: bits (hex 'c')" plus two separator spaces
	entry := (m.AddressWidth()+3)/4 + 2 + m.DataWidth() + 2 + (m.DataWidth()+3)/4 + 5 + 2
	if cols := width / entry; cols > 0 {
		return cols
	}
	return 1
}
