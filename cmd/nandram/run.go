// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"github.com/db47h/nandram/script"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] script_file",
	Short: "Run a Starlark script against the memory.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMachine(cmd)
		if err != nil {
			return err
		}
		if err = script.Run(m, args[0], nil, cmd.OutOrStdout()); err != nil {
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
	runCmd.Flags().Bool("dump", false, "dump memory contents when done")
	rootCmd.AddCommand(runCmd)
}
