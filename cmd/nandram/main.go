// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command nandram runs a NAND gate level memory emulator.
//
//	nandram demo
//	nandram run [--dump] script.star
//
package main

func main() {
	Execute()
}
