// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command bignum is a calculator for huge approximate numbers.
//
// Usage:
//
//	bignum parse <text>                  Normalize and print a value
//	bignum add|sub|mul|div <a> <b>       Arithmetic
//	bignum cmp|max|min <a> <b>           Comparison
//	bignum clamp <v> <lo> <hi>           Limit v to [lo, hi]
//	bignum scale <v> <factor>            Multiply v by a float factor
//
// Use --grouped to separate thousands with commas, and --raw to also print
// the base and the exponent.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
