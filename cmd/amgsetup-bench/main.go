// Command amgsetup-bench reads a Matrix Market file, runs one classical
// Ruge-Stuben AMG setup pass over it, and reports timing and size stats.
// It is the CLI surface the core kernels deliberately exclude (§6: "There
// is no file I/O, wire protocol, or CLI surface in the core").
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
