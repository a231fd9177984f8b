// Command bigcalc is a calculator for arbitrary size decimal integers.
//
// Negative operands must follow a "--" so they are not read as flags:
//
//  bigcalc div --remainder -- -12341234 7
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
