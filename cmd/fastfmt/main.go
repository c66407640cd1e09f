// Command fastfmt formats typed values from the command line through the
// fastfmt engine. It is handy for checking how a value renders and how much
// buffer it needs.
//
//	fastfmt render --cap 32 wstr:"This number is: " i32:-153
//	fastfmt array --kind i32 1 2 3 4 5
//	fastfmt measure f64:-0.12345678912345
//	fastfmt kinds
package main

import (
	"context"
	"fmt"
	"os"
)

var version = "v0.1.0"

func main() {
	cmd := newCommand(os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
