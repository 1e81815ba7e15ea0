// Command while is the CLI entry point; see package cmd for the command
// tree itself.
package main

import (
	"fmt"
	"os"

	"github.com/whilelang/interp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
