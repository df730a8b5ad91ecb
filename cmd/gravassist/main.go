// Command gravassist prints the answers to the fuel, Intcode, crossed-wire
// and passcode puzzles. Each subcommand prints part one and part two on
// separate lines.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
