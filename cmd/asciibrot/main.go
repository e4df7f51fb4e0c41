package main

import (
	"os"
)

// main is the entry point for the asciibrot CLI. It exits with status 1 if
// the command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
