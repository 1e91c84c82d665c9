// Package main provides the gdsgen CLI: layout generation, resizing and
// conversion front end for the gds library.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
