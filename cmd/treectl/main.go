// Package main provides treectl, a command line front end that feeds values
// to the tree engine and prints what it computes.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	rootCmd := newRootCommand(&app{})

	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
