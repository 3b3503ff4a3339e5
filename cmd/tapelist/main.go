// Command tapelist loads a tape-code file and prints its package lister
// listing.
package main

import (
	"fmt"
	"os"

	"github.com/hollowtape/tapegen/lister"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <codefile> [outputfile]\n", os.Args[0])
		os.Exit(1)
	}

	inputFile := os.Args[1]
	var outputFile string
	if len(os.Args) == 3 {
		outputFile = os.Args[2]
	}

	code, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	listing, err := lister.List(string(code))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listing error: %v\n", err)
		os.Exit(1)
	}

	if outputFile == "" {
		fmt.Print(listing)
		return
	}
	if err := os.WriteFile(outputFile, []byte(listing), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Listing written to %s\n", outputFile)
}
