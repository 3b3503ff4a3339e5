// Command taperun loads tape code from a file and executes it against
// package tape's Interpreter, logging step counts and failures.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hollowtape/tapegen/tape"
)

var (
	steps = flag.Int("steps", 0, "Maximum instructions to execute before failing (0 means unlimited).")
	in    = flag.String("in", "", "File to use as stdin for ',' instructions. Empty means no input available.")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Println("Usage: taperun [options] <codefile>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	code, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("Couldn't read code file: %v", err)
	}

	ip := tape.New()
	ip.Stdout = os.Stdout
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatalf("Couldn't open input file: %v", err)
		}
		defer f.Close()
		ip.Stdin = f
	}

	log.Printf("Running %d bytes of code from %s...", len(code), filename)

	if *steps > 0 {
		err = ip.RunLimited(string(code), *steps)
	} else {
		err = ip.Run(string(code))
	}
	if err != nil {
		log.Fatalf("Execution failed after %d steps: %v", ip.Steps(), err)
	}

	log.Printf("Execution finished successfully after %d steps.", ip.Steps())
}
