// Command tapec builds one of a fixed set of named demo programs with
// package gen and writes the resulting tape code to stdout or a file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/hollowtape/tapegen/gen"
)

var demos = map[string]func(g *gen.Generator){
	"hello": func(g *gen.Generator) {
		g.PrintString("Hello, World!\n")
	},
	"decimal": func(g *gen.Generator) {
		g.GoTo(g.Root().Start)
		g.SetCell(245, nil)
		g.PrintDecimal()
	},
	"divmod": func(g *gen.Generator) {
		target := g.Root().Start
		remainder := g.Root().Start + 1
		g.GoTo(target)
		g.SetCell(100, nil)
		if err := g.Divide(6, nil, &remainder, nil); err != nil {
			panic(err)
		}
		g.GoTo(target)
		g.PrintCurrent()
		g.GoTo(remainder)
		g.PrintCurrent()
	},
	"digitcheck": func(g *gen.Generator) {
		g.GoTo(g.Root().Start)
		g.ReadByte()
		g.Sub('0', nil)
		var cases []gen.Case
		for d := 0; d <= 9; d++ {
			d := d
			cases = append(cases, gen.Case{Value: d, Body: func(inner *gen.Generator) {
				inner.PrintString("You entered " + strconv.Itoa(d) + "!")
			}})
		}
		g.IfElifElse(cases, func(inner *gen.Generator) {
			inner.PrintString("You didn't enter a digit!")
		}, true, true)
	},
	"multiply": func(g *gen.Generator) {
		g.GoTo(g.Root().Start)
		g.SetCell(97, nil)
		g.Multiply(3, gen.Hint(97))
	},
}

func main() {
	name := flag.String("demo", "hello", "Demo program to build: one of hello, decimal, divmod, digitcheck, multiply.")
	threshold := flag.Int("threshold", gen.DefaultThreshold, "Value-changer threshold.")
	wrap := flag.Int("wrap", 0, "Wrap emitted code at this column (0 disables wrapping).")
	out := flag.String("out", "", "Output file. Empty means stdout.")
	flag.Parse()

	build, ok := demos[*name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown demo %q. Usage: %s -demo=<name>\n", *name, os.Args[0])
		os.Exit(1)
	}

	g := gen.New(gen.Config{ValueChangerThreshold: *threshold})
	build(g)
	code, err := g.Code()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation error: %v\n", err)
		os.Exit(1)
	}

	if *wrap > 0 {
		code = gen.WrapCode(code, *wrap)
	}

	if *out == "" {
		fmt.Println(code)
		return
	}
	if err := os.WriteFile(*out, []byte(code), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Tape code for demo %q written to %s\n", *name, *out)
}
