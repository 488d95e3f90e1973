// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/lce/asm"
	"github.com/ezrec/lce/diag"
	"github.com/ezrec/lce/translate"
)

func main() {
	var output string
	var origin uint
	var verbose bool
	var quiet bool
	var locales string

	flag.StringVar(&output, "o", "out.bin", "Binary output file")
	flag.UintVar(&origin, "origin", 0, "Address of the first instruction")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&quiet, "q", false, "Only report errors")
	flag.StringVar(&locales, "locale", "", "Comma separated message locales")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [options] <file.lca>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if len(locales) != 0 {
		translate.SetLocales(strings.Split(locales, ",")...)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		atexit.Exit(2)
	}

	if origin > 0xffff {
		log.Printf("%v: origin 0x%x out of range", os.Args[0], origin)
		atexit.Exit(2)
	}

	input := flag.Arg(0)
	text, err := os.ReadFile(input)
	if err != nil {
		log.Printf("%v: %v", input, err)
		atexit.Exit(1)
	}

	printer := diag.NewPrinter(os.Stdout, os.Stderr)
	printer.Fatal = func(diag.Diagnostic) {
		atexit.Exit(1)
	}
	if quiet {
		printer.Threshold = diag.SEVERITY_ERROR
	}

	as := &asm.Assembler{
		Verbose: verbose,
		Sink:    printer,
		Origin:  uint16(origin),
	}

	prog, err := as.Assemble(input, string(text))
	if err != nil {
		log.Printf("%v: %v", input, err)
		atexit.Exit(1)
	}

	err = os.WriteFile(output, prog.Binary(), 0o644)
	if err != nil {
		log.Printf("%v: %v", output, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
