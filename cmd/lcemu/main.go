// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/lce/asm"
	"github.com/ezrec/lce/diag"
	"github.com/ezrec/lce/emulator"
	"github.com/ezrec/lce/translate"
)

// saveDrums writes every modified drum back to its image file.
func saveDrums(machine *emulator.Machine, dir string) {
	for path, drum := range machine.Drums() {
		if !drum.Dirty {
			continue
		}

		name := filepath.Join(dir, path)
		ouf, err := os.Create(name)
		if err != nil {
			log.Printf("%v: %v", name, err)
			continue
		}

		err = drum.Marshal(ouf)
		if err == nil {
			err = ouf.Close()
		} else {
			ouf.Close()
		}
		if err != nil {
			log.Printf("%v: %v", name, err)
		}
	}
}

// load assembles or reads the program, and loads it into the emulator.
func load(emu *emulator.Emulator, program string, verbose bool, printer diag.Sink) (err error) {
	data, err := os.ReadFile(program)
	if err != nil {
		return
	}

	if filepath.Ext(program) != ".lca" {
		err = emu.LoadBinary(emu.Machine.Origin, data)
		return
	}

	as := &asm.Assembler{
		Verbose: verbose,
		Sink:    printer,
		Origin:  emu.Machine.Origin,
	}

	prog, err := as.Assemble(program, string(data))
	if err != nil {
		return
	}

	err = emu.Load(prog)

	return
}

func main() {
	var machine_file string
	var max_steps int
	var input string
	var output string
	var verbose bool
	var dump bool
	var locales string

	flag.StringVar(&machine_file, "m", "", "Machine description (.star); default is RAM with a tape at 0xff00")
	flag.IntVar(&max_steps, "n", -1, "Instruction limit, 0 for none; default from the machine")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "d", false, "Dump registers on exit")
	flag.StringVar(&locales, "locale", "", "Comma separated message locales")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [options] <file.lca|file.bin>\n", os.Args[0])
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
	program := flag.Arg(0)

	machine := emulator.DefaultMachine()
	if len(machine_file) != 0 {
		dir := filepath.Dir(machine_file)
		var err error
		machine, err = emulator.LoadMachine(os.DirFS(dir), filepath.Base(machine_file))
		if err != nil {
			log.Printf("%v: %v", machine_file, err)
			atexit.Exit(1)
		}
		atexit.Register(func() {
			saveDrums(machine, dir)
		})
	}

	printer := diag.NewPrinter(os.Stderr, os.Stderr)
	if verbose {
		printer.Threshold = diag.SEVERITY_INFO
	}

	emu, err := emulator.NewEmulator(machine)
	if err != nil {
		log.Printf("%v: %v", program, err)
		atexit.Exit(1)
	}
	emu.Verbose = verbose
	emu.Sink = printer
	if max_steps >= 0 {
		emu.MaxSteps = max_steps
	}

	if dump {
		atexit.Register(func() {
			fmt.Fprint(os.Stderr, emu.Cpu.String())
		})
	}

	err = load(emu, program, verbose, printer)
	if err != nil {
		log.Printf("%v: %v", program, err)
		atexit.Exit(1)
	}

	tape := machine.Tape()
	if tape != nil {
		if input == "-" {
			tape.Input = os.Stdin
		} else {
			inf, err := os.Open(input)
			if err != nil {
				log.Printf("%v: %v", input, err)
				atexit.Exit(1)
			}
			atexit.Register(func() { inf.Close() })
			tape.Input = inf
		}

		if output == "-" {
			tape.Output = os.Stdout
		} else {
			ouf, err := os.Create(output)
			if err != nil {
				log.Printf("%v: %v", output, err)
				atexit.Exit(1)
			}
			atexit.Register(func() { ouf.Close() })
			tape.Output = ouf
		}
	}

	emu.Reset()
	err = emu.Run()
	if err != nil {
		log.Print(err)
		atexit.Exit(1)
	}

	for tape := range machine.Tapes() {
		if tape.Err != nil {
			log.Printf("tape: %v", tape.Err)
			atexit.Exit(1)
		}
	}

	atexit.Exit(0)
}
