// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"log"

	"github.com/ezrec/lce/diag"
)

// Assembler turns assembly source into binary code.
//
// Every problem found is reported to Sink; a nil Sink discards them.
type Assembler struct {
	Verbose bool      // If set, verbosely logs the assembler actions.
	Sink    diag.Sink // Diagnostic destination.
	Origin  uint16    // Address of the first instruction.
}

// report sends a diagnostic to the assembler's sink.
func (asm *Assembler) report(severity diag.Severity, loc diag.Location, err error) {
	if asm.Verbose {
		log.Printf("%v: %v: %v", severity, loc, err)
	}
	diag.Report(asm.Sink, severity, loc, err)
}

// Assemble parses, checks and encodes a whole source file.
// No program is returned if any line failed to parse or check.
func (asm *Assembler) Assemble(file string, text string) (prog *Program, err error) {
	instrs, ok := asm.Parse(NewLexer(file, text))
	if !ok {
		err = ErrParse
		return
	}

	if !asm.CheckSequence(instrs) {
		err = ErrTypeCheck
		return
	}

	prog = asm.GenerateProgram(instrs, asm.Origin)

	return
}
