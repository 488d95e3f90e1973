package asm

import (
	"fmt"
	"log"

	"github.com/ezrec/lce/diag"
	"github.com/ezrec/lce/isa"
)

// encode returns the binary encoding of a checked instruction,
// warning about any immediate that had to be truncated.
func (asm *Assembler) encode(instr Instruction) (codes []uint8) {
	for _, operand := range instr.Operands {
		if operand.IsImmediate() && isa.Truncated(operand.Value) {
			asm.report(diag.SEVERITY_WARNING, instr.Location, ErrImmediateTruncated(operand.Value))
		}
	}

	codes, err := isa.Encode(instr.Opcode, instr.Operands[0], instr.Operands[1])
	if err != nil {
		// Unchecked instructions never reach the encoder.
		panic(fmt.Sprintf("%v: %v: %v", instr.Location, instr, err))
	}

	return
}

// Generate encodes a sequence of checked instructions.
// The output depends only on the instructions.
func (asm *Assembler) Generate(instrs []Instruction) (codes []uint8) {
	for _, instr := range instrs {
		codes = append(codes, asm.encode(instr)...)
	}

	return
}

// GenerateProgram encodes a sequence of checked instructions into a
// program listing placed at origin.
func (asm *Assembler) GenerateProgram(instrs []Instruction, origin uint16) (prog *Program) {
	prog = &Program{
		Origin: origin,
	}

	ip := origin
	for _, instr := range instrs {
		codes := asm.encode(instr)
		if asm.Verbose {
			log.Printf("%04x: %-20v % x", ip, instr, codes)
		}
		prog.Opcodes = append(prog.Opcodes, Opcode{
			Instruction: instr,
			Ip:          ip,
			Codes:       codes,
		})
		ip += uint16(len(codes))
	}

	return
}
