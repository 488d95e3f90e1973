package asm

import (
	"github.com/ezrec/lce/diag"
	"github.com/ezrec/lce/isa"
)

// Check is true if the instruction's operand types are legal for its opcode.
func (asm *Assembler) Check(instr Instruction) bool {
	_, ok := isa.Legal(instr.Opcode, instr.Operands[0].Type, instr.Operands[1].Type)
	return ok
}

// CheckSequence checks every instruction, reporting an Error at the
// location of each one that fails.
func (asm *Assembler) CheckSequence(instrs []Instruction) (ok bool) {
	ok = true

	for _, instr := range instrs {
		if asm.Check(instr) {
			continue
		}
		shape := instr.Shape()
		asm.report(diag.SEVERITY_ERROR, instr.Location, ErrShape{
			Opcode: shape.Opcode,
			First:  shape.First,
			Second: shape.Second,
		})
		ok = false
	}

	return
}
