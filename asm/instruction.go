package asm

import (
	"fmt"

	"github.com/ezrec/lce/diag"
	"github.com/ezrec/lce/isa"
)

// Instruction is a single parsed line of assembly.
// The second operand is isa.None() for opcodes of arity less than two.
type Instruction struct {
	Opcode   isa.Opcode
	Operands [2]isa.Operand
	Location diag.Location
}

// Shape returns the instruction's opcode and operand types.
func (instr Instruction) Shape() isa.Shape {
	return isa.Shape{
		Opcode: instr.Opcode,
		First:  instr.Operands[0].Type,
		Second: instr.Operands[1].Type,
	}
}

// Count returns the number of operands present.
func (instr Instruction) Count() (count int) {
	for _, operand := range instr.Operands {
		if operand.Type != isa.OPERAND_NONE {
			count++
		}
	}
	return
}

// String returns the instruction in assembly syntax.
func (instr Instruction) String() string {
	switch instr.Count() {
	case 0:
		return instr.Opcode.String()
	case 1:
		return fmt.Sprintf("%v %v", instr.Opcode, instr.Operands[0])
	}
	return fmt.Sprintf("%v %v, %v", instr.Opcode, instr.Operands[0], instr.Operands[1])
}
