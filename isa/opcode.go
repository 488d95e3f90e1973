package isa

import (
	"strings"
)

// Opcode is the 6 bit operation code of an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP  = Opcode(0)  // nop
	OP_MOV  = Opcode(1)  // mov
	OP_LDA  = Opcode(2)  // lda
	OP_STA  = Opcode(3)  // sta
	OP_ADD  = Opcode(4)  // add
	OP_SUB  = Opcode(5)  // sub
	OP_AND  = Opcode(6)  // and
	OP_OR   = Opcode(7)  // or
	OP_XOR  = Opcode(8)  // xor
	OP_NOT  = Opcode(9)  // not
	OP_SHL  = Opcode(10) // shl
	OP_SHR  = Opcode(11) // shr
	OP_PUSH = Opcode(12) // push
	OP_POP  = Opcode(13) // pop
	OP_JMP  = Opcode(14) // jmp
	OP_JZ   = Opcode(15) // jz
	OP_JV   = Opcode(16) // jv
	OP_JC   = Opcode(17) // jc
	OP_JN   = Opcode(18) // jn
	OP_CALL = Opcode(19) // call
	OP_RET  = Opcode(20) // ret
	OP_HLT  = Opcode(21) // hlt
)

// OP_COUNT is the number of defined opcodes.
const OP_COUNT = 22

// arity is the number of operands each opcode takes.
var arity = [OP_COUNT]int{
	OP_NOP:  0,
	OP_MOV:  2,
	OP_LDA:  2,
	OP_STA:  2,
	OP_ADD:  2,
	OP_SUB:  2,
	OP_AND:  2,
	OP_OR:   2,
	OP_XOR:  2,
	OP_NOT:  1,
	OP_SHL:  2,
	OP_SHR:  2,
	OP_PUSH: 1,
	OP_POP:  1,
	OP_JMP:  1,
	OP_JZ:   1,
	OP_JV:   1,
	OP_JC:   1,
	OP_JN:   1,
	OP_CALL: 1,
	OP_RET:  0,
	OP_HLT:  0,
}

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = func() map[string]Opcode {
	m := make(map[string]Opcode, OP_COUNT)
	for op := range Opcode(OP_COUNT) {
		m[op.String()] = op
	}
	return m
}()

// LookupOpcode finds the opcode for a mnemonic, ignoring case.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[strings.ToLower(mnemonic)]
	return
}

// Valid is true for a defined opcode.
func (op Opcode) Valid() bool {
	return op >= 0 && op < OP_COUNT
}

// Arity returns the number of operands the opcode takes.
func (op Opcode) Arity() int {
	if !op.Valid() {
		return 0
	}
	return arity[op]
}

// AddressSlot returns the operand slot that holds a memory address.
// Only lda (source, slot 1) and sta (destination, slot 0) address memory.
func (op Opcode) AddressSlot() (slot int, ok bool) {
	switch op {
	case OP_LDA:
		return 1, true
	case OP_STA:
		return 0, true
	}
	return
}
