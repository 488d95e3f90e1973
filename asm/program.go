package asm

import (
	"iter"
)

// Opcode is a single encoded instruction of a program.
type Opcode struct {
	Instruction Instruction
	Ip          uint16  // Address of the first byte.
	Codes       []uint8 // Encoded bytes.
}

// Program is the listing of an assembled source file.
type Program struct {
	Origin  uint16 // Address of the first opcode.
	Opcodes []Opcode
}

// Debug is the opcode covering an address, and the address's index into
// the opcode's codes.
type Debug struct {
	*Opcode
	Index int
}

// Debug finds the opcode that covers ip. The Debug's Opcode is nil if
// ip is not part of the program.
func (prog *Program) Debug(ip uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		start := int(op.Ip)
		if int(ip) >= start && int(ip) < start+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(ip) - start,
			}
			break
		}
	}

	return
}

// Binary returns the program's bytes, to be loaded at Origin.
func (prog *Program) Binary() (bins []uint8) {
	for _, code := range prog.Codes() {
		bins = append(bins, code)
	}

	return
}

// Codes iterates over every byte of the program and its address.
func (prog *Program) Codes() iter.Seq2[uint16, uint8] {
	return func(yield func(ip uint16, code uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Ip+uint16(n), code) {
					return
				}
			}
		}
	}
}
