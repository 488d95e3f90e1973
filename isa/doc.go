// Package isa defines the Little Computer instruction set: opcodes,
// registers, operand types, the table of legal operand shapes, and the
// binary instruction encoding.
//
// The assembler encodes through Encode and the CPU decodes through Decode.
// Both consult the same shape table, so an instruction the assembler
// accepts is always one the CPU can execute.
//
// Byte 0 of an instruction holds the opcode in its high 6 bits and the
// type tag of the first operand in its low 2 bits. Depending on the
// operand shape, a second byte carries register indices and the type tag
// of the second operand, followed by up to two little-endian immediate
// bytes. Instructions are 1 to 4 bytes long.
package isa
