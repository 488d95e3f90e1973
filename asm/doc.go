// Package asm implements the assembler for the little computer.
//
// Source text is split into lexems by a Lexer, grouped into one
// Instruction per line by the Assembler's parser, checked against the
// legal operand shapes of the isa package, and finally encoded into the
// variable length binary instruction format.
//
// There are no labels, macros or expressions: every operand is a register,
// a numeric literal, or a bracketed register or literal address.
package asm
