package isa

import (
	"iter"
	"maps"
)

// Form is the encoding layout selected by an operand shape.
type Form int

//go:generate go tool stringer -linecomment -type=Form
const (
	FORM_NONE = Form(0) // none
	FORM_R    = Form(1) // r
	FORM_I    = Form(2) // i
	FORM_RR   = Form(3) // rr
	FORM_RI   = Form(4) // ri
	FORM_IR   = Form(5) // ir
)

// Shape is an opcode together with the types of its two operands.
type Shape struct {
	Opcode Opcode
	First  OperandType
	Second OperandType
}

const (
	_N  = OPERAND_NONE
	_R  = OPERAND_REGISTER
	_I  = OPERAND_IMMEDIATE
	_IA = OPERAND_IMMEDIATE_ADDRESS
	_RA = OPERAND_REGISTER_ADDRESS
)

// shapes is the table of every legal instruction shape, and the encoding
// form each one uses.
var shapes = map[Shape]Form{
	{OP_MOV, _R, _R}: FORM_RR,
	{OP_MOV, _R, _I}: FORM_RI,

	{OP_LDA, _R, _I}:  FORM_RI,
	{OP_LDA, _R, _IA}: FORM_RI,
	{OP_LDA, _R, _R}:  FORM_RR,
	{OP_LDA, _R, _RA}: FORM_RR,

	{OP_STA, _I, _R}:  FORM_IR,
	{OP_STA, _IA, _R}: FORM_IR,
	{OP_STA, _R, _R}:  FORM_RR,
	{OP_STA, _RA, _R}: FORM_RR,

	{OP_ADD, _R, _R}: FORM_RR,
	{OP_ADD, _R, _I}: FORM_RI,
	{OP_SUB, _R, _R}: FORM_RR,
	{OP_SUB, _R, _I}: FORM_RI,
	{OP_AND, _R, _R}: FORM_RR,
	{OP_AND, _R, _I}: FORM_RI,
	{OP_OR, _R, _R}:  FORM_RR,
	{OP_OR, _R, _I}:  FORM_RI,
	{OP_XOR, _R, _R}: FORM_RR,
	{OP_XOR, _R, _I}: FORM_RI,
	{OP_SHL, _R, _R}: FORM_RR,
	{OP_SHL, _R, _I}: FORM_RI,
	{OP_SHR, _R, _R}: FORM_RR,
	{OP_SHR, _R, _I}: FORM_RI,

	{OP_NOT, _R, _N}: FORM_R,
	{OP_POP, _R, _N}: FORM_R,

	{OP_PUSH, _R, _N}: FORM_R,
	{OP_PUSH, _I, _N}: FORM_I,
	{OP_JMP, _R, _N}:  FORM_R,
	{OP_JMP, _I, _N}:  FORM_I,
	{OP_JZ, _R, _N}:   FORM_R,
	{OP_JZ, _I, _N}:   FORM_I,
	{OP_JV, _R, _N}:   FORM_R,
	{OP_JV, _I, _N}:   FORM_I,
	{OP_JC, _R, _N}:   FORM_R,
	{OP_JC, _I, _N}:   FORM_I,
	{OP_JN, _R, _N}:   FORM_R,
	{OP_JN, _I, _N}:   FORM_I,
	{OP_CALL, _R, _N}: FORM_R,
	{OP_CALL, _I, _N}: FORM_I,

	{OP_RET, _N, _N}: FORM_NONE,
	{OP_NOP, _N, _N}: FORM_NONE,
	{OP_HLT, _N, _N}: FORM_NONE,
}

// Legal returns the encoding form of a shape, if the shape is legal.
func Legal(op Opcode, first, second OperandType) (form Form, ok bool) {
	form, ok = shapes[Shape{Opcode: op, First: first, Second: second}]
	return
}

// Shapes iterates over every legal shape and its form.
func Shapes() iter.Seq2[Shape, Form] {
	return maps.All(shapes)
}
