package isa

import (
	"fmt"
)

// OperandType is the syntactic kind of an operand.
type OperandType int

//go:generate go tool stringer -linecomment -type=OperandType
const (
	OPERAND_NONE              = OperandType(0) // none
	OPERAND_REGISTER          = OperandType(1) // register
	OPERAND_IMMEDIATE         = OperandType(2) // immediate
	OPERAND_IMMEDIATE_ADDRESS = OperandType(3) // immediate address
	OPERAND_REGISTER_ADDRESS  = OperandType(4) // register address
)

// Operand is a tagged operand value. Register is meaningful for the
// register types, Value for the immediate types.
type Operand struct {
	Type     OperandType
	Register Register
	Value    uint64 // Unbounded at parse time; truncated when encoded.
}

// None is the absent operand.
func None() Operand {
	return Operand{}
}

// Reg returns a register operand.
func Reg(reg Register) Operand {
	return Operand{Type: OPERAND_REGISTER, Register: reg}
}

// Imm returns an immediate operand.
func Imm(value uint64) Operand {
	return Operand{Type: OPERAND_IMMEDIATE, Value: value}
}

// ImmAddr returns an immediate address operand, '[value]'.
func ImmAddr(value uint64) Operand {
	return Operand{Type: OPERAND_IMMEDIATE_ADDRESS, Value: value}
}

// RegAddr returns a register address operand, '[reg]'.
func RegAddr(reg Register) Operand {
	return Operand{Type: OPERAND_REGISTER_ADDRESS, Register: reg}
}

// IsRegister is true for operands encoded in a register field.
func (op Operand) IsRegister() bool {
	return op.Type == OPERAND_REGISTER || op.Type == OPERAND_REGISTER_ADDRESS
}

// IsImmediate is true for operands encoded as immediate bytes.
func (op Operand) IsImmediate() bool {
	return op.Type == OPERAND_IMMEDIATE || op.Type == OPERAND_IMMEDIATE_ADDRESS
}

// Address returns the address form of a bare register or immediate.
func (op Operand) Address() Operand {
	switch op.Type {
	case OPERAND_REGISTER:
		op.Type = OPERAND_REGISTER_ADDRESS
	case OPERAND_IMMEDIATE:
		op.Type = OPERAND_IMMEDIATE_ADDRESS
	}
	return op
}

// String returns the operand in assembly syntax.
func (op Operand) String() string {
	switch op.Type {
	case OPERAND_NONE:
		return ""
	case OPERAND_REGISTER:
		return op.Register.String()
	case OPERAND_IMMEDIATE:
		return fmt.Sprintf("%d", op.Value)
	case OPERAND_IMMEDIATE_ADDRESS:
		return fmt.Sprintf("[%d]", op.Value)
	case OPERAND_REGISTER_ADDRESS:
		return fmt.Sprintf("[%v]", op.Register)
	}
	return op.Type.String()
}
