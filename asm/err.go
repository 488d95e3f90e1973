package asm

import (
	"errors"

	"github.com/ezrec/lce/diag"
	"github.com/ezrec/lce/isa"
	"github.com/ezrec/lce/translate"
)

var f = translate.From

var (
	// Assembly errors
	ErrParse     = errors.New(f("parse failed"))
	ErrTypeCheck = errors.New(f("type check failed"))

	// Line errors
	ErrCharacterInvalid = errors.New(f("unexpected character"))
	ErrOpcodeMissing    = errors.New(f("opcode missing"))
	ErrCommaMissing     = errors.New(f("comma missing"))
	ErrOperandMissing   = errors.New(f("operand missing"))
	ErrOperandExtra     = errors.New(f("excessive operand text"))
	ErrOperandInvalid   = errors.New(f("operand invalid"))
	ErrBracketMissing   = errors.New(f("closing bracket missing"))
	ErrAddressInvalid   = errors.New(f("address must be a register or number"))
	ErrExtraArgs        = errors.New(f("excessive arguments ignored"))
)

// ErrMnemonicUnknown is a line whose first word is not an instruction.
type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("'%v' is not an instruction", string(err))
}

// ErrRegisterUnknown is an identifier operand that names no register.
type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("'%v' is not a register", string(err))
}

// ErrParseNumber is a numeric literal that does not fit 64 bits or is
// not valid in its base.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrImmediateTruncated warns that an immediate lost its high bits.
type ErrImmediateTruncated uint64

func (err ErrImmediateTruncated) Error() string {
	return f("immediate %#x truncated to %#x", uint64(err), uint64(err)&isa.IMMEDIATE_MAX)
}

// ErrShape is an instruction whose operand types are not legal for its opcode.
type ErrShape struct {
	Opcode isa.Opcode
	First  isa.OperandType
	Second isa.OperandType
}

func (err ErrShape) Error() string {
	return f("%v does not accept (%v, %v)", err.Opcode.String(), err.First.String(), err.Second.String())
}

func (err ErrShape) Unwrap() error {
	return isa.ErrShapeInvalid
}

// ErrSyntax locates a line error.
type ErrSyntax struct {
	Location diag.Location
	Err      error
}

func (err ErrSyntax) Error() string {
	return f("%v: %v", err.Location, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
