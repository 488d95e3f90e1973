package isa

import (
	"errors"

	"github.com/ezrec/lce/translate"
)

var f = translate.From

var (
	ErrShapeInvalid   = errors.New(f("operand combination invalid"))
	ErrDecodeShort    = errors.New(f("instruction truncated"))
	ErrDecodeTag      = errors.New(f("operand type tag invalid"))
	ErrDecodeRegister = errors.New(f("register index invalid"))
)

// ErrOpcodeUnknown is returned when byte 0 holds no known opcode.
type ErrOpcodeUnknown Opcode

func (eo ErrOpcodeUnknown) Error() string {
	return f("opcode %#02x unknown", int(eo))
}

func (eo ErrOpcodeUnknown) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeUnknown)
	return
}
