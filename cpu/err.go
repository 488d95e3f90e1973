package cpu

import (
	"errors"

	"github.com/ezrec/lce/translate"
)

var f = translate.From

var (
	// Memory mapping errors
	ErrMemoryOverlap = errors.New(f("memory block overlaps an existing block"))
	ErrMemoryRange   = errors.New(f("memory block outside of address space"))

	// Execution errors
	ErrHalted              = errors.New(f("cpu halted"))
	ErrOpcodeUnimplemented = errors.New(f("opcode unimplemented"))
)

// ErrUnmapped is an access to an address no memory block covers.
type ErrUnmapped uint16

func (eu ErrUnmapped) Error() string {
	return f("address 0x%04x unmapped", uint16(eu))
}

func (eu ErrUnmapped) Is(err error) (ok bool) {
	_, ok = err.(ErrUnmapped)
	return
}

// ErrOpcode is an instruction that could not be executed.
type ErrOpcode struct {
	Ip   uint16
	Code []uint8
}

func (eo *ErrOpcode) Error() string {
	return f("bad opcode at 0x%04x: % x", eo.Ip, eo.Code)
}

func (eo *ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(*ErrOpcode)
	return
}
