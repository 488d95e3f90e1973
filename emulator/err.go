package emulator

import (
	"errors"

	"github.com/ezrec/lce/diag"
	"github.com/ezrec/lce/translate"
)

var f = translate.From

var (
	ErrStepLimit    = errors.New(f("step limit reached"))
	ErrMachine      = errors.New(f("machine description invalid"))
	ErrProgramEmpty = errors.New(f("program empty"))
)

// ErrMachineValue indicates a machine description global or argument
// with an unusable value.
type ErrMachineValue string

func (err ErrMachineValue) Error() string {
	return f("machine value '%s' invalid", string(err))
}

func (err ErrMachineValue) Is(other error) (ok bool) {
	_, ok = other.(ErrMachineValue)
	return
}

func (err ErrMachineValue) Unwrap() error {
	return ErrMachine
}

// ErrLoadUnmapped indicates a program byte whose address has no memory.
type ErrLoadUnmapped uint16

func (err ErrLoadUnmapped) Error() string {
	return f("load address 0x%04x unmapped", uint16(err))
}

func (err ErrLoadUnmapped) Is(other error) (ok bool) {
	_, ok = other.(ErrLoadUnmapped)
	return
}

// ErrRuntime indicates the source location of a runtime error.
type ErrRuntime struct {
	Location diag.Location
	Err      error
}

func (err *ErrRuntime) Error() string {
	if err.Location.IsZero() {
		return err.Err.Error()
	}
	return f("%v: %v", err.Location, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
