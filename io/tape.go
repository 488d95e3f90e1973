package io

import (
	"errors"
	"io"
)

// Tape register offsets.
const (
	TAPE_DATA   = 0 // Read: next input byte. Write: output byte.
	TAPE_STATUS = 1 // Read only: TAPE_STATUS_* bits.
	TAPE_SIZE   = 4 // Offsets 2 and 3 are reserved, and read as zero.
)

// Tape status bits.
const (
	TAPE_STATUS_READY = uint8(1 << 0) // An input byte is waiting.
	TAPE_STATUS_EOF   = uint8(1 << 1) // Input is exhausted.
)

// Tape is a memory mapped serial port.
// It reads bytes from Input and writes bytes to Output, one at a time.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Err    error // First I/O error other than end of input.

	hasInput  bool
	lastInput byte
	eof       bool
}

// fill reads the next input byte, if none is waiting.
func (tc *Tape) fill() {
	if tc.hasInput || tc.eof {
		return
	}

	if tc.Input == nil {
		tc.eof = true
		return
	}

	var one [1]byte
	n, err := tc.Input.Read(one[:])
	switch {
	case n == 1:
		tc.lastInput = one[0]
		tc.hasInput = true
	case err == nil:
		// No data yet, try again on the next access.
	default:
		tc.eof = true
		if !errors.Is(err, io.EOF) && tc.Err == nil {
			tc.Err = err
		}
	}
}

func (tc *Tape) Read(offset uint16) (value uint8) {
	switch offset {
	case TAPE_DATA:
		tc.fill()
		if tc.hasInput {
			value = tc.lastInput
			tc.hasInput = false
		}
	case TAPE_STATUS:
		tc.fill()
		if tc.hasInput {
			value |= TAPE_STATUS_READY
		}
		if tc.eof {
			value |= TAPE_STATUS_EOF
		}
	}

	return
}

func (tc *Tape) Write(offset uint16, value uint8) {
	if offset != TAPE_DATA || tc.Output == nil {
		return
	}

	_, err := tc.Output.Write([]byte{value})
	if err != nil && tc.Err == nil {
		tc.Err = err
	}
}

func (tc *Tape) Size() uint16 {
	return TAPE_SIZE
}
