package isa

import (
	"strings"
)

// Register is an index into the register file.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_R0  = Register(0) // r0
	REG_R1  = Register(1) // r1
	REG_R2  = Register(2) // r2
	REG_R3  = Register(3) // r3
	REG_RSP = Register(4) // rsp
	REG_RFL = Register(5) // rfl
)

// REG_COUNT is the size of the register file. It is never a register.
const REG_COUNT = 6

var registerMap = func() map[string]Register {
	m := make(map[string]Register, REG_COUNT)
	for reg := range Register(REG_COUNT) {
		m[reg.String()] = reg
	}
	return m
}()

// LookupRegister finds a register by name, ignoring case.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[strings.ToLower(name)]
	return
}

// Valid is true for a register in the register file.
func (reg Register) Valid() bool {
	return reg >= 0 && reg < REG_COUNT
}
