package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"slices"

	"github.com/ezrec/lce/diag"
	"github.com/ezrec/lce/isa"
)

// Flag is a bit of the rfl register.
type Flag uint16

const (
	FLAG_Z = Flag(1 << 0) // Result was zero.
	FLAG_C = Flag(1 << 1) // Carry or borrow out, or last bit shifted out.
	FLAG_V = Flag(1 << 2) // Signed overflow.
	FLAG_N = Flag(1 << 3) // Result was negative.
)

// ADDRESS_LAST is the highest address of the address space.
const ADDRESS_LAST = 0xffff

// Cpu is the simulation context for the little computer's processor.
type Cpu struct {
	Verbose bool      // Set to enable verbose logging.
	Sink    diag.Sink // Runtime diagnostic destination.

	Register [isa.REG_COUNT]uint16 // Register bank.
	Ip       uint16                // Current instruction pointer.
	Halted   bool                  // Set by hlt, or a fatal execution error.

	Ticks int // Executed instruction counter.

	memory []Mapping // Mapped memory, in insertion order.
}

// NewCpu creates a new CPU with no memory mapped.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %04X\n", "ip", cpu.Ip)
	for reg := range isa.Register(isa.REG_COUNT) {
		text += fmt.Sprintf("% 5s: %04X\n", reg.String(), cpu.Register[reg])
	}

	flags := []byte("----")
	for n, ch := range []byte("NVCZ") {
		if cpu.Register[isa.REG_RFL]&(1<<(3-n)) != 0 {
			flags[n] = ch
		}
	}
	text += fmt.Sprintf("% 5s: %s\n", "flags", flags)

	if cpu.Halted {
		text += fmt.Sprintf("% 5s: %v\n", "state", "halted")
	} else {
		text += fmt.Sprintf("% 5s: %v\n", "state", "running")
	}

	return
}

// Reset the CPU state.
// - Clears the registers and instruction pointer.
// - Clears the halted state and the tick counter.
// Memory contents are untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Ip = 0
	cpu.Halted = false
	cpu.Ticks = 0
}

// report sends a runtime diagnostic to the CPU's sink.
func (cpu *Cpu) report(severity diag.Severity, err error) {
	if cpu.Verbose {
		log.Printf("cpu: %04x: %v: %v", cpu.Ip, severity, err)
	}
	diag.Report(cpu.Sink, severity, diag.Location{}, err)
}

// AddMemoryBlock maps block at base. A block that would overlap an
// existing mapping, or that runs past the end of the address space,
// is rejected with a Fatal diagnostic and existing mappings are unchanged.
func (cpu *Cpu) AddMemoryBlock(block MemoryBlock, base uint16) (err error) {
	if block == nil {
		err = fmt.Errorf("0x%04x: %w", base, ErrMemoryRange)
		cpu.report(diag.SEVERITY_FATAL, err)
		return
	}

	mapping := Mapping{Base: base, Block: block}

	defer func() {
		if err != nil {
			err = fmt.Errorf("0x%04x+0x%04x: %w", base, block.Size(), err)
			cpu.report(diag.SEVERITY_FATAL, err)
		}
	}()

	if block.Size() == 0 || mapping.last() > ADDRESS_LAST {
		err = ErrMemoryRange
		return
	}

	for _, other := range cpu.memory {
		if mapping.Overlaps(other) {
			err = ErrMemoryOverlap
			return
		}
	}

	cpu.memory = append(cpu.memory, mapping)

	if cpu.Verbose {
		log.Printf("cpu: map %04x-%04x", base, mapping.last())
	}

	return
}

// Mappings iterates over the mapped memory blocks in insertion order.
func (cpu *Cpu) Mappings() iter.Seq2[uint16, MemoryBlock] {
	return func(yield func(base uint16, block MemoryBlock) bool) {
		for _, mp := range cpu.memory {
			if !yield(mp.Base, mp.Block) {
				return
			}
		}
	}
}

// find returns the first mapping containing address.
func (cpu *Cpu) find(address uint16) (block MemoryBlock, offset uint16, ok bool) {
	for _, mp := range cpu.memory {
		if mp.Contains(address) {
			return mp.Block, address - mp.Base, true
		}
	}
	return
}

// peekByte reads a byte without reporting unmapped addresses.
func (cpu *Cpu) peekByte(address uint16) (value uint8, ok bool) {
	block, offset, ok := cpu.find(address)
	if ok {
		value = block.Read(offset)
	}
	return
}

// ReadByte reads the byte at address. Unmapped addresses read as 0.
func (cpu *Cpu) ReadByte(address uint16) (value uint8) {
	value, ok := cpu.peekByte(address)
	if !ok {
		cpu.report(diag.SEVERITY_ERROR, ErrUnmapped(address))
	}
	return
}

// WriteByte writes the byte at address. Writes to unmapped addresses
// are dropped.
func (cpu *Cpu) WriteByte(address uint16, value uint8) {
	block, offset, ok := cpu.find(address)
	if !ok {
		cpu.report(diag.SEVERITY_ERROR, ErrUnmapped(address))
		return
	}
	block.Write(offset, value)
}

// ReadWord reads the little-endian word at address.
func (cpu *Cpu) ReadWord(address uint16) uint16 {
	lo := cpu.ReadByte(address)
	hi := cpu.ReadByte(address + 1)
	return uint16(lo) | (uint16(hi) << 8)
}

// WriteWord writes the little-endian word at address.
func (cpu *Cpu) WriteWord(address uint16, value uint16) {
	cpu.WriteByte(address, uint8(value>>0))
	cpu.WriteByte(address+1, uint8(value>>8))
}

// Fetch reads the instruction at the instruction pointer, one byte at a
// time and no further than its encoding needs. Only the first byte must
// be mapped; trailing bytes past mapped memory read as isa.FILL.
func (cpu *Cpu) Fetch() (code []uint8) {
	code = make([]uint8, 1, isa.INSTRUCTION_BYTES)
	code[0] = cpu.ReadByte(cpu.Ip)
	for len(code) < isa.Length(code) {
		value, ok := cpu.peekByte(cpu.Ip + uint16(len(code)))
		if !ok {
			value = isa.FILL
		}
		code = append(code, value)
	}

	return
}

// Step fetches and executes the instruction at the instruction pointer.
func (cpu *Cpu) Step() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	_, err = cpu.Execute(cpu.Fetch())

	return
}

// Run sets the instruction pointer to start, and executes instructions
// until the CPU halts. There is no step bound.
func (cpu *Cpu) Run(start uint16) (err error) {
	cpu.Ip = start
	cpu.Halted = false

	for !cpu.Halted {
		err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes the single instruction at the start of code, as if
// it were located at the instruction pointer, and advances the
// instruction pointer. A failure to decode or execute the instruction is
// Fatal and halts the CPU.
func (cpu *Cpu) Execute(code []uint8) (length int, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(&ErrOpcode{Ip: cpu.Ip, Code: slices.Clone(code[:min(len(code), isa.INSTRUCTION_BYTES)])}, err)
			cpu.report(diag.SEVERITY_FATAL, err)
			cpu.Halted = true
		}
	}()

	decoded, err := isa.Decode(code)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%04x: %v", cpu.Ip, decoded)
	}

	handler := handlers[decoded.Opcode]
	if handler == nil {
		err = ErrOpcodeUnimplemented
		return
	}

	length = decoded.Length
	next_ip := cpu.Ip + uint16(length)

	next_ip = handler(cpu, decoded, next_ip)

	cpu.Ip = next_ip
	cpu.Ticks++

	return
}
