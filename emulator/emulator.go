// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/lce/asm"
	"github.com/ezrec/lce/cpu"
	"github.com/ezrec/lce/diag"
	"github.com/ezrec/lce/io"
)

// Emulator state. CPU + mapped machine devices + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	Sink     diag.Sink    // Runtime diagnostic destination.
	*cpu.Cpu              // Reference to the CPU simulation.
	Machine  *Machine     // Machine layout.
	Program  *asm.Program // Reference to the currently running program listing.
	MaxSteps int          // Instruction bound per reset, 0 for none.
}

// NewEmulator creates a new emulator, with the machine's devices mapped.
func NewEmulator(machine *Machine) (emu *Emulator, err error) {
	emu = &Emulator{
		Cpu:      cpu.NewCpu(),
		Machine:  machine,
		Program:  &asm.Program{},
		MaxSteps: machine.MaxSteps,
	}

	emu.Cpu.Sink = diag.SinkFunc(emu.report)

	for _, dev := range machine.Devices {
		err = emu.Cpu.AddMemoryBlock(dev.Block, dev.Base)
		if err != nil {
			emu = nil
			return
		}
	}

	return
}

// report adds the source location of the executing instruction to a CPU
// diagnostic, and forwards it to the emulator's sink.
func (emu *Emulator) report(d diag.Diagnostic) {
	if d.Location.IsZero() {
		d.Location = emu.Location()
	}
	if emu.Sink != nil {
		emu.Sink.Report(d)
	}
}

// Location returns the source location of the instruction at the
// instruction pointer, if it is part of the program listing.
func (emu *Emulator) Location() (loc diag.Location) {
	dbg := emu.Program.Debug(emu.Cpu.Ip)
	if dbg.Opcode != nil {
		loc = dbg.Instruction.Location
	}

	return
}

// LoadBinary writes data to memory starting at origin.
func (emu *Emulator) LoadBinary(origin uint16, data []uint8) (err error) {
	if len(data) == 0 {
		err = ErrProgramEmpty
		return
	}

	if int(origin)+len(data) > cpu.ADDRESS_LAST+1 {
		err = io.ErrImageSize
		return
	}

	for n, value := range data {
		addr := origin + uint16(n)
		if !emu.mapped(addr) {
			err = errors.Join(err, ErrLoadUnmapped(addr))
			continue
		}
		emu.Cpu.WriteByte(addr, value)
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d bytes at %04x", len(data), origin)
	}

	return
}

// Load writes the program's binary to memory, and makes it the listing
// for runtime locations.
func (emu *Emulator) Load(prog *asm.Program) (err error) {
	err = emu.LoadBinary(prog.Origin, prog.Binary())
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// mapped is true if any device covers addr.
func (emu *Emulator) mapped(addr uint16) bool {
	for base, block := range emu.Cpu.Mappings() {
		mapping := cpu.Mapping{Base: base, Block: block}
		if mapping.Contains(addr) {
			return true
		}
	}

	return false
}

// Reset the CPU, and start at the machine's entry point.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Cpu.Ip = emu.Machine.Entry
}

// Tick performs a single instruction of the emulator.
// done is set once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted {
		done = true
		return
	}

	loc := emu.Location()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Location: loc, Err: err}
		}
	}()

	if emu.MaxSteps > 0 && emu.Cpu.Ticks >= emu.MaxSteps {
		err = ErrStepLimit
		return
	}

	err = emu.Cpu.Step()
	done = emu.Cpu.Halted

	return
}

// Run ticks the emulator until the CPU halts, or an error occurs.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
