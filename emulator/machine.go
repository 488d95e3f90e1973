package emulator

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/lce/cpu"
	"github.com/ezrec/lce/io"
)

// Default machine layout.
const (
	DEFAULT_RAM_SIZE  = 0xff00
	DEFAULT_TAPE_BASE = 0xff00
)

// Device is a memory block placed in a machine's address space.
type Device struct {
	Kind  string          // ram, rom, tape or drum.
	Base  uint16          // First mapped address.
	Block cpu.MemoryBlock // Backing block.
	Path  string          // Image path, relative to the machine description.
}

// Machine describes the memory layout and boot parameters of a computer.
type Machine struct {
	Entry    uint16 // Initial instruction pointer.
	Origin   uint16 // Load address for programs.
	MaxSteps int    // Instruction bound, 0 for none.

	Devices []Device // Devices, in mapping order.
}

// DefaultMachine returns a machine with RAM from 0x0000 to 0xfeff, and a
// tape at 0xff00.
func DefaultMachine() (machine *Machine) {
	machine = &Machine{
		Devices: []Device{
			{Kind: "ram", Base: 0, Block: cpu.NewRam(DEFAULT_RAM_SIZE)},
			{Kind: "tape", Base: DEFAULT_TAPE_BASE, Block: &io.Tape{}},
		},
	}

	return
}

// Tapes iterates over the machine's tapes.
func (machine *Machine) Tapes() iter.Seq[*io.Tape] {
	return func(yield func(*io.Tape) bool) {
		for _, dev := range machine.Devices {
			tape, ok := dev.Block.(*io.Tape)
			if ok && !yield(tape) {
				return
			}
		}
	}
}

// Tape returns the machine's first tape, or nil if it has none.
func (machine *Machine) Tape() (tape *io.Tape) {
	for tape = range machine.Tapes() {
		return
	}

	return
}

// Drums iterates over the machine's drums and their image paths.
func (machine *Machine) Drums() iter.Seq2[string, *io.Drum] {
	return func(yield func(string, *io.Drum) bool) {
		for _, dev := range machine.Devices {
			drum, ok := dev.Block.(*io.Drum)
			if ok && !yield(dev.Path, drum) {
				return
			}
		}
	}
}

// machineBuilder collects devices from the description's builtins.
type machineBuilder struct {
	fsys    fs.FS
	dir     string
	machine *Machine
}

// toUint16 converts a starlark argument to an address or size.
func toUint16(name string, value int) (result uint16, err error) {
	if value < 0 || value > 0xffff {
		err = ErrMachineValue(name)
		return
	}
	result = uint16(value)
	return
}

func (mb *machineBuilder) add(kind string, base int, block cpu.MemoryBlock, path string) (err error) {
	addr, err := toUint16(kind+".base", base)
	if err != nil {
		return
	}

	mb.machine.Devices = append(mb.machine.Devices, Device{
		Kind:  kind,
		Base:  addr,
		Block: block,
		Path:  path,
	})

	return
}

func (mb *machineBuilder) ram(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var base, size int
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "base", &base, "size", &size)
	if err != nil {
		return
	}

	length, err := toUint16("ram.size", size)
	if err != nil {
		return
	}

	err = mb.add("ram", base, cpu.NewRam(length), "")
	value = starlark.None
	return
}

func (mb *machineBuilder) rom(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var base, size int
	var image string
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "base", &base, "image", &image, "size?", &size)
	if err != nil {
		return
	}

	length, err := toUint16("rom.size", size)
	if err != nil {
		return
	}

	rom := io.NewRom(length)
	name := path.Join(mb.dir, image)
	inf, err := mb.fsys.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	err = rom.Unmarshal(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
		return
	}

	err = mb.add("rom", base, rom, image)
	value = starlark.None
	return
}

func (mb *machineBuilder) tape(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var base int
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "base", &base)
	if err != nil {
		return
	}

	err = mb.add("tape", base, &io.Tape{}, "")
	value = starlark.None
	return
}

func (mb *machineBuilder) drum(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var base, size int
	var image string
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "base", &base, "size", &size, "image", &image)
	if err != nil {
		return
	}

	length, err := toUint16("drum.size", size)
	if err != nil {
		return
	}

	drum := io.NewDrum(length)
	name := path.Join(mb.dir, image)
	inf, err := mb.fsys.Open(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// A new drum starts blank.
		err = nil
	case err != nil:
		return
	default:
		defer inf.Close()
		err = drum.Unmarshal(inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", name, err)
			return
		}
	}

	err = mb.add("drum", base, drum, image)
	value = starlark.None
	return
}

// global converts an optional integer global of the description.
func global(globals starlark.StringDict, name string, limit int64) (value int64, err error) {
	st_value, ok := globals[name]
	if !ok {
		return
	}

	st_int, ok := st_value.(starlark.Int)
	if !ok {
		err = ErrMachineValue(name)
		return
	}

	value, ok = st_int.Int64()
	if !ok || value < 0 || value > limit {
		err = ErrMachineValue(name)
		return
	}

	return
}

// LoadMachine executes the machine description filename from fsys.
//
// The description is Starlark, with the builtins:
//
//	ram(base, size)
//	rom(base, image, size=0)
//	tape(base)
//	drum(base, size, image)
//
// and the optional integer globals entry, origin and max_steps.
// Image paths are relative to the description's directory.
func LoadMachine(fsys fs.FS, filename string) (machine *Machine, err error) {
	src, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return
	}

	mb := &machineBuilder{
		fsys:    fsys,
		dir:     path.Dir(filename),
		machine: &Machine{},
	}

	pred := starlark.StringDict{
		"ram":  starlark.NewBuiltin("ram", mb.ram),
		"rom":  starlark.NewBuiltin("rom", mb.rom),
		"tape": starlark.NewBuiltin("tape", mb.tape),
		"drum": starlark.NewBuiltin("drum", mb.drum),
	}

	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		err = errors.Join(ErrMachine, err)
		return
	}

	entry, err := global(globals, "entry", 0xffff)
	if err != nil {
		return
	}

	origin, err := global(globals, "origin", 0xffff)
	if err != nil {
		return
	}

	max_steps, err := global(globals, "max_steps", 1<<62)
	if err != nil {
		return
	}

	if len(mb.machine.Devices) == 0 {
		err = ErrMachine
		return
	}

	machine = mb.machine
	machine.Entry = uint16(entry)
	machine.Origin = uint16(origin)
	machine.MaxSteps = int(max_steps)

	return
}
