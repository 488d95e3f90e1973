// Package cpu implements the little computer's processor.
//
// The CPU has six 16-bit registers (r0-r3, the stack pointer rsp and the
// flags register rfl), a 16-bit instruction pointer, and a 64KiB address
// space populated by MemoryBlock mappings that must not overlap.
//
// Instructions are fetched from mapped memory, decoded by the isa package
// and dispatched to a handler per opcode.
package cpu
