// Package io provides memory mapped devices for the little computer.
//
// Every device is a cpu.MemoryBlock: a read-only image (Rom), a persistent
// RAM image (Drum), and a byte-wide serial port (Tape).
package io
