package io

import (
	"io"
)

// Rom is a read-only memory block. Writes are dropped, and counted.
type Rom struct {
	Data    []uint8
	Dropped int // Count of dropped writes.
}

// NewRom returns an all-zero ROM of size bytes. Unmarshal fills it.
func NewRom(size uint16) *Rom {
	return &Rom{Data: make([]uint8, size)}
}

func (rom *Rom) Read(offset uint16) uint8 {
	return rom.Data[offset]
}

func (rom *Rom) Write(offset uint16, value uint8) {
	rom.Dropped++
}

func (rom *Rom) Size() uint16 {
	return uint16(len(rom.Data))
}

// Unmarshal loads the ROM image from a reader. A ROM with no data takes
// the size of the image; otherwise the image may not be larger than the
// ROM, and any remainder stays zero.
func (rom *Rom) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	switch {
	case len(rom.Data) == 0:
		if len(data) == 0 {
			err = ErrImageEmpty
			return
		}
		if len(data) > 0xffff {
			err = ErrImageSize
			return
		}
		rom.Data = data
	case len(data) > len(rom.Data):
		err = ErrImageSize
		return
	default:
		clear(rom.Data)
		copy(rom.Data, data)
	}

	return
}
