package io

import (
	"io"
)

// Drum is a read-write memory block whose contents persist between runs.
// It is loaded from, and saved to, an image file by its owner.
type Drum struct {
	Data  []uint8
	Dirty bool // Set by any write since the last Marshal.
}

// NewDrum returns a zeroed drum of size bytes.
func NewDrum(size uint16) *Drum {
	return &Drum{Data: make([]uint8, size)}
}

func (drum *Drum) Read(offset uint16) uint8 {
	return drum.Data[offset]
}

func (drum *Drum) Write(offset uint16, value uint8) {
	drum.Data[offset] = value
	drum.Dirty = true
}

func (drum *Drum) Size() uint16 {
	return uint16(len(drum.Data))
}

// Unmarshal loads drum data from a reader. A short image leaves the rest
// of the drum zero.
func (drum *Drum) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	if len(data) > len(drum.Data) {
		err = ErrImageSize
		return
	}

	clear(drum.Data)
	copy(drum.Data, data)
	drum.Dirty = false

	return
}

// Marshal writes the drum's data to a writer.
func (drum *Drum) Marshal(file io.Writer) (err error) {
	_, err = file.Write(drum.Data)
	if err != nil {
		return
	}

	drum.Dirty = false

	return
}
